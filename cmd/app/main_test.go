package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-arrangement/pkg/linear"
	"github.com/0x0FACED/go-arrangement/pkg/logger"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "app.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	cfg, err = loadConfig("../../configs/app.toml")
	require.NoError(t, err)
	assert.Equal(t, "scenes", cfg.Scenes.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)

	cfg, err = loadConfig(writeConfig(t, "[server]\naddr = \":9090\"\n"))
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "house", cfg.Scenes.Default)

	_, err = loadConfig(writeConfig(t, "[server]\nport = 1\n"))
	assert.ErrorContains(t, err, "server.port")
	_, err = loadConfig(writeConfig(t, "[log]\nlevel = \"loud\"\n"))
	assert.Error(t, err)
	_, err = loadConfig(writeConfig(t, "[canvas]\nextent = -1.0\n"))
	assert.Error(t, err)
	_, err = loadConfig(filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(t, err)
}

func TestEdgeEnds(t *testing.T) {
	pt := func(x, y float64) r2.Point { return r2.Point{X: x, Y: y} }

	lo, hi := edgeEnds(linear.NewSegment(pt(0, 0), pt(3, 4)), 10)
	assert.Equal(t, pt(0, 0), lo)
	assert.Equal(t, pt(3, 4), hi)

	lo, hi = edgeEnds(linear.NewRay(pt(0, 0), pt(0, 1)), 10)
	assert.Equal(t, pt(0, 0), lo)
	assert.InDelta(t, 0, hi.X, 1e-9)
	assert.InDelta(t, 11, hi.Y, 1e-9)

	lo, hi = edgeEnds(linear.NewLine(pt(0, 0), pt(1, 0)), 5)
	assert.InDelta(t, -5, lo.X, 1e-9)
	assert.InDelta(t, 6, hi.X, 1e-9)
}

func TestListScenes(t *testing.T) {
	names, err := listScenes("../../scenes")
	require.NoError(t, err)
	assert.Equal(t, []string{"house", "rays", "simplify"}, names)

	_, err = listScenes("missing")
	assert.Error(t, err)
}

func TestDiagramHandler(t *testing.T) {
	cfg := defaultConfig()
	cfg.Scenes.Dir = "../../scenes"
	handler := diagramHandler(cfg, zapcore.DebugLevel, logger.NewNop())

	post := func(form url.Values) string {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		handler(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		return rec.Body.String()
	}

	body := post(url.Values{"scene": {"rays"}})
	assert.Contains(t, body, `<option value="rays" selected>rays</option>`)
	assert.Contains(t, body, "Лучи и прямые")
	assert.Contains(t, body, "[app] arrangement is valid")
	assert.Contains(t, body, "[aos-event]")

	body = post(url.Values{"scene": {"simplify"}, "simplify": {"true"}})
	assert.Contains(t, body, "[scene] simplified")

	body = post(url.Values{"scene": {"../configs/app"}})
	assert.Contains(t, body, "[app] unknown scene")

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `<option value="house" selected>house</option>`)
}
