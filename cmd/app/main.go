package main

import (
	"flag"
	"fmt"
	"html"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/golang/geo/r2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-arrangement/pkg/arrangement"
	"github.com/0x0FACED/go-arrangement/pkg/linear"
	"github.com/0x0FACED/go-arrangement/pkg/logger"
	"github.com/0x0FACED/go-arrangement/pkg/scene"
	"github.com/0x0FACED/go-arrangement/static"
)

// listScenes возвращает имена yaml файлов из dir без расширения, по алфавиту
func listScenes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list scenes: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".yaml" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	return names, nil
}

// buildScene загружает и строит сцену, все ошибки уходят в лог страницы.
// Возвращает nil, если строить нечего.
func buildScene(cfg Config, name string, simplify bool, log *logger.ZapLogger) *scene.Arrangement {
	sc, err := scene.Load(filepath.Join(cfg.Scenes.Dir, name+".yaml"))
	if err != nil {
		for _, e := range multierr.Errors(err) {
			log.Error("[app] bad scene", zap.String("scene", name), zap.Error(e))
		}
		return nil
	}
	sc.Simplify = sc.Simplify || simplify

	b, err := scene.NewBuilder(sc.Topology, log)
	if err != nil {
		log.Error("[app] bad topology", zap.String("scene", name), zap.Error(err))
		return nil
	}
	a := b.Arrangement()
	if log.Enabled(zapcore.DebugLevel) {
		a.Attach(arrangement.NewLoggingObserver[r2.Point, linear.Curve](log))
	}
	if err := b.Apply(sc); err != nil {
		// рисуем то, что успели вставить
		log.Error("[app] scene stopped", zap.String("scene", name), zap.Error(err))
	}

	if err := a.Validate(); err != nil {
		for _, e := range multierr.Errors(err) {
			log.Error("[app] invalid arrangement", zap.Error(e))
		}
	} else {
		log.Info("[app] arrangement is valid",
			zap.Int("vertices", a.NumberOfVertices()),
			zap.Int("at infinity", a.NumberOfVerticesAtInfinity()),
			zap.Int("edges", a.NumberOfEdges()),
			zap.Int("faces", a.NumberOfFaces()),
			zap.Int("unbounded faces", a.NumberOfUnboundedFaces()))
	}
	return a
}

// http обработчик страницы с диаграмой и формой выбора сцены
func diagramHandler(cfg Config, level zapcore.Level, serverLog *logger.ZapLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := cfg.Scenes.Default
		var simplify bool

		if r.Method == http.MethodPost {
			if err := r.ParseForm(); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			name = r.FormValue("scene")
			simplify = r.FormValue("simplify") == "true"
		}

		names, err := listScenes(cfg.Scenes.Dir)
		if err != nil {
			serverLog.Error("[app] scenes", zap.Error(err))
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		logger := logger.NewBuffered(level)
		defer logger.ClearLogs()

		var a *scene.Arrangement
		if slices.Contains(names, name) {
			a = buildScene(cfg, name, simplify, logger)
		} else {
			// имя пришло из формы, открываем только файлы из каталога сцен
			logger.Error("[app] unknown scene", zap.String("scene", name))
		}
		if a == nil {
			b, _ := scene.NewBuilder(scene.TopologyBounded, nil)
			a = b.Arrangement()
		}

		scatter := arrangementToEcharts(a, cfg.Canvas, name)

		fmt.Fprintln(w, static.Part1)
		for _, n := range names {
			selected := ""
			if n == name {
				selected = " selected"
			}
			fmt.Fprintf(w, "<option value=\"%s\"%s>%s</option>\n", html.EscapeString(n), selected, html.EscapeString(n))
		}
		fmt.Fprintln(w, static.PartForm)

		err = scatter.Render(w)
		if err != nil {
			serverLog.Error("[app] ошибка рендеринга диаграммы", zap.Error(err))
		}

		fmt.Fprintln(w, static.Part2)

		// Вставляем логи в HTML
		for _, log := range logger.Logs {
			fmt.Fprintln(w, log)
		}

		fmt.Fprintln(w, static.Part3)
	}
}

func main() {
	configPath := flag.String("config", "configs/app.toml", "path to the TOML config, empty for defaults")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	level, _ := logger.ParseLevel(cfg.Log.Level)

	log := logger.New(os.Stdout, zapcore.InfoLevel)
	defer log.Sync()

	http.HandleFunc("/", diagramHandler(cfg, level, log))
	log.Info("[app] сервер запущен", zap.String("addr", cfg.Server.Addr), zap.String("scenes", cfg.Scenes.Dir))
	if err := http.ListenAndServe(cfg.Server.Addr, nil); err != nil {
		log.Fatal("[app] ListenAndServe", zap.Error(err))
	}
}
