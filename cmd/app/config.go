package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/0x0FACED/go-arrangement/pkg/logger"
)

type Config struct {
	Server ServerConfig `toml:"server"`
	Scenes ScenesConfig `toml:"scenes"`
	Canvas CanvasConfig `toml:"canvas"`
	Log    LogConfig    `toml:"log"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

type ScenesConfig struct {
	Dir     string `toml:"dir"`
	Default string `toml:"default"`
}

// CanvasConfig задает размер диаграммы. Extent - на сколько продлеваются
// лучи и прямые за свою последнюю вершину; 0 значит "по размеру сцены".
type CanvasConfig struct {
	Width  string  `toml:"width"`
	Height string  `toml:"height"`
	Extent float64 `toml:"extent"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Scenes: ScenesConfig{Dir: "scenes", Default: "house"},
		Canvas: CanvasConfig{Width: "1020px", Height: "580px"},
		Log:    LogConfig{Level: "info"},
	}
}

// loadConfig читает TOML поверх значений по умолчанию. Пустой путь - только дефолты.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}
	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if cfg.Canvas.Extent < 0 {
		return cfg, fmt.Errorf("load config: negative canvas extent %v", cfg.Canvas.Extent)
	}
	return cfg, nil
}
