package main

import (
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/mapmatch/go-pathplan/locator"
	"github.com/mapmatch/go-pathplan/parser"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Error("failed to parse config file: " + err.Error())
		panic(err)
	}
	return config
}

func DefaultConfig() Config {
	config := Config{}
	config.Server.Address = ":5002"
	config.Source.Filter = "tagged"
	opts := locator.DefaultOptions()
	config.Locator.WindowSize = opts.WindowSize
	config.Locator.InitialScale = opts.InitialScale
	config.Locator.ScaleFloor = opts.ScaleFloor
	config.Locator.CellSize = 0.005
	config.Planner.MaxBudget = 100000
	return config
}

type Config struct {
	Source struct {
		OSM string `yaml:"osm"`
		// "tagged" keeps every tagged way, "pathable" only walkable or
		// cyclable highways
		Filter string `yaml:"filter"`
	} `yaml:"source"`
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Locator struct {
		WindowSize   int     `yaml:"window-size"`
		InitialScale float32 `yaml:"initial-scale"`
		ScaleFloor   float32 `yaml:"scale-floor"`
		CellSize     float64 `yaml:"cell-size"`
	} `yaml:"locator"`
	Planner struct {
		// upper clamp for per-request expansion budgets
		MaxBudget int `yaml:"max-budget"`
	} `yaml:"planner"`
}

func (self *Config) LocatorOptions() locator.Options {
	return locator.Options{
		WindowSize:   self.Locator.WindowSize,
		InitialScale: self.Locator.InitialScale,
		ScaleFloor:   self.Locator.ScaleFloor,
	}
}

func (self *Config) WayFilter() parser.IWayFilter {
	switch self.Source.Filter {
	case "pathable":
		return &parser.PathableWayFilter{}
	default:
		return &parser.TaggedWayFilter{}
	}
}
