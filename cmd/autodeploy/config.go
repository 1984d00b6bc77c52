package main

import (
	"flag"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/hrishikesh-200/autodeploy/internal/api"
	"github.com/hrishikesh-200/autodeploy/internal/events"
	"github.com/hrishikesh-200/autodeploy/internal/generator"
	"github.com/hrishikesh-200/autodeploy/internal/tasks"
	"github.com/hrishikesh-200/autodeploy/internal/worker"
	"github.com/hrishikesh-200/autodeploy/pkg/environment"
	"github.com/hrishikesh-200/autodeploy/pkg/errors"
)

type Config struct {
	Environment environment.Env        `yaml:"Environment"`
	API         api.Config             `yaml:"API"`
	Mongo       tasks.MongoConfig      `yaml:"Mongo"`
	Worker      worker.Config          `yaml:"Worker"`
	Generator   generator.GeminiConfig `yaml:"Generator"`
	Events      events.Config          `yaml:"Events"`
}

func loadConfig() (*Config, error) {
	path, err := filepath.Abs("config.yaml")
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFail(err, "read \"config.yaml\"")
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	if cfg.API.HTTP.Addr == "" {
		cfg.API.HTTP.Addr = "0.0.0.0:7860"
	}

	if envFromFlags := getEnvFromFlags(); envFromFlags != nil {
		cfg.Environment = *envFromFlags
	}

	return &cfg, nil
}

func getEnvFromFlags() *environment.Env {
	raw := flag.String("env", "", "environment (dev, prod)")
	flag.Parse()
	if raw == nil {
		return nil
	}

	env := environment.FromString(*raw)
	return &env
}
