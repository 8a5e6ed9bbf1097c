package cmd

import (
	"os"

	"github.com/bkendall/husk/lisp"
	"github.com/bkendall/husk/parser"
	"github.com/bkendall/husk/repl"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = "husk.yaml"

// config is the optional interpreter configuration read from a yaml file.
type config struct {
	Prompt       string `yaml:"prompt"`
	History      string `yaml:"history"`
	MaxFileBytes int64  `yaml:"max-file-bytes"`
}

func loadConfig() (*config, error) {
	cfg := &config{Prompt: repl.DefaultPrompt}

	path := cfgFile
	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return cfg, nil
		}
		path = defaultConfigFile
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	if cfg.Prompt == "" {
		cfg.Prompt = repl.DefaultPrompt
	}
	return cfg, nil
}

func newRuntime(cfg *config) *lisp.Runtime {
	configs := []lisp.Config{lisp.WithReader(parser.NewReader())}
	if cfg.MaxFileBytes > 0 {
		configs = append(configs, lisp.WithMaxFileBytes(cfg.MaxFileBytes))
	}
	return lisp.NewRuntime(configs...)
}
