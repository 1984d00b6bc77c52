package api

import "time"

type Config struct {
	HTTP struct {
		Addr         string        `yaml:"addr"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
	} `yaml:"http"`

	Auth struct {
		// Secret is the shared value every submission must carry.
		Secret string `yaml:"secret"`
	} `yaml:"auth"`
}
