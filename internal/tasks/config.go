package tasks

import "time"

type MongoConfig struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`
}
