package worker

import "time"

type Config struct {
	PoolSize       int           `yaml:"pool_size"`
	QueueSize      int           `yaml:"queue_size"`
	RepairInterval time.Duration `yaml:"repair_interval"`
	TaskTimeout    time.Duration `yaml:"task_timeout"`
	Workdir        string        `yaml:"workdir"`

	GitHub GitHubConfig `yaml:"github"`
}

type GitHubConfig struct {
	Username string `yaml:"username"`
	Repo     string `yaml:"repo"`
}

// RepoURL is the public URL reported to the evaluator.
func (g GitHubConfig) RepoURL() string {
	return "https://github.com/" + g.Username + "/" + g.Repo
}

// AuthURL embeds the PAT for HTTPS clone and push.
func (g GitHubConfig) AuthURL(pat string) string {
	return "https://" + pat + "@github.com/" + g.Username + "/" + g.Repo + ".git"
}

func (g GitHubConfig) PagesURL() string {
	return "https://" + g.Username + ".github.io/" + g.Repo + "/"
}
