package gitops

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/hrishikesh-200/autodeploy/pkg/errors"
)

type CommandRunner interface {
	// Run executes name with args in dir and returns captured stdout.
	Run(ctx context.Context, dir string, name string, args ...string) (string, error)
}

func NewCommandRunner() CommandRunner {
	return &runner{}
}

type runner struct{}

func (r *runner) Run(ctx context.Context, dir string, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return stdout.String(), errors.Wrapf(err,
			"command %q failed, stderr: %s", name, stderr.String())
	}

	return stdout.String(), nil
}
