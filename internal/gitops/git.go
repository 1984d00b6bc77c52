package gitops

import (
	"context"
	"strings"
	"time"

	"github.com/hrishikesh-200/autodeploy/pkg/errors"
	"github.com/hrishikesh-200/autodeploy/pkg/logger"
)

// commandTimeout bounds a single remote git operation.
const commandTimeout = 2 * time.Minute

// authFailureMarkers are stderr fragments that almost always mean the PAT
// is invalid, expired, or missing the repo scope.
var authFailureMarkers = []string{
	"Authentication failed",
	"fatal: repository",
	"403 Forbidden",
}

type Git interface {
	Clone(ctx context.Context, source, target string) error
	NewBranch(ctx context.Context, repo, branch string) error
	SetIdentity(ctx context.Context, repo, name, email string) error
	AddAll(ctx context.Context, repo string) error
	Commit(ctx context.Context, repo, message string) error
	ForcePush(ctx context.Context, repo, branch string) error
	Head(ctx context.Context, repo string) (sha string, err error)
}

func New(log logger.Logger) Git {
	return &cliGit{
		runner: NewCommandRunner(),
		log:    log.With("git"),
	}
}

type cliGit struct {
	runner CommandRunner
	log    logger.Logger
}

func (g *cliGit) Clone(ctx context.Context, source, target string) error {
	_, err := g.run(ctx, "", "clone", source, target)
	return errors.WrapFail(err, "clone repository")
}

func (g *cliGit) NewBranch(ctx context.Context, repo, branch string) error {
	_, err := g.run(ctx, repo, "checkout", "-b", branch)
	return errors.WrapFailf(err, "create branch %q", branch)
}

func (g *cliGit) SetIdentity(ctx context.Context, repo, name, email string) error {
	_, err := g.run(ctx, repo, "config", "user.name", name)
	if err != nil {
		return errors.WrapFail(err, "set user.name")
	}

	_, err = g.run(ctx, repo, "config", "user.email", email)
	return errors.WrapFail(err, "set user.email")
}

func (g *cliGit) AddAll(ctx context.Context, repo string) error {
	_, err := g.run(ctx, repo, "add", ".")
	return errors.WrapFail(err, "stage files")
}

func (g *cliGit) Commit(ctx context.Context, repo, message string) error {
	_, err := g.run(ctx, repo, "commit", "-m", message)
	return errors.WrapFail(err, "commit")
}

func (g *cliGit) ForcePush(ctx context.Context, repo, branch string) error {
	_, err := g.run(ctx, repo, "push", "-f", "origin", branch)
	return errors.WrapFailf(err, "push branch %q", branch)
}

func (g *cliGit) Head(ctx context.Context, repo string) (string, error) {
	out, err := g.run(ctx, repo, "rev-parse", "HEAD")
	if err != nil {
		return "", errors.WrapFail(err, "resolve HEAD")
	}
	return strings.TrimSpace(out), nil
}

func (g *cliGit) run(ctx context.Context, dir string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	out, err := g.runner.Run(ctx, dir, "git", args...)
	if err == nil {
		return out, nil
	}

	msg := err.Error()
	for _, marker := range authFailureMarkers {
		if strings.Contains(msg, marker) {
			g.log.Errorf("git auth failure, check PAT validity and repo scope: %s", msg)
			return out, errors.Wrap(err, "authentication")
		}
	}

	return out, err
}
