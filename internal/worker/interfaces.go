package worker

import (
	"context"

	"github.com/hrishikesh-200/autodeploy/internal/events"
	"github.com/hrishikesh-200/autodeploy/internal/generator"
	"github.com/hrishikesh-200/autodeploy/internal/notify"
	"github.com/hrishikesh-200/autodeploy/internal/tasks"
)

type Pool interface {
	Run(ctx context.Context) error
	Submit(ctx context.Context, task tasks.Task) bool
	Shutdown(ctx context.Context) error
}

type journal interface {
	SelectByStatus(ctx context.Context, status tasks.Status) ([]tasks.Task, error)
	SetRunning(ctx context.Context, id string) error
	SetDeployed(ctx context.Context, id string, branch, commitSHA string) error
	SetFailed(ctx context.Context, id string, code tasks.FailCode, reason string) error
}

type git interface {
	Clone(ctx context.Context, source, target string) error
	NewBranch(ctx context.Context, repo, branch string) error
	SetIdentity(ctx context.Context, repo, name, email string) error
	AddAll(ctx context.Context, repo string) error
	Commit(ctx context.Context, repo, message string) error
	ForcePush(ctx context.Context, repo, branch string) error
	Head(ctx context.Context, repo string) (sha string, err error)
}

type appGenerator interface {
	Generate(ctx context.Context, task tasks.Task) (generator.Generated, error)
}

type evaluatorNotifier interface {
	Notify(ctx context.Context, url string, result notify.Result) error
}

type eventProducer interface {
	Publish(ctx context.Context, event events.Event) error
}
