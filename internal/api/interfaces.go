package api

import (
	"context"

	"github.com/hrishikesh-200/autodeploy/internal/tasks"
)

type Server interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type journal interface {
	Accept(ctx context.Context, task tasks.Task) (id string, err error)
	Get(ctx context.Context, id string) (*tasks.Task, error)
	Close(ctx context.Context) error
}

type submitter interface {
	Submit(ctx context.Context, task tasks.Task) bool
}
