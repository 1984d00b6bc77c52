package tasks

import (
	"context"
	"strconv"
	"time"
)

type API interface {
	// Accept registers a new submission. Returns ErrAlreadyAccepted when
	// a task with the same (task, round, nonce) triple is already journaled.
	Accept(ctx context.Context, task Task) (id string, err error)

	Get(ctx context.Context, id string) (*Task, error)

	// SelectByStatus returns all journaled tasks in the given status.
	SelectByStatus(ctx context.Context, status Status) ([]Task, error)

	SetRunning(ctx context.Context, id string) error
	SetDeployed(ctx context.Context, id string, branch, commitSHA string) error
	SetFailed(ctx context.Context, id string, code FailCode, reason string) error

	Close(ctx context.Context) error
}

type Task struct {
	ID string `json:"id" bson:"-"`

	Email string `json:"email" bson:"email"`
	Name  string `json:"task"  bson:"task"`
	Round int    `json:"round" bson:"round"`
	Nonce string `json:"nonce" bson:"nonce"`

	Brief         string       `json:"brief"          bson:"brief"`
	Checks        []string     `json:"checks"         bson:"checks"`
	EvaluationURL string       `json:"evaluation_url" bson:"evaluation_url"`
	Attachments   []Attachment `json:"attachments"    bson:"attachments"`

	Status     Status   `json:"status"                bson:"status"`
	FailCode   FailCode `json:"fail_code,omitempty"   bson:"fail_code,omitempty"`
	FailReason string   `json:"fail_reason,omitempty" bson:"fail_reason,omitempty"`
	Branch     string   `json:"branch,omitempty"      bson:"branch,omitempty"`
	CommitSHA  string   `json:"commit_sha,omitempty"  bson:"commit_sha,omitempty"`

	AcceptedAt time.Time `json:"accepted_at" bson:"accepted_at"`
	UpdatedAt  time.Time `json:"updated_at"  bson:"updated_at"`
}

type Attachment struct {
	Name string `json:"name" bson:"name"`
	URL  string `json:"url"  bson:"url"`
}

type Status string

const (
	// StatusAccepted is set when the submission has been journaled
	// and handed to the worker pool.
	StatusAccepted Status = "accepted"

	// StatusRunning is set when a worker has picked the task up.
	StatusRunning Status = "running"

	// StatusDeployed is set when the result has been pushed and
	// the evaluator notified.
	StatusDeployed Status = "deployed"

	// StatusFailed is set when any pipeline stage failed.
	StatusFailed Status = "failed"
)

// FailCode identifies the pipeline stage that failed. It is reported to
// the evaluator in place of a commit SHA.
type FailCode string

const (
	FailNone      FailCode = ""
	FailClone     FailCode = "GIT_CLONE_FAILED"
	FailGenerate  FailCode = "LLM_GEN_FAILED"
	FailBranch    FailCode = "GIT_BRANCH_FAILED"
	FailWriteFile FailCode = "FILE_WRITE_FAILED"
	FailPush      FailCode = "GIT_PUSH_FAILED"
	FailUnknown   FailCode = "ERROR"
)

// TargetBranch returns the branch the submission lands on: main for the
// first round, round-N afterwards.
func (t Task) TargetBranch() string {
	if t.Round <= 1 {
		return "main"
	}
	return "round-" + strconv.Itoa(t.Round)
}
