package worker

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/hrishikesh-200/autodeploy/internal/events"
	"github.com/hrishikesh-200/autodeploy/internal/notify"
	"github.com/hrishikesh-200/autodeploy/internal/tasks"
	"github.com/hrishikesh-200/autodeploy/pkg/errors"
	"github.com/hrishikesh-200/autodeploy/pkg/logger"
	"github.com/hrishikesh-200/autodeploy/pkg/tools/await"
)

type Deps struct {
	Journal   journal
	Git       git
	Generator appGenerator
	Notifier  evaluatorNotifier
	Events    eventProducer
}

func New(cfg Config, log logger.Logger, pat string, deps Deps) Pool {
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}

	return &pool{
		cfg:      cfg,
		pat:      pat,
		deps:     deps,
		queue:    make(chan tasks.Task, cfg.QueueSize),
		inflight: make(map[string]struct{}),
		log:      log.With("worker_pool"),
	}
}

type pool struct {
	cfg   Config
	pat   string
	deps  Deps
	queue chan tasks.Task
	log   logger.Logger
	wg    sync.WaitGroup

	mu       sync.Mutex
	inflight map[string]struct{}
}

func (p *pool) Run(ctx context.Context) error {
	for i := 0; i < p.cfg.PoolSize; i++ {
		p.wg.Add(1)
		go p.workLoop(ctx)
	}

	if p.cfg.RepairInterval > 0 {
		p.wg.Add(1)
		go p.repairLoop(ctx)
	}

	return nil
}

// Submit hands a journaled task to the pool. Returns false when the task
// is already queued or being processed, when the queue is full, or when
// the context is done; the repair loop will pick the task up later.
func (p *pool) Submit(ctx context.Context, task tasks.Task) bool {
	if !p.track(task.ID) {
		return false
	}

	select {
	case <-ctx.Done():
		p.untrack(task.ID)
		return false
	case p.queue <- task:
		p.publish(ctx, task, tasks.StatusAccepted, tasks.FailNone, "")
		return true
	default:
		p.untrack(task.ID)
		p.log.Warnf("queue full, task %q deferred to repair loop", task.ID)
		return false
	}
}

func (p *pool) track(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, busy := p.inflight[id]; busy {
		return false
	}
	p.inflight[id] = struct{}{}
	return true
}

func (p *pool) untrack(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inflight, id)
}

func (p *pool) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Error("shutdown context done before workers stopped")
	}
}

func (p *pool) workLoop(ctx context.Context) {
	defer p.wg.Done()

	next := await.FromChan(p.queue)
	for next.Await(ctx) {
		task, _ := next.Value()
		p.process(ctx, task)
		p.untrack(task.ID)
	}
}

// repairLoop re-queues tasks that were journaled but never finished,
// e.g. accepted right before a restart or abandoned by a crashed run.
// In-flight tracking in Submit keeps it from duplicating tasks that are
// merely waiting behind a busy worker.
func (p *pool) repairLoop(ctx context.Context) {
	defer p.wg.Done()

	tick := await.Tick(p.cfg.RepairInterval)
	for tick.Await(ctx) {
		p.requeueStuck(ctx)
	}
}

func (p *pool) requeueStuck(ctx context.Context) {
	stuck, err := p.deps.Journal.SelectByStatus(ctx, tasks.StatusAccepted)
	if err != nil {
		p.log.Warn(errors.WrapFail(err, "select stuck tasks"))
		return
	}

	for _, task := range stuck {
		if time.Since(task.AcceptedAt) < p.cfg.RepairInterval {
			continue
		}
		if p.Submit(ctx, task) {
			p.log.Infof("re-queued stuck task %q (%s round %d)", task.ID, task.Name, task.Round)
		}
	}

	abandoned, err := p.deps.Journal.SelectByStatus(ctx, tasks.StatusRunning)
	if err != nil {
		p.log.Warn(errors.WrapFail(err, "select abandoned tasks"))
		return
	}

	staleAfter := p.cfg.TaskTimeout
	if staleAfter <= 0 {
		staleAfter = p.cfg.RepairInterval
	}

	for _, task := range abandoned {
		if time.Since(task.UpdatedAt) < staleAfter {
			continue
		}
		if p.Submit(ctx, task) {
			p.log.Infof("re-queued abandoned task %q (%s round %d)", task.ID, task.Name, task.Round)
		}
	}
}

func (p *pool) process(ctx context.Context, task tasks.Task) {
	log := p.log.With("task_" + task.ID)
	log.Infof("starting task %q, round %d", task.Name, task.Round)

	if p.cfg.TaskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.cfg.TaskTimeout)
		defer cancel()
	}

	err := p.deps.Journal.SetRunning(ctx, task.ID)
	if err != nil {
		log.Warn(errors.WrapFail(err, "mark task running"))
	}

	workdir := filepath.Join(p.cfg.Workdir, task.ID)
	p.cleanup(workdir)

	err = p.deps.Git.Clone(ctx, p.cfg.GitHub.AuthURL(p.pat), workdir)
	if err != nil {
		p.fail(ctx, log, task, workdir, tasks.FailClone, err)
		return
	}

	generated, err := p.deps.Generator.Generate(ctx, task)
	if err != nil {
		p.fail(ctx, log, task, workdir, tasks.FailGenerate, err)
		return
	}

	branch := task.TargetBranch()

	// Round 1 lands on the clone's default branch; later rounds get their own.
	if task.Round > 1 {
		err = p.deps.Git.NewBranch(ctx, workdir, branch)
		if err != nil {
			p.fail(ctx, log, task, workdir, tasks.FailBranch, err)
			return
		}
	}

	err = p.deps.Git.SetIdentity(ctx, workdir, p.cfg.GitHub.Username, task.Email)
	if err != nil {
		p.fail(ctx, log, task, workdir, tasks.FailBranch, err)
		return
	}

	err = writeFiles(workdir, generated, task.Attachments, log)
	if err != nil {
		p.fail(ctx, log, task, workdir, tasks.FailWriteFile, err)
		return
	}

	sha, err := p.push(ctx, workdir, branch, task)
	if err != nil {
		p.fail(ctx, log, task, workdir, tasks.FailPush, err)
		return
	}

	// Bookkeeping must survive the per-task deadline expiring mid-flight.
	ctx = context.WithoutCancel(ctx)

	err = p.deps.Journal.SetDeployed(ctx, task.ID, branch, sha)
	if err != nil {
		log.Warn(errors.WrapFail(err, "mark task deployed"))
	}

	result := p.result(task)
	result.CommitSHA = sha

	err = p.deps.Notifier.Notify(ctx, task.EvaluationURL, result)
	if err != nil {
		log.Error(errors.WrapFail(err, "notify evaluator of success"))
	}

	p.publish(ctx, task, tasks.StatusDeployed, tasks.FailNone, sha)
	p.cleanup(workdir)

	log.Infof("task %q round %d deployed at %s", task.Name, task.Round, sha)
}

func (p *pool) push(ctx context.Context, workdir, branch string, task tasks.Task) (string, error) {
	err := p.deps.Git.AddAll(ctx, workdir)
	if err != nil {
		return "", err
	}

	message := fmt.Sprintf("Submission for Round %d - %s", task.Round, task.Name)
	err = p.deps.Git.Commit(ctx, workdir, message)
	if err != nil {
		return "", err
	}

	err = p.deps.Git.ForcePush(ctx, workdir, branch)
	if err != nil {
		return "", err
	}

	return p.deps.Git.Head(ctx, workdir)
}

func (p *pool) fail(ctx context.Context, log logger.Logger, task tasks.Task, workdir string, code tasks.FailCode, cause error) {
	log.Error(errors.WrapFailf(cause, "process task %q (stage %s)", task.Name, code))

	// The stage may have failed because the per-task deadline expired;
	// the journal update and the evaluator notification still have to land.
	ctx = context.WithoutCancel(ctx)

	err := p.deps.Journal.SetFailed(ctx, task.ID, code, cause.Error())
	if err != nil {
		log.Warn(errors.WrapFail(err, "mark task failed"))
	}

	result := p.result(task)
	result.CommitSHA = string(code)

	err = p.deps.Notifier.Notify(ctx, task.EvaluationURL, result)
	if err != nil {
		log.Error(errors.WrapFail(err, "notify evaluator of failure"))
	}

	p.publish(ctx, task, tasks.StatusFailed, code, "")
	p.cleanup(workdir)
}

func (p *pool) result(task tasks.Task) notify.Result {
	return notify.Result{
		Email:    task.Email,
		Task:     task.Name,
		Round:    task.Round,
		Nonce:    task.Nonce,
		RepoURL:  p.cfg.GitHub.RepoURL(),
		PagesURL: p.cfg.GitHub.PagesURL(),
	}
}

func (p *pool) publish(ctx context.Context, task tasks.Task, status tasks.Status, code tasks.FailCode, sha string) {
	err := p.deps.Events.Publish(ctx, events.Event{
		TaskID:    task.ID,
		Task:      task.Name,
		Round:     task.Round,
		Nonce:     task.Nonce,
		Status:    status,
		FailCode:  code,
		CommitSHA: sha,
		At:        time.Now().UTC(),
	})
	if err != nil {
		p.log.Warn(errors.WrapFail(err, "publish lifecycle event"))
	}
}
