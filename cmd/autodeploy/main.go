package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hrishikesh-200/autodeploy/internal/api"
	"github.com/hrishikesh-200/autodeploy/internal/events"
	"github.com/hrishikesh-200/autodeploy/internal/generator"
	"github.com/hrishikesh-200/autodeploy/internal/gitops"
	"github.com/hrishikesh-200/autodeploy/internal/notify"
	"github.com/hrishikesh-200/autodeploy/internal/tasks"
	"github.com/hrishikesh-200/autodeploy/internal/worker"
	"github.com/hrishikesh-200/autodeploy/pkg/errors"
	"github.com/hrishikesh-200/autodeploy/pkg/logger"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Panic(errors.WrapFail(err, "init logger"))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGABRT)
	defer cancel()

	pat := os.Getenv("GITHUB_PAT")
	if pat == "" {
		log.Warnf("GITHUB_PAT is not set, submissions will be rejected")
	}

	journal, err := tasks.New(ctx, log, cfg.Mongo)
	if err != nil {
		log.Panic(errors.WrapFail(err, "init tasks journal"))
	}

	gen := generator.NewRuleBased(log)
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		gen, err = generator.NewGemini(ctx, log, cfg.Generator, apiKey, gen)
		if err != nil {
			log.Panic(errors.WrapFail(err, "init gemini generator"))
		}
	} else {
		log.Warnf("GEMINI_API_KEY is not set, using the rule-based generator")
	}

	pool := worker.New(cfg.Worker, log, pat, worker.Deps{
		Journal:   journal,
		Git:       gitops.New(log),
		Generator: gen,
		Notifier:  notify.New(log),
		Events:    events.New(cfg.Events, log),
	})

	err = pool.Run(ctx)
	if err != nil {
		log.Panic(errors.WrapFail(err, "start worker pool"))
	}

	srv := api.NewServer(cfg.API, log, pat, journal, pool)

	stopped := make(chan struct{})
	context.AfterFunc(ctx, func() {
		stdlog.Println("Graceful shutdown...")

		shutdownCtx := context.Background()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error(errors.WrapFail(err, "shutdown server"))
		}
		if err := pool.Shutdown(shutdownCtx); err != nil {
			log.Error(errors.WrapFail(err, "shutdown worker pool"))
		}

		stopped <- struct{}{}
	})

	stdlog.Printf("Serving on %s", cfg.API.HTTP.Addr)

	err = srv.Serve(ctx)
	if err != nil && ctx.Err() == nil {
		log.Panic(errors.WrapFail(err, "serve"))
	}

	<-stopped
	stdlog.Println("Shutdown complete")
}
