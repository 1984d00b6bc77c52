package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/hrishikesh-200/autodeploy/internal/tasks"
	"github.com/hrishikesh-200/autodeploy/pkg/errors"
	"github.com/hrishikesh-200/autodeploy/pkg/logger"
)

const serviceName = "LLM Task Processor"

func NewServer(cfg Config, log logger.Logger, pat string, journal journal, pool submitter) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		DisableStartupMessage: true,
		RequestMethods:        []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodHead},
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		journal: journal,
		pool:    pool,
		http:    fiber.New(fiberCfg),
		addr:    cfg.HTTP.Addr,
		secret:  cfg.Auth.Secret,
		pat:     pat,
		log:     serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	journal journal
	pool    submitter
	http    *fiber.App
	addr    string
	secret  string
	pat     string
	log     logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error

	err := s.journal.Close(ctx)
	if err != nil {
		errs = append(errs, errors.WrapFail(err, "close journal"))
	}

	err = s.http.ShutdownWithContext(ctx)
	if err != nil {
		errs = append(errs, errors.WrapFail(err, "shutdown http server"))
	}

	return errors.Join(errs...)
}

func (s *server) setupRoutes() {
	s.http.Get("/", s.handleHealth)
	s.http.Post("/api-endpoint", s.handleSubmit)
	s.http.Get("/tasks/:id", s.handleStatus)
}

type submitRequest struct {
	Email         string             `json:"email"`
	Secret        string             `json:"secret"`
	Task          string             `json:"task"`
	Round         int                `json:"round"`
	Nonce         string             `json:"nonce"`
	Brief         string             `json:"brief"`
	Checks        []string           `json:"checks"`
	EvaluationURL string             `json:"evaluation_url"`
	Attachments   []tasks.Attachment `json:"attachments"`
}

func (s *server) handleSubmit(c *fiber.Ctx) error {
	var req submitRequest
	err := c.BodyParser(&req)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "unmarshal task payload"))
		return s.sendDetail(c, http.StatusBadRequest, "bad json")
	}

	if req.Secret != s.secret {
		return s.sendDetail(c, http.StatusUnauthorized, "Invalid secret provided.")
	}

	if s.pat == "" {
		return s.sendDetail(c, http.StatusInternalServerError, "Server misconfigured: GITHUB_PAT not set.")
	}

	task := tasks.Task{
		Email:         req.Email,
		Name:          req.Task,
		Round:         req.Round,
		Nonce:         req.Nonce,
		Brief:         req.Brief,
		Checks:        req.Checks,
		EvaluationURL: req.EvaluationURL,
		Attachments:   req.Attachments,
	}

	id, err := s.journal.Accept(c.Context(), task)
	if errors.Is(err, tasks.ErrAlreadyAccepted) {
		return c.Status(http.StatusOK).JSON(map[string]string{
			"status":  "accepted",
			"message": fmt.Sprintf("Task %q, Round %d already accepted.", task.Name, task.Round),
		})
	}
	if err != nil {
		return errors.WrapFail(err, "journal task")
	}

	task.ID = id
	s.pool.Submit(c.Context(), task)

	return c.Status(http.StatusOK).JSON(map[string]string{
		"status":  "accepted",
		"message": fmt.Sprintf("Task %q, Round %d accepted and processing started in background.", task.Name, task.Round),
	})
}

func (s *server) handleHealth(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(map[string]string{
		"status":  "ok",
		"service": serviceName,
	})
}

func (s *server) handleStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return s.sendDetail(c, http.StatusBadRequest, "missing required parameter \"id\"")
	}

	task, err := s.journal.Get(c.Context(), id)
	if err != nil {
		s.log.Warn(errors.WrapFail(err, "look up task"))
		return s.sendDetail(c, http.StatusBadRequest, "bad task id")
	}
	if task == nil {
		return s.sendDetail(c, http.StatusNotFound, "no such task")
	}

	return c.Status(http.StatusOK).JSON(task)
}

func (s *server) sendDetail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(map[string]string{"detail": msg})
}
