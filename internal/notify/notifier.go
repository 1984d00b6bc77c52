package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/hrishikesh-200/autodeploy/pkg/errors"
	"github.com/hrishikesh-200/autodeploy/pkg/logger"
)

// Result is the payload the evaluator expects for both successful and
// failed rounds. On failure CommitSHA carries the stage code.
type Result struct {
	Email     string `json:"email"`
	Task      string `json:"task"`
	Round     int    `json:"round"`
	Nonce     string `json:"nonce"`
	RepoURL   string `json:"repo_url"`
	CommitSHA string `json:"commit_sha"`
	PagesURL  string `json:"pages_url"`
}

type Notifier interface {
	Notify(ctx context.Context, url string, result Result) error
}

func New(log logger.Logger) Notifier {
	return &httpNotifier{
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log.With("evaluator_notifier"),
	}
}

type httpNotifier struct {
	client *http.Client
	log    logger.Logger
}

func (n *httpNotifier) Notify(ctx context.Context, url string, result Result) error {
	n.log.Infof("notifying evaluator at %s", url)

	body, err := json.Marshal(result)
	if err != nil {
		return errors.WrapFail(err, "marshal result payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.WrapFail(err, "build evaluator request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return errors.WrapFail(err, "post result to evaluator")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("evaluator responded with status %d", resp.StatusCode)
	}

	n.log.Infof("evaluator notified, status %d", resp.StatusCode)
	return nil
}
