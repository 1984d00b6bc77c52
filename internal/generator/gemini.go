package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/hrishikesh-200/autodeploy/internal/tasks"
	"github.com/hrishikesh-200/autodeploy/pkg/errors"
	"github.com/hrishikesh-200/autodeploy/pkg/logger"
)

const defaultModel = "gemini-2.0-flash"

type GeminiConfig struct {
	Model string `yaml:"model"`
}

// NewGemini builds an LLM-backed generator. The fallback is used when the
// model returns something unusable, so a bad round still deploys a page.
func NewGemini(ctx context.Context, log logger.Logger, cfg GeminiConfig, apiKey string, fallback Generator) (Generator, error) {
	if apiKey == "" {
		return nil, errors.Error("empty api key")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, errors.WrapFail(err, "create genai client")
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &gemini{
		client:   client,
		model:    model,
		fallback: fallback,
		log:      log.With("gemini_generator"),
	}, nil
}

type gemini struct {
	client   *genai.Client
	model    string
	fallback Generator
	log      logger.Logger
}

func (g *gemini) Generate(ctx context.Context, task tasks.Task) (Generated, error) {
	g.log.Infof("calling %s for task %q round %d", g.model, task.Name, task.Round)

	contents := []*genai.Content{
		genai.NewContentFromText(buildPrompt(task), genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		g.log.Warn(errors.WrapFail(err, "generate content"))
		return g.fallback.Generate(ctx, task)
	}

	var out Generated
	err = json.Unmarshal([]byte(result.Text()), &out)
	if err != nil || out.Filename == "" || out.Code == "" {
		g.log.Warnf("unusable model response, using fallback: %v", err)
		return g.fallback.Generate(ctx, task)
	}

	if out.Readme == "" {
		out.Readme = renderReadme(task, out.Filename)
	}
	if out.License == "" {
		out.License = mitLicense
	}

	return out, nil
}

func buildPrompt(task tasks.Task) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a complete single-file solution for the task %q.\n", task.Name)
	fmt.Fprintf(&b, "Brief:\n%s\n", task.Brief)

	if len(task.Checks) > 0 {
		b.WriteString("\nThe solution must satisfy these checks:\n")
		for _, check := range task.Checks {
			fmt.Fprintf(&b, "- %s\n", check)
		}
	}

	for _, att := range task.Attachments {
		if !strings.HasPrefix(att.URL, "data:") {
			fmt.Fprintf(&b, "\nAttachment available at runtime: %s (%s)\n", att.Name, att.URL)
		} else {
			fmt.Fprintf(&b, "\nAttachment file present in the repo: %s\n", att.Name)
		}
	}

	b.WriteString(`
Respond with a JSON object with exactly these keys:
  "filename": name of the primary file (index.html for web pages and games, solution.py for scripts),
  "code_content": full contents of that file,
  "readme_content": a README.md describing the solution,
  "license_content": an MIT license text.
`)

	return b.String()
}
