package worker

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	"github.com/hrishikesh-200/autodeploy/internal/generator"
	"github.com/hrishikesh-200/autodeploy/internal/tasks"
	"github.com/hrishikesh-200/autodeploy/pkg/errors"
	"github.com/hrishikesh-200/autodeploy/pkg/logger"
)

func writeFiles(workdir string, generated generator.Generated, attachments []tasks.Attachment, log logger.Logger) error {
	files := map[string]string{
		generated.Filename: generated.Code,
		"README.md":        generated.Readme,
		"LICENSE":          generated.License,
	}

	for name, content := range files {
		err := writeRepoFile(workdir, name, []byte(content))
		if err != nil {
			return err
		}
	}

	// Only data: URIs are materialized; remote URLs stay references
	// for the generated code to fetch at runtime.
	for _, att := range attachments {
		if !strings.HasPrefix(att.URL, "data:") {
			continue
		}

		data, err := DecodeDataURI(att.URL)
		if err != nil {
			log.Warn(errors.WrapFailf(err, "decode attachment %q", att.Name))
			continue
		}

		err = writeRepoFile(workdir, att.Name, data)
		if err != nil {
			return err
		}
		log.Infof("saved attachment %q", att.Name)
	}

	return nil
}

func writeRepoFile(workdir, name string, content []byte) error {
	path := filepath.Join(workdir, filepath.Clean(name))
	if !strings.HasPrefix(path, filepath.Clean(workdir)+string(os.PathSeparator)) {
		return errors.Errorf("file name %q escapes the repository", name)
	}

	err := os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return errors.WrapFailf(err, "create directory for %q", name)
	}

	err = os.WriteFile(path, content, 0o644)
	return errors.WrapFailf(err, "write %q", name)
}

// DecodeDataURI decodes the payload of a data:<mime>;base64,<data> URI.
func DecodeDataURI(uri string) ([]byte, error) {
	_, payload, found := strings.Cut(uri, ",")
	if !found {
		return nil, errors.Error("malformed data uri")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	return data, errors.WrapFail(err, "decode base64 payload")
}

// cleanup removes the scratch clone; a second pass covers transient
// file-lock failures.
func (p *pool) cleanup(workdir string) {
	if _, err := os.Stat(workdir); err != nil {
		return
	}

	err := os.RemoveAll(workdir)
	if err == nil {
		p.log.Infof("cleaned up %s", workdir)
		return
	}

	p.log.Warn(errors.WrapFailf(err, "clean up %s, retrying", workdir))
	err = os.RemoveAll(workdir)
	if err != nil {
		p.log.Error(errors.WrapFailf(err, "remove %s after retry", workdir))
	}
}
