package execution

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"syntaxtest/internal/domain"
	"syntaxtest/internal/engine"
	"syntaxtest/internal/ui"
)

// fakeEngine returns scripted outcomes per case name; unscripted runs pass.
type fakeEngine struct {
	outcomes map[string][]domain.RunOutcome
	loadErr  map[string]error
	runs     []string
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		outcomes: make(map[string][]domain.RunOutcome),
		loadErr:  make(map[string]error),
	}
}

func (f *fakeEngine) Load(root, name string) (*domain.TestCase, error) {
	if err := f.loadErr[name]; err != nil {
		return nil, &engine.LoadError{Path: filepath.Join(root, name), Err: err}
	}
	return &domain.TestCase{
		Name:   name,
		Path:   filepath.Join(root, name),
		Source: "contract " + name + "\n",
	}, nil
}

func (f *fakeEngine) Run(ctx context.Context, tc *domain.TestCase) domain.RunOutcome {
	f.runs = append(f.runs, tc.Name)
	queue := f.outcomes[tc.Name]
	if len(queue) == 0 {
		return domain.RunOutcome{Kind: domain.OutcomePass}
	}
	f.outcomes[tc.Name] = queue[1:]
	return queue[0]
}

func (f *fakeEngine) RawSource(tc *domain.TestCase) string {
	return tc.Source
}

func (f *fakeEngine) SerializeExpectations(diags []domain.Diagnostic, colored bool) string {
	var b strings.Builder
	for _, d := range diags {
		b.WriteString("// " + d.String() + "\n")
	}
	return b.String()
}

func failWith(diags ...domain.Diagnostic) domain.RunOutcome {
	return domain.RunOutcome{Kind: domain.OutcomeFail, Report: "  report\n", Observed: diags}
}

func engineFailure() domain.RunOutcome {
	return domain.RunOutcome{Kind: domain.OutcomeEngineError, Details: "internal error\n", Err: errors.New("exit status 3")}
}

// fakeEditor records opened paths and optionally rewrites the file
type fakeEditor struct {
	opened  []string
	content string
	err     error
}

func (e *fakeEditor) Open(ctx context.Context, path string) error {
	e.opened = append(e.opened, path)
	if e.content != "" {
		if err := os.WriteFile(path, []byte(e.content), 0644); err != nil {
			return err
		}
	}
	return e.err
}

type harness struct {
	out    *bytes.Buffer
	warn   *bytes.Buffer
	editor *fakeEditor
	runner *Runner
}

func newHarness(eng engine.Engine, keys string, interactive bool) *harness {
	h := &harness{
		out:    &bytes.Buffer{},
		warn:   &bytes.Buffer{},
		editor: &fakeEditor{},
	}
	var reader ui.KeyReader
	if interactive {
		reader = ui.NewStreamKeyReader(strings.NewReader(keys))
	}
	h.runner = NewRunner(eng, ui.NewPrinter(h.out, false), ui.NewPrinter(h.warn, false), reader, h.editor)
	return h
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}
