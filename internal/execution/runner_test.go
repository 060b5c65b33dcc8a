package execution

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"syntaxtest/internal/domain"
)

func TestRunner_Process(t *testing.T) {
	ctx := context.Background()
	x := domain.Diagnostic{Kind: "TypeError", Message: "X"}

	t.Run("pass reports OK", func(t *testing.T) {
		eng := newFakeEngine()
		h := newHarness(eng, "", true)

		v := h.runner.Process(ctx, t.TempDir(), "a.sol")
		if !v.Passed || !v.Continue || v.Problem != nil {
			t.Errorf("unexpected verdict %+v", v)
		}
		if h.out.String() != "a.sol: OK\n" {
			t.Errorf("unexpected output %q", h.out.String())
		}
	})

	t.Run("load error continues without passing", func(t *testing.T) {
		eng := newFakeEngine()
		eng.loadErr["bad.sol"] = errors.New("malformed expectations")
		h := newHarness(eng, "q", true)

		v := h.runner.Process(ctx, t.TempDir(), "bad.sol")
		if v.Passed || !v.Continue {
			t.Errorf("unexpected verdict %+v", v)
		}
		if v.Problem == nil || v.Problem.Kind != domain.ProblemLoad {
			t.Errorf("expected load problem, got %+v", v.Problem)
		}
		if !strings.Contains(h.out.String(), "cannot read test:") {
			t.Errorf("expected load error report, got %q", h.out.String())
		}
		if len(eng.runs) != 0 {
			t.Errorf("engine should not run after a load error, ran %v", eng.runs)
		}
	})

	t.Run("skip continues without passing", func(t *testing.T) {
		eng := newFakeEngine()
		eng.outcomes["c.sol"] = []domain.RunOutcome{failWith(x)}
		h := newHarness(eng, "s", true)

		v := h.runner.Process(ctx, t.TempDir(), "c.sol")
		if v.Passed || !v.Continue {
			t.Errorf("unexpected verdict %+v", v)
		}
		if v.Problem == nil || v.Problem.Kind != domain.ProblemFail {
			t.Fatalf("expected fail problem, got %+v", v.Problem)
		}
		if v.Problem.Details != "// TypeError: X\n" {
			t.Errorf("unexpected problem details %q", v.Problem.Details)
		}
		out := h.out.String()
		for _, want := range []string{"c.sol: FAIL\n", "  Contract:\n", "    contract c.sol\n", "  report\n", promptFull} {
			if !strings.Contains(out, want) {
				t.Errorf("expected output to contain %q, got %q", want, out)
			}
		}
	})

	t.Run("quit aborts", func(t *testing.T) {
		eng := newFakeEngine()
		eng.outcomes["c.sol"] = []domain.RunOutcome{failWith(x)}
		h := newHarness(eng, "q", true)

		v := h.runner.Process(ctx, t.TempDir(), "c.sol")
		if v.Passed || v.Continue {
			t.Errorf("unexpected verdict %+v", v)
		}
	})

	t.Run("closed input aborts", func(t *testing.T) {
		eng := newFakeEngine()
		eng.outcomes["c.sol"] = []domain.RunOutcome{failWith(x)}
		h := newHarness(eng, "", true)

		v := h.runner.Process(ctx, t.TempDir(), "c.sol")
		if v.Continue {
			t.Errorf("expected abort on EOF, got %+v", v)
		}
	})

	t.Run("unrecognized keys keep waiting without reprinting the prompt", func(t *testing.T) {
		eng := newFakeEngine()
		eng.outcomes["c.sol"] = []domain.RunOutcome{failWith(x)}
		h := newHarness(eng, "xyz\ns", true)

		v := h.runner.Process(ctx, t.TempDir(), "c.sol")
		if !v.Continue || v.Passed {
			t.Errorf("unexpected verdict %+v", v)
		}
		if n := strings.Count(h.out.String(), promptFull); n != 1 {
			t.Errorf("expected prompt once, got %d times", n)
		}
	})

	t.Run("engine error excludes update", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, map[string]string{"d.sol": "original\n"})
		eng := newFakeEngine()
		eng.outcomes["d.sol"] = []domain.RunOutcome{engineFailure()}
		h := newHarness(eng, "us", true)

		v := h.runner.Process(ctx, root, "d.sol")
		if v.Passed || !v.Continue {
			t.Errorf("unexpected verdict %+v", v)
		}
		if v.Problem == nil || v.Problem.Kind != domain.ProblemEngine {
			t.Errorf("expected engine problem, got %+v", v.Problem)
		}
		out := h.out.String()
		if !strings.Contains(out, promptEngineError) || strings.Contains(out, "(u)pdate") {
			t.Errorf("expected prompt without update, got %q", out)
		}
		if !strings.Contains(out, "Parsing failed:") || !strings.Contains(out, "    internal error\n") {
			t.Errorf("expected engine error listing, got %q", out)
		}
		if len(eng.runs) != 1 {
			t.Errorf("expected a single run, got %v", eng.runs)
		}
		content, err := os.ReadFile(filepath.Join(root, "d.sol"))
		if err != nil {
			t.Fatalf("failed to read case: %v", err)
		}
		if string(content) != "original\n" {
			t.Errorf("case was modified: %q", content)
		}
	})

	t.Run("update rewrites the file and reruns", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, map[string]string{"c.sol": "contract c.sol\n"})
		eng := newFakeEngine()
		eng.outcomes["c.sol"] = []domain.RunOutcome{failWith(x)}
		h := newHarness(eng, "u", true)

		v := h.runner.Process(ctx, root, "c.sol")
		if !v.Passed || !v.Continue {
			t.Errorf("expected rerun to pass, got %+v", v)
		}
		if diff := cmp.Diff([]string{"c.sol", "c.sol"}, eng.runs); diff != "" {
			t.Errorf("runs mismatch (-want +got):\n%s", diff)
		}
		content, err := os.ReadFile(filepath.Join(root, "c.sol"))
		if err != nil {
			t.Fatalf("failed to read case: %v", err)
		}
		want := "contract c.sol\n// ----\n// TypeError: X\n"
		if string(content) != want {
			t.Errorf("expected %q, got %q", want, content)
		}
		if !strings.Contains(h.out.String(), "Re-running test case...\n") {
			t.Errorf("expected rerun notice, got %q", h.out.String())
		}
	})

	t.Run("rerun result is the loop result", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, map[string]string{"c.sol": "contract c.sol\n"})
		eng := newFakeEngine()
		eng.outcomes["c.sol"] = []domain.RunOutcome{failWith(x), failWith(x)}
		h := newHarness(eng, "uq", true)

		v := h.runner.Process(ctx, root, "c.sol")
		if v.Passed || v.Continue {
			t.Errorf("expected quit from the rerun to abort, got %+v", v)
		}
		if len(eng.runs) != 2 {
			t.Errorf("expected two runs, got %v", eng.runs)
		}
	})

	t.Run("failed update is reported and continues", func(t *testing.T) {
		root := t.TempDir()
		// A directory in place of the case file makes the rewrite fail.
		if err := os.MkdirAll(filepath.Join(root, "c.sol"), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		eng := newFakeEngine()
		eng.outcomes["c.sol"] = []domain.RunOutcome{failWith(x)}
		h := newHarness(eng, "u", true)

		v := h.runner.Process(ctx, root, "c.sol")
		if v.Passed || !v.Continue {
			t.Errorf("unexpected verdict %+v", v)
		}
		if v.Problem == nil || v.Problem.Kind != domain.ProblemLoad {
			t.Errorf("expected load problem, got %+v", v.Problem)
		}
		if !strings.Contains(h.out.String(), "cannot update test:") {
			t.Errorf("expected update error, got %q", h.out.String())
		}
	})

	t.Run("edit opens the editor and reruns", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, map[string]string{"c.sol": "contract c.sol\n"})
		eng := newFakeEngine()
		eng.outcomes["c.sol"] = []domain.RunOutcome{failWith(x)}
		h := newHarness(eng, "e", true)

		v := h.runner.Process(ctx, root, "c.sol")
		if !v.Passed || !v.Continue {
			t.Errorf("expected rerun to pass, got %+v", v)
		}
		if diff := cmp.Diff([]string{filepath.Join(root, "c.sol")}, h.editor.opened); diff != "" {
			t.Errorf("editor calls mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("editor failure is a warning", func(t *testing.T) {
		eng := newFakeEngine()
		eng.outcomes["c.sol"] = []domain.RunOutcome{engineFailure()}
		h := newHarness(eng, "e", true)
		h.editor.err = errors.New("exit status 1")

		v := h.runner.Process(ctx, t.TempDir(), "c.sol")
		if !v.Passed || !v.Continue {
			t.Errorf("expected rerun to pass, got %+v", v)
		}
		if !strings.Contains(h.warn.String(), "Error running editor command: exit status 1") {
			t.Errorf("expected warning, got %q", h.warn.String())
		}
	})

	t.Run("non-interactive skips without prompting", func(t *testing.T) {
		eng := newFakeEngine()
		eng.outcomes["c.sol"] = []domain.RunOutcome{failWith(x)}
		h := newHarness(eng, "", false)

		v := h.runner.Process(ctx, t.TempDir(), "c.sol")
		if v.Passed || !v.Continue {
			t.Errorf("unexpected verdict %+v", v)
		}
		if strings.Contains(h.out.String(), "(s)kip") {
			t.Errorf("unexpected prompt in %q", h.out.String())
		}
	})

	t.Run("interrupted run aborts without prompting", func(t *testing.T) {
		eng := newFakeEngine()
		eng.outcomes["c.sol"] = []domain.RunOutcome{engineFailure()}
		h := newHarness(eng, "e", true)
		cctx, cancel := context.WithCancel(context.Background())
		cancel()

		v := h.runner.Process(cctx, t.TempDir(), "c.sol")
		if v.Passed || v.Continue {
			t.Errorf("expected abort, got %+v", v)
		}
		out := h.out.String()
		if strings.Contains(out, "(s)kip") || strings.Contains(out, "FAIL") {
			t.Errorf("unexpected failure report in %q", out)
		}
		if len(h.editor.opened) != 0 {
			t.Errorf("editor should not be opened, got %v", h.editor.opened)
		}
	})
}
