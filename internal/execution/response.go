package execution

import (
	"context"
	"io"

	"syntaxtest/internal/domain"
	"syntaxtest/internal/ui"
)

type response int

const (
	responseSkip response = iota
	responseRerun
	responseUpdateFailed
	responseQuit
)

const (
	promptFull        = "(e)dit/(u)pdate expectations/(s)kip/(q)uit? "
	promptEngineError = "(e)dit/(s)kip/(q)uit? "
)

// respond prompts once and reads keys until one maps to an allowed command.
// Update is not offered after an engine error. A closed input quits.
func (r *Runner) respond(ctx context.Context, tc *domain.TestCase, outcome domain.RunOutcome) (response, error) {
	engineFailed := outcome.Kind == domain.OutcomeEngineError
	if engineFailed {
		r.out.Printf("%s", promptEngineError)
	} else {
		r.out.Printf("%s", promptFull)
	}
	r.out.Flush()

	for {
		key, err := r.keys.ReadKey()
		if err != nil {
			if err != io.EOF {
				r.warn.Styled(ui.Warning, "reading command: %v", err)
				r.warn.Println()
			}
			r.out.Println()
			return responseQuit, nil
		}

		switch domain.ParseCommand(key) {
		case domain.CommandSkip:
			r.out.Println()
			return responseSkip, nil
		case domain.CommandUpdate:
			if engineFailed {
				continue
			}
			r.out.Println()
			if err := r.rewrite(tc, outcome.Observed); err != nil {
				return responseUpdateFailed, err
			}
			return responseRerun, nil
		case domain.CommandEdit:
			r.out.Println()
			r.out.Println()
			if err := r.editor.Open(ctx, tc.Path); err != nil {
				r.warn.Styled(ui.Warning, "Error running editor command: %v", err)
				r.warn.Println()
				r.warn.Println()
			}
			return responseRerun, nil
		case domain.CommandQuit:
			r.out.Println()
			return responseQuit, nil
		}
	}
}
