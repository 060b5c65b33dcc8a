package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"syntaxtest/internal/domain"
	"syntaxtest/internal/storage"
)

// Viewer displays the stored results of a run
type Viewer interface {
	View(results *domain.RunOutput) error
}

// OpenFunc opens a case file, typically in the operator's editor
type OpenFunc func(path string) error

// ResultsViewer lists the cases that did not pass in an interactive TUI
type ResultsViewer struct {
	storage storage.Storage
	printer *Printer
	open    OpenFunc
}

// NewResultsViewer creates a new ResultsViewer. open may be nil.
func NewResultsViewer(st storage.Storage, printer *Printer, open OpenFunc) *ResultsViewer {
	return &ResultsViewer{storage: st, printer: printer, open: open}
}

// View displays the problems of the last run
func (rv *ResultsViewer) View(results *domain.RunOutput) error {
	if len(results.Details) == 0 {
		rv.printer.Styled(Success, "✓ %d/%d cases passed, nothing to review", results.Meta.CasesPassed, results.Meta.CasesRun)
		rv.printer.Println()
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	for i := range results.Details {
		list.AddItem(listItemText(results.Details[i], i), "", 0, nil)
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true)

	updateHeader := func() {
		unresolved := 0
		for _, p := range results.Details {
			if !p.Resolved {
				unresolved++
			}
		}
		headerView.SetText(fmt.Sprintf(" %d/%d passed, %d unresolved | ↑↓ navigate, [yellow]R[white] resolve, [yellow]E[white] edit, → details, ← back, Ctrl+C exit ",
			results.Meta.CasesPassed, results.Meta.CasesRun, unresolved))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(results.Details) {
			return
		}
		p := results.Details[index]
		statsView.SetText(fmt.Sprintf("[cyan]case:[white] [yellow]%s[white] ([red]%s[white])\n[cyan]path:[white] %s",
			tview.Escape(p.Name), p.Kind, tview.Escape(p.Path)))
		detailsView.SetText(formatProblemDetails(p))
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			index := list.GetCurrentItem()
			if index < 0 || index >= len(results.Details) {
				return event
			}
			switch event.Rune() {
			case 'r', 'R':
				err := rv.toggleResolved(results, index)
				list.SetItemText(index, listItemText(results.Details[index], index), "")
				updateHeader()
				if err != nil {
					headerView.SetText(fmt.Sprintf("[red]%s[white]", tview.Escape(err.Error())))
				}
				return nil
			case 'e', 'E':
				if rv.open != nil {
					path := results.Details[index].Path
					app.Suspend(func() {
						if err := rv.open(path); err != nil {
							rv.printer.Styled(Warning, "Error running editor command: %v", err)
							rv.printer.Println()
						}
					})
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	updateHeader()
	updateDetails()

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsView, 0, 1, false)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// toggleResolved flips the resolved mark of one problem and persists the results
func (rv *ResultsViewer) toggleResolved(results *domain.RunOutput, index int) error {
	results.Details[index].Resolved = !results.Details[index].Resolved
	if err := rv.storage.SaveOutput(results); err != nil {
		return fmt.Errorf("failed to save resolved state: %w", err)
	}
	return nil
}

func listItemText(p domain.CaseProblem, index int) string {
	if p.Resolved {
		return fmt.Sprintf("[gray]✓ %d. %s[white]", index+1, tview.Escape(p.Name))
	}
	return fmt.Sprintf("[yellow]%d.[white] %s", index+1, tview.Escape(p.Name))
}

// formatProblemDetails formats a problem for display using tview color tags
func formatProblemDetails(p domain.CaseProblem) string {
	var b strings.Builder
	switch p.Kind {
	case domain.ProblemLoad:
		b.WriteString("[red]Cannot read test[white]\n\n")
	case domain.ProblemEngine:
		b.WriteString("[red]Engine failed[white]\n\n")
	default:
		b.WriteString("[red]Obtained result[white]\n\n")
	}
	details := strings.TrimRight(p.Details, "\n")
	if details == "" {
		details = "Success"
	}
	b.WriteString(tview.Escape(details))
	b.WriteString("\n")
	return b.String()
}
