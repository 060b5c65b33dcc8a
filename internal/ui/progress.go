package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows how many cases ran during a non-interactive run
type ProgressBar struct {
	bar    *progressbar.ProgressBar
	styles progressStyles
}

type progressStyles struct {
	label, passed, failed *color.Color
}

func newProgressStyles(colored bool) progressStyles {
	s := progressStyles{
		label:  color.New(color.FgCyan),
		passed: color.New(color.FgGreen),
		failed: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{s.label, s.passed, s.failed} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// NewProgressBar creates a new progress bar for count cases writing to w.
// Escape sequences are only emitted when colored is set.
func NewProgressBar(count int, w io.Writer, colored bool) *ProgressBar {
	styles := newProgressStyles(colored)
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(styles.describe(0, 0)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        styles.label.Sprint("█"),
			SaucerHead:    styles.label.Sprint("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(colored),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar, styles: styles}
}

func (s progressStyles) describe(passed, failed int) string {
	return s.label.Sprint("Running cases: ") +
		s.passed.Sprintf("[passed: %d", passed) +
		" | " +
		s.failed.Sprintf("failed: %d]", failed)
}

// Update sets the bar to the given counts
func (p *ProgressBar) Update(passed, failed int) {
	p.bar.Set(passed + failed)
	p.bar.Describe(p.styles.describe(passed, failed))
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
