package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/lintsync/internal/ui/output"
	"go.trai.ch/lintsync/internal/ui/style"
)

// printer renders listings for one output stream.
type printer struct {
	w      io.Writer
	header lipgloss.Style
	muted  lipgloss.Style
	ok     lipgloss.Style
	warn   lipgloss.Style
	bad    lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	profile := termenv.Ascii
	if output.IsTerminal(w) {
		profile = output.ColorProfile()
	}
	r := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	return &printer{
		w:      w,
		header: r.NewStyle().Bold(true).Foreground(style.Accent),
		muted:  r.NewStyle().Foreground(style.Muted),
		ok:     r.NewStyle().Foreground(style.Green),
		warn:   r.NewStyle().Foreground(style.Yellow),
		bad:    r.NewStyle().Foreground(style.Red),
	}
}

func (p *printer) line(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}

func printDone(cmd *cobra.Command, msg string) {
	p := newPrinter(cmd.OutOrStdout())
	p.line("%s %s", p.ok.Render(style.Check), msg)
}
