package commands

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/lintsync/internal/app"
	"go.trai.ch/lintsync/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [modules...]",
		Short: "Show the state of the local storage",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.app.Status(args)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			p.line("%s", p.header.Render("Global"))
			p.snapshot(report.Global)
			if len(report.Modules) == 0 {
				return nil
			}
			p.line("")
			p.line("%s", p.header.Render("Modules"))
			for _, m := range report.Modules {
				p.snapshot(m)
			}
			return nil
		},
	}
}

func (p *printer) snapshot(r app.SnapshotReport) {
	var icon lipgloss.Style
	var mark string
	switch r.State {
	case app.SnapshotOK:
		icon, mark = p.ok, style.Check
	case app.SnapshotOutdated, app.SnapshotIncomplete:
		icon, mark = p.warn, style.Warning
	default:
		icon, mark = p.bad, style.Cross
	}

	details := string(r.State)
	if !r.UpdatedAt.IsZero() {
		details += ", updated " + r.UpdatedAt.UTC().Format(time.RFC3339)
	}
	if r.Version != "" {
		details += " by " + r.Version
	}
	if r.Modules > 0 {
		details += ", " + plural(r.Modules, "module")
	}
	p.line("  %s %s %s", icon.Render(mark), r.Key, p.muted.Render("("+details+")"))
}
