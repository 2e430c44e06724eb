package commands

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.trai.ch/lintsync/internal/app"
	"go.trai.ch/lintsync/internal/ui/style"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <paths...>",
		Short: "Print the server file key of workspace files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Resolve(args)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).resolutions(res)
			return nil
		},
	}
}

func (c *CLI) newMapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map [dir]",
		Short: "Print the server file key of every workspace file below dir",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			res, err := c.app.Map(dir)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).resolutions(res)
			return nil
		},
	}
}

func (c *CLI) newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files [project]",
		Short: "List the file keys the server knows for a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var project string
			if len(args) == 1 {
				project = args[0]
			}
			keys, err := c.app.Files(cmd.Context(), project)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			for _, k := range keys {
				p.line("%s", k)
			}
			return nil
		},
	}
}

func (c *CLI) newIssuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "issues <path>",
		Short: "Print the stored server issues of a workspace file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := c.app.Issues(args[0])
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			p.line("%s %s", p.header.Render(args[0]), p.muted.Render("("+plural(len(found), "issue")+")"))
			for _, issue := range found {
				loc := "-"
				if issue.TextRange != nil {
					loc = strconv.Itoa(issue.TextRange.StartLine) + ":" + strconv.Itoa(issue.TextRange.StartLineOffset)
				}
				p.line("  %-8s %s %s %s", loc, p.warn.Render(issue.Severity), issue.Message, p.muted.Render(issue.RuleKey))
			}
			return nil
		},
	}
}

func (p *printer) resolutions(res []app.Resolution) {
	for _, r := range res {
		if !r.Inside() {
			p.line("%s %s", r.Path, p.muted.Render("(outside project)"))
			continue
		}
		p.line("%s %s %s", r.Path, p.muted.Render(style.Arrow), r.FileKey)
	}
}

func plural(n int, noun string) string {
	s := strconv.Itoa(n) + " " + noun
	if n != 1 {
		s += "s"
	}
	return s
}
