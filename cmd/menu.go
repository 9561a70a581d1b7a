package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"
)

func (a *app) runMenu(ctx context.Context, cmd *cli.Command) error {
	cfg, _, err := a.loadData(cmd)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(cfg.Menu))
	for _, link := range cfg.Menu {
		rows = append(rows, []string{link.Title, link.Path})
	}

	a.printRows([]string{"TITLE", "PATH"}, rows)
	return nil
}

// printRows writes a table to a terminal, or tab separated lines otherwise.
func (a *app) printRows(headers []string, rows [][]string) {
	if styleFor(a.out) != outputRich {
		for _, row := range rows {
			fmt.Fprintf(a.out, "%s\t%s\n", row[0], row[1])
		}
		return
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers(headers...).
		Rows(rows...)

	fmt.Fprintln(a.out, t.Render())
}
