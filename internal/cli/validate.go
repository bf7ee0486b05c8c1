package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spheregrid/pkg/errors"
	"github.com/matzehuels/spheregrid/pkg/grid"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	var lenient bool

	cmd := &cobra.Command{
		Use:   "validate [config]",
		Short: "Check a grid configuration for errors",
		Long: `Check a grid configuration without rendering it.

Every problem is reported, not just the first. The command exits non-zero
when any fatal issue is found; warnings alone do not fail it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configArg(args)
			cfg, err := loadConfig(path)
			if err != nil {
				return err
			}

			policy := grid.PolicyStrict
			if lenient {
				policy = grid.PolicyLenient
			}
			c.Logger.Debug("validating", "config", configName(path), "policy", policy)

			report := grid.Validate(cfg, policy)
			if len(report.Issues)+len(report.Warnings) > 0 {
				fmt.Println(issueTable(report.Issues, report.Warnings))
			}
			if !report.OK() {
				printError("%s has %d issue(s)", configName(path), len(report.Issues))
				return report.Err()
			}

			printSuccess("%s is valid", StyleHighlight.Render(configName(path)))
			printDetail("%d tiers · %d domains · %d nodes · %d edges", len(cfg.Tiers), len(cfg.Domains), len(cfg.Nodes), len(cfg.Edges))
			if n := len(report.Warnings); n > 0 {
				printWarning("%d warning(s)", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&lenient, "lenient", false, "report unknown edge endpoints as warnings")

	return cmd
}

// issueTable renders fatal issues followed by warnings.
func issueTable(issues, warnings []errors.Issue) string {
	rows := make([][]string, 0, len(issues)+len(warnings))
	for _, is := range issues {
		rows = append(rows, []string{iconError, string(is.Code), is.Path, is.Message})
	}
	for _, is := range warnings {
		rows = append(rows, []string{iconWarning, string(is.Code), is.Path, is.Message})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Code", "Path", "Message").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			fatal := row < len(issues)
			switch col {
			case 0, 1:
				if fatal {
					return cell.Foreground(colorRed)
				}
				return cell.Foreground(colorYellow)
			case 2:
				return cell.Foreground(colorGray)
			}
			return cell.Foreground(colorWhite)
		}).
		Render()
}
