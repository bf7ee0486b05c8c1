package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spheregrid/pkg/grid"
)

// inspectCommand creates the inspect command for browsing resolved nodes.
func (c *CLI) inspectCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "inspect [config]",
		Short: "Browse the resolved nodes of a grid",
		Long: `Browse the nodes of a grid configuration interactively.

For each node the browser shows its anchor on the canvas, its box size,
its state palette and the requirement and effect lines drawn beside it.
Use --list to print the node table without the interactive browser.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configArg(args)
			cfg, err := loadConfig(path)
			if err != nil {
				return err
			}
			if err := grid.Validate(cfg, grid.PolicyLenient).Err(); err != nil {
				return err
			}
			prog := newProgress(c.Logger)
			rows, err := nodeRows(cfg)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Resolved %d nodes", len(rows)))

			title := cfg.Name
			if title == "" {
				title = configName(path)
			}
			model := NewNodeBrowserModel(title, rows)

			if list {
				model.Height = len(rows)
				model.Cursor = -1
				fmt.Println(model.nodeTable())
				return nil
			}

			c.Logger.Debug("starting browser", "nodes", len(rows))
			_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "print the node table and exit")

	return cmd
}
