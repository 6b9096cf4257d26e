package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cplxtris/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game modes",
	Long:  `Shows every registered game mode with its controls.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	games := registry.List()
	if len(games) == 0 {
		return fmt.Errorf("no game modes are registered")
	}

	width := len("ID")
	for _, g := range games {
		width = max(width, len(g.ID))
	}

	fmt.Fprintf(out, "%-*s  %s\n", width, "ID", "Title")
	for _, g := range games {
		fmt.Fprintf(out, "%-*s  %s\n", width, g.ID, g.Title)
		if g.Controls != "" {
			fmt.Fprintf(out, "%-*s  %s\n", width, "", g.Controls)
		}
	}
	fmt.Fprintln(out, "\nRun 'cplxtris play <id>' to play.")
	return nil
}
