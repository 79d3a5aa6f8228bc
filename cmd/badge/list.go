package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/badge-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available apps",
	Long:  `Shows a list of all apps registered on the badge.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	apps := registry.List()
	out := cmd.OutOrStdout()

	if len(apps) == 0 {
		fmt.Fprintln(out, "No apps available.")
		return
	}

	fmt.Fprintln(out, "Available apps:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, a := range apps {
		maxIDLen = max(maxIDLen, len(a.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, a := range apps {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, a.ID, a.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'badge play <id>' to play an app.")
}
