package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func queryCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "query <raw query>",
		Short: "Run a raw launcher query (trigger included) and print the items",
		Long: `Dispatch a raw query to the plugin whose trigger it starts with and print
the resulting items. Untriggered input yields no items.

  lpk query "dict Hund"          TSV: index, text, subtext, action
  lpk query --json "jb plugin"   JSON array for launcher hosts`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return runQuery(cmd, a, args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print items as JSON")

	return cmd
}

func runQuery(cmd *cobra.Command, a *app, raw string, asJSON bool) error {
	items, err := a.registry.Dispatch(cmd.Context(), raw)
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(os.Stdout, items)
	}
	if len(items) == 0 {
		fmt.Fprintln(os.Stderr, "No results found.")
		return nil
	}
	writeTSV(os.Stdout, items, stdoutIsTerminal())
	return nil
}
