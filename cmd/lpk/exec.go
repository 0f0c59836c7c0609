package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/launcher-plugins/internal/item"
)

func execCmd() *cobra.Command {
	var index, action int

	cmd := &cobra.Command{
		Use:   "exec <raw query>",
		Short: "Re-run a query and execute an action of one of its items",
		Long: `Re-run the raw query, pick the item at --index and run its action at
--action: copy text to the clipboard or start the IDE. The run is recorded
in the history database.

  lpk exec --index 0 "dict Hund"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			raw := args[0]

			items, err := a.registry.Dispatch(cmd.Context(), raw)
			if err != nil {
				return err
			}
			if index < 0 || index >= len(items) {
				return fmt.Errorf("no item %d (query returned %d)", index, len(items))
			}
			it := items[index]

			act, err := item.Runner{}.RunIndex(it, action)
			if err != nil {
				return err
			}
			switch act.Kind {
			case item.ActionClip:
				fmt.Printf("Copied to clipboard: %s\n", act.Text)
			case item.ActionProc:
				fmt.Printf("Started: %s\n", act.Payload())
			}

			db, err := a.openHistory()
			if err != nil {
				a.log.Warn("history unavailable", "error", err)
				return nil
			}
			defer db.Close()
			if err := db.Add(a.pluginName(raw), raw, it, act); err != nil {
				a.log.Warn("could not record action", "error", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "Item index as printed by 'lpk query'")
	cmd.Flags().IntVar(&action, "action", 0, "Action index within the item")

	return cmd
}
