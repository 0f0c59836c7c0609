package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var pluginName string
	var limit, pruneDays int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show actions run from the launcher, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			db, err := a.openHistory()
			if err != nil {
				return err
			}
			defer db.Close()

			if pruneDays > 0 {
				n, err := db.Prune(time.Now().AddDate(0, 0, -pruneDays))
				if err != nil {
					return fmt.Errorf("prune: %w", err)
				}
				fmt.Fprintf(os.Stderr, "Pruned %d records older than %d days\n", n, pruneDays)
			}

			records, err := db.Recent(pluginName, limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(os.Stderr, "No history yet.")
				return nil
			}

			color := stdoutIsTerminal()
			for _, r := range records {
				when := r.RunAt.Local().Format("2006-01-02 15:04")
				if color {
					when = sColorDim + when + sColorReset
				}
				fmt.Printf("%s\t%s\t%s\t%s\t%s\n",
					when,
					r.Plugin,
					tsvField(r.Query),
					r.Kind,
					tsvField(r.Payload),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pluginName, "plugin", "", "Only show one plugin (e.g. DictCC)")
	cmd.Flags().IntVar(&limit, "limit", 50, "Max records")
	cmd.Flags().IntVar(&pruneDays, "prune-days", 0, "Delete records older than N days first")

	return cmd
}
