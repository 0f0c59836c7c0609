package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/launcher-plugins/internal/item"
	"github.com/Zuo-Peng/launcher-plugins/internal/tui"
)

func dictCmd() *cobra.Command {
	return shortcutCmd("dict <word>", "Translate a word with dict.cc",
		func(a *app) string { return a.cfg.Dict.Trigger })
}

func jbCmd() *cobra.Command {
	return shortcutCmd("jb [filter]", "List recent JetBrains IDE projects",
		func(a *app) string { return a.cfg.JetBrains.Trigger })
}

// shortcutCmd prefixes the arguments with a plugin trigger. Interactive TUI when
// stdout is a terminal; TSV output for pipes.
func shortcutCmd(use, short string, trigger func(*app) string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			raw := trigger(a) + strings.Join(args, " ")

			if !asJSON && stdoutIsTerminal() {
				return runUI(a, raw)
			}
			return runQuery(cmd, a, raw, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print items as JSON")

	return cmd
}

func runUI(a *app, raw string) error {
	db, err := a.openHistory()
	if err != nil {
		// the launcher still works without history
		a.log.Warn("history unavailable", "error", err)
		return tui.Run(a.registry, item.Runner{}, nil, a.log, raw)
	}
	defer db.Close()
	return tui.Run(a.registry, item.Runner{}, db, a.log, raw)
}
