package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func uiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui [query]",
		Short: "Interactive launcher: type a trigger and pick an item",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			return runUI(a, strings.Join(args, " "))
		},
	}
}
