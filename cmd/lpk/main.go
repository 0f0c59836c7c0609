package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var debug bool

func main() {
	rootCmd := &cobra.Command{
		Use:     "lpk",
		Short:   "Launcher plugins - dict.cc translations and JetBrains recent projects",
		Version: version,
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log debug output to stderr")

	rootCmd.AddCommand(queryCmd())
	rootCmd.AddCommand(dictCmd())
	rootCmd.AddCommand(jbCmd())
	rootCmd.AddCommand(execCmd())
	rootCmd.AddCommand(uiCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(doctorCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
