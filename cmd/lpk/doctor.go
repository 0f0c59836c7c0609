package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Zuo-Peng/launcher-plugins/internal/dictcc"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify directories, installed IDEs and history DB",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			cfg := a.cfg

			fmt.Println("=== Directories ===")
			checkDir("Home", cfg.HomeDir)
			checkDir("Applications", cfg.ApplicationsDir)
			checkDir("Icons", cfg.IconDir)
			checkDir("JetBrains XDG", cfg.JetBrains.XDGConfigDir)

			fmt.Println("\n=== DictCC ===")
			fmt.Printf("  Trigger:   %q\n", cfg.Dict.Trigger)
			fmt.Printf("  Languages: %s -> %s\n", cfg.Dict.From, cfg.Dict.To)
			if err := dictcc.CheckLanguages(cfg.Dict.From, cfg.Dict.To); err != nil {
				fmt.Printf("  Status: %v\n", err)
			}
			client := dictcc.NewClient(cfg.Dict.Endpoint, cfg.Dict.UserAgent, cfg.Dict.Timeout.Duration)
			fmt.Printf("  URL:       %s\n", client.URL(cfg.Dict.From, cfg.Dict.To))
			fmt.Printf("  Supported: %s\n", strings.Join(dictcc.LanguageCodes(), ", "))

			fmt.Println("\n=== JetBrains IDEs ===")
			fmt.Printf("  Trigger: %q\n", cfg.JetBrains.Trigger)
			found := 0
			for _, inst := range a.lister.Installed() {
				if inst.RecentFile == "" {
					continue
				}
				found++
				launcher := "NO LAUNCHER (projects hidden)"
				if inst.Launcher != nil {
					launcher = inst.Launcher.Exec
				}
				fmt.Printf("  %-13s %s\n", inst.Product, inst.RecentFile)
				fmt.Printf("  %-13s %s\n", "", launcher)
			}
			if found == 0 {
				fmt.Println("  No recent-projects files found")
			}

			fmt.Println("\n=== History ===")
			fmt.Printf("  Path: %s\n", cfg.HistoryDB)
			if _, err := os.Stat(cfg.HistoryDB); os.IsNotExist(err) {
				fmt.Println("  Status: NOT CREATED YET (run an action first)")
				return nil
			}
			db, err := a.openHistory()
			if err != nil {
				return err
			}
			defer db.Close()
			n, err := db.Count()
			if err != nil {
				return fmt.Errorf("count history: %w", err)
			}
			fmt.Printf("  Records: %d\n", n)

			return nil
		},
	}
}

func checkDir(name, path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s: %s (NOT FOUND)\n", name, path)
	} else if !info.IsDir() {
		fmt.Printf("  %s: %s (NOT A DIRECTORY)\n", name, path)
	} else {
		fmt.Printf("  %s: %s (OK)\n", name, path)
	}
}
