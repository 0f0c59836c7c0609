package main

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"github.com/Zuo-Peng/launcher-plugins/internal/config"
	"github.com/Zuo-Peng/launcher-plugins/internal/dictcc"
	"github.com/Zuo-Peng/launcher-plugins/internal/history"
	"github.com/Zuo-Peng/launcher-plugins/internal/jetbrains"
	"github.com/Zuo-Peng/launcher-plugins/internal/logging"
	"github.com/Zuo-Peng/launcher-plugins/internal/plugin"
)

// app holds what every command needs: config, logger and the plugin registry.
type app struct {
	cfg      *config.Config
	log      hclog.Logger
	lister   *jetbrains.Lister
	registry *plugin.Registry
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return newAppFromConfig(cfg, logging.New(debug))
}

func newAppFromConfig(cfg *config.Config, log hclog.Logger) (*app, error) {
	client := dictcc.NewClient(cfg.Dict.Endpoint, cfg.Dict.UserAgent, cfg.Dict.Timeout.Duration)
	dict := dictcc.NewHandler(dictcc.NewDictionary(client), cfg.Dict, cfg.IconDir, log)

	lister := jetbrains.NewLister(cfg.HomeDir, cfg.JetBrains.XDGConfigDir, cfg.ApplicationsDir, log)
	jb := jetbrains.NewHandler(lister, cfg.JetBrains.Trigger, filepath.Join(cfg.IconDir, "jetbrains.svg"))

	registry, err := plugin.NewRegistry(dict, jb)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &app{
		cfg:      cfg,
		log:      log,
		lister:   lister,
		registry: registry,
	}, nil
}

func (a *app) openHistory() (*history.DB, error) {
	db, err := history.OpenDB(a.cfg.HistoryDB)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return db, nil
}

// pluginName returns the name of the handler raw is addressed to, or "".
func (a *app) pluginName(raw string) string {
	if h, _, ok := a.registry.Match(raw); ok {
		return h.Name()
	}
	return ""
}
