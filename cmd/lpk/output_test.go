package main

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zuo-Peng/launcher-plugins/internal/config"
	"github.com/Zuo-Peng/launcher-plugins/internal/dictcc"
	"github.com/Zuo-Peng/launcher-plugins/internal/item"
	"github.com/Zuo-Peng/launcher-plugins/internal/jetbrains"
	"github.com/Zuo-Peng/launcher-plugins/internal/logging"
	"github.com/Zuo-Peng/launcher-plugins/internal/plugin"
)

var sampleItems = []item.Item{
	{
		Text:    "dog <small><i>{m}</i></small>",
		Subtext: "Hund",
		Actions: []item.Action{item.ClipAction("Copy translation to clipboard", "dog")},
	},
	{Text: "No results", Subtext: "tab\there"},
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	writeTSV(&buf, sampleItems, false)
	assert.Equal(t, "0\tdog {m}\tHund\tdog\n1\tNo results\ttab here\t\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, sampleItems))

	var got []item.Item
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleItems, got)

	buf.Reset()
	require.NoError(t, writeJSON(&buf, nil))
	assert.JSONEq(t, "[]", buf.String())
}

func TestNewAppFromConfig_Registry(t *testing.T) {
	home := t.TempDir()
	cfg := config.Default(home)
	cfg.JetBrains.XDGConfigDir = filepath.Join(home, ".config", "JetBrains")
	a, err := newAppFromConfig(cfg, logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, dictcc.Name, a.pluginName("dict Hund"))
	assert.Equal(t, jetbrains.Name, a.pluginName("jb lpk"))
	assert.Equal(t, "", a.pluginName("something else"))

	items, err := a.registry.Dispatch(context.Background(), "jb ")
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = a.registry.Dispatch(context.Background(), "dict ab")
	require.NoError(t, err)
	require.Len(t, items, 1, "short queries answer with a hint, no request")
	assert.Contains(t, items[0].Subtext+items[0].Text, "Enter a query")
}

func TestNewAppFromConfig_SameTriggerRejected(t *testing.T) {
	cfg := config.Default(t.TempDir())
	cfg.JetBrains.Trigger = cfg.Dict.Trigger

	_, err := newAppFromConfig(cfg, logging.Discard())
	require.ErrorIs(t, err, plugin.ErrDuplicateTrigger)
}
