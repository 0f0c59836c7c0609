package item

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunner_Clip(t *testing.T) {
	var copied string
	r := Runner{CopyFunc: func(s string) error { copied = s; return nil }}

	require.NoError(t, r.Run(ClipAction("Copy", "dog")))
	assert.Equal(t, "dog", copied)
}

func TestRunner_ClipError(t *testing.T) {
	r := Runner{CopyFunc: func(string) error { return errors.New("no display") }}

	err := r.Run(ClipAction("Copy", "dog"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy to clipboard")
}

func TestRunner_Proc(t *testing.T) {
	var got []string
	r := Runner{StartFunc: func(argv []string) error { got = argv; return nil }}

	require.NoError(t, r.Run(ProcAction("Open in GoLand", "/opt/goland/bin/goland.sh", "/home/u/proj")))
	assert.Equal(t, []string{"/opt/goland/bin/goland.sh", "/home/u/proj"}, got)
}

func TestRunner_ProcEmpty(t *testing.T) {
	r := Runner{StartFunc: func([]string) error { t.Fatal("must not start"); return nil }}
	assert.Error(t, r.Run(ProcAction("Open")))
}

func TestRunner_UnknownKind(t *testing.T) {
	assert.Error(t, Runner{}.Run(Action{Kind: "mail"}))
}

func TestRunner_RunIndex(t *testing.T) {
	var copied string
	r := Runner{CopyFunc: func(s string) error { copied = s; return nil }}
	it := Item{Text: "dog", Actions: []Action{ClipAction("Copy", "dog")}}

	a, err := r.RunIndex(it, 0)
	require.NoError(t, err)
	assert.Equal(t, "Copy", a.Label)
	assert.Equal(t, "dog", copied)

	_, err = r.RunIndex(it, 1)
	assert.ErrorIs(t, err, ErrNoAction)
}

func TestAction_Payload(t *testing.T) {
	assert.Equal(t, "dog", ClipAction("Copy", "dog").Payload())
	assert.Equal(t, "goland /p", ProcAction("Open", "goland", "/p").Payload())
}
