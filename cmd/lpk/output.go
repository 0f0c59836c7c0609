package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Zuo-Peng/launcher-plugins/internal/item"
	"github.com/Zuo-Peng/launcher-plugins/internal/render"
)

const (
	sColorReset = "\033[0m"
	sColorBlue  = "\033[1;34m"
	sColorDim   = "\033[2m"
)

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// writeJSON prints items as a JSON array, the contract launcher hosts read.
func writeJSON(w io.Writer, items []item.Item) error {
	if items == nil {
		items = []item.Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// writeTSV prints one item per line: index, text, subtext, first action payload.
// The index stays plain so `lpk exec --index {1}` works from fzf.
func writeTSV(w io.Writer, items []item.Item, color bool) {
	for i, it := range items {
		text := tsvField(render.Plain(it.Text))
		sub := tsvField(it.Subtext)
		payload := ""
		if len(it.Actions) > 0 {
			payload = tsvField(it.Actions[0].Payload())
		}
		if color {
			text = sColorBlue + render.ANSI(tsvField(it.Text)) + sColorReset
			payload = sColorDim + payload + sColorReset
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, text, sub, payload)
	}
}

func tsvField(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
