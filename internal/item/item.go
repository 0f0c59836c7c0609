package item

import "strings"

// Item is one launcher result row.
type Item struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Subtext    string   `json:"subtext"`
	Icon       string   `json:"icon"`
	Completion string   `json:"completion"`
	Actions    []Action `json:"actions,omitempty"`
}

type ActionKind string

const (
	ActionClip ActionKind = "clip"
	ActionProc ActionKind = "proc"
)

type Action struct {
	Kind  ActionKind `json:"kind"`
	Label string     `json:"label"`
	Text  string     `json:"text,omitempty"` // clipboard payload
	Argv  []string   `json:"argv,omitempty"` // process to launch
}

func ClipAction(label, text string) Action {
	return Action{Kind: ActionClip, Label: label, Text: text}
}

func ProcAction(label string, argv ...string) Action {
	return Action{Kind: ActionProc, Label: label, Argv: argv}
}

// Payload is the string recorded in history for an action.
func (a Action) Payload() string {
	if a.Kind == ActionClip {
		return a.Text
	}
	return strings.Join(a.Argv, " ")
}
