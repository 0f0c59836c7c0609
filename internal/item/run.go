package item

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/atotto/clipboard"
)

var ErrNoAction = errors.New("item has no such action")

// Runner executes actions. The zero value uses the system clipboard and os/exec.
type Runner struct {
	CopyFunc  func(text string) error
	StartFunc func(argv []string) error
}

func (r Runner) Run(a Action) error {
	switch a.Kind {
	case ActionClip:
		copyFn := r.CopyFunc
		if copyFn == nil {
			copyFn = clipboard.WriteAll
		}
		if err := copyFn(a.Text); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		return nil
	case ActionProc:
		if len(a.Argv) == 0 {
			return fmt.Errorf("%s: empty command", a.Label)
		}
		startFn := r.StartFunc
		if startFn == nil {
			startFn = startDetached
		}
		if err := startFn(a.Argv); err != nil {
			return fmt.Errorf("start %s: %w", a.Argv[0], err)
		}
		return nil
	default:
		return fmt.Errorf("unknown action kind %q", a.Kind)
	}
}

// RunIndex runs the idx-th action of it.
func (r Runner) RunIndex(it Item, idx int) (Action, error) {
	if idx < 0 || idx >= len(it.Actions) {
		return Action{}, fmt.Errorf("%w: %d (item %q has %d)", ErrNoAction, idx, it.Text, len(it.Actions))
	}
	a := it.Actions[idx]
	return a, r.Run(a)
}

// startDetached launches the process without waiting, the way a launcher hands off to an IDE.
func startDetached(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
