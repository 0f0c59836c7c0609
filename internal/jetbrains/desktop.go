package jetbrains

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Launcher is how a product is started and what icon it shows.
type Launcher struct {
	Exec string
	Icon string
}

var (
	iconRe       = regexp.MustCompile(`(?m)^Icon=(.*)$`)
	quotedExecRe = regexp.MustCompile(`(?m)^Exec="(.*)"`)
	plainExecRe  = regexp.MustCompile(`(?m)^Exec=(\S+)`)
)

// ReadDesktopEntry resolves <appsDir>/<name>.desktop. A missing file or an
// entry without Exec yields nil.
func ReadDesktopEntry(appsDir, name string) (*Launcher, error) {
	data, err := os.ReadFile(filepath.Join(appsDir, name+".desktop"))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return parseDesktopEntry(string(data)), nil
}

func parseDesktopEntry(content string) *Launcher {
	var exec string
	if m := quotedExecRe.FindStringSubmatch(content); m != nil {
		exec = m[1]
	} else if m := plainExecRe.FindStringSubmatch(content); m != nil {
		exec = m[1]
	}
	if exec == "" {
		return nil
	}

	l := &Launcher{Exec: exec}
	if m := iconRe.FindStringSubmatch(content); m != nil {
		l.Icon = strings.TrimSpace(m[1])
	}
	return l
}
