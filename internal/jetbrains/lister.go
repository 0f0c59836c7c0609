package jetbrains

import (
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Entry is a project together with the launcher of the IDE that opened it.
type Entry struct {
	Project
	Launcher Launcher
}

type Lister struct {
	Home     string
	XDGDir   string
	AppsDir  string
	Products []Product
	// LookPath resolves a product binary when no desktop entry exists. Nil disables the fallback.
	LookPath func(file string) (string, error)

	log hclog.Logger
}

func NewLister(home, xdgDir, appsDir string, log hclog.Logger) *Lister {
	return &Lister{
		Home:     home,
		XDGDir:   xdgDir,
		AppsDir:  appsDir,
		Products: Products,
		LookPath: exec.LookPath,
		log:      log.Named("jetbrains"),
	}
}

// List pools the recent projects of every installed product, newest first,
// keeps those whose name contains filter (case-insensitive), and drops those
// whose product cannot be launched.
func (l *Lister) List(filter string) ([]Entry, error) {
	if _, err := os.Stat(l.Home); err != nil {
		return nil, fmt.Errorf("home dir: %w", err)
	}

	launchers := make(map[string]*Launcher)
	var projects []Project

	for _, p := range l.Products {
		path, ok := recentFile(l.Home, l.XDGDir, p)
		if !ok {
			l.log.Debug("no recent projects file", "product", p.Name)
			continue
		}

		launcher, err := l.resolveLauncher(p)
		if err != nil {
			l.log.Warn("read desktop entry", "product", p.Name, "error", err)
		}
		launchers[p.Name] = launcher

		entries, err := parseRecentFile(path)
		if err != nil {
			l.log.Warn("skip product", "product", p.Name, "file", path, "error", err)
			continue
		}
		for _, e := range entries {
			projects = append(projects, newProject(l.Home, e, p.Name))
		}
	}

	SortProjects(projects)
	projects = FilterProjects(projects, filter)

	out := make([]Entry, 0, len(projects))
	for _, p := range projects {
		launcher := launchers[p.Product]
		if launcher == nil {
			continue
		}
		out = append(out, Entry{Project: p, Launcher: *launcher})
	}
	return out, nil
}

func (l *Lister) resolveLauncher(p Product) (*Launcher, error) {
	launcher, err := ReadDesktopEntry(l.AppsDir, p.DesktopEntry)
	if launcher != nil || l.LookPath == nil {
		return launcher, err
	}
	for _, bin := range p.Binaries {
		if path, lookErr := l.LookPath(bin); lookErr == nil {
			return &Launcher{Exec: path}, err
		}
	}
	l.log.Debug("no launcher", "product", p.Name)
	return nil, err
}

// SortProjects orders by last-open timestamp, newest first. Equal timestamps keep their order.
func SortProjects(projects []Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Timestamp > projects[j].Timestamp
	})
}

// FilterProjects keeps projects whose display name contains filter, ignoring case.
func FilterProjects(projects []Project, filter string) []Project {
	if filter == "" {
		return projects
	}
	needle := strings.ToLower(filter)
	out := projects[:0:0]
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Installation describes what was found for one product.
type Installation struct {
	Product    string
	RecentFile string // "" when the product has no config dir
	Launcher   *Launcher
}

// Installed reports, per known product, its recent-projects file and launcher.
func (l *Lister) Installed() []Installation {
	out := make([]Installation, 0, len(l.Products))
	for _, p := range l.Products {
		inst := Installation{Product: p.Name}
		if path, ok := recentFile(l.Home, l.XDGDir, p); ok {
			inst.RecentFile = path
		}
		inst.Launcher, _ = l.resolveLauncher(p)
		out = append(out, inst)
	}
	return out
}
