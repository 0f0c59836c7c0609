package jetbrains

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type configDir struct {
	name string // directory name without the leading dot, used for version ordering
	path string // the recent-projects file this directory would hold
}

// scanConfigDirs finds every config directory of p, newest version first.
// Legacy installs live in ~/.<Name><version>/config/options, 2020.1+ installs
// in $XDG_CONFIG_HOME/JetBrains/<Name><version>/options.
func scanConfigDirs(home, xdgDir string, p Product) []configDir {
	var dirs []configDir

	for _, e := range readDirNames(home) {
		if !strings.HasPrefix(e, "."+p.Name) || !isDir(filepath.Join(home, e)) {
			continue
		}
		dirs = append(dirs, configDir{
			name: strings.TrimPrefix(e, "."),
			path: filepath.Join(home, e, "config", "options", p.RecentFile),
		})
	}

	if xdgDir != "" {
		for _, e := range readDirNames(xdgDir) {
			if !strings.HasPrefix(e, p.Name) || !isDir(filepath.Join(xdgDir, e)) {
				continue
			}
			dirs = append(dirs, configDir{
				name: e,
				path: xdgRecentFile(filepath.Join(xdgDir, e, "options"), p),
			})
		}
	}

	sort.SliceStable(dirs, func(i, j int) bool { return dirs[i].name > dirs[j].name })
	return dirs
}

// xdgRecentFile picks the file 2020.1+ installs write for every product,
// falling back to the product's legacy file name.
func xdgRecentFile(options string, p Product) string {
	path := filepath.Join(options, recentProjects)
	if _, err := os.Stat(path); err == nil || p.RecentFile == recentProjects {
		return path
	}
	if legacy := filepath.Join(options, p.RecentFile); isFile(legacy) {
		return legacy
	}
	return path
}

// recentFile returns the recent-projects file of the newest install of p.
// Older installs are not consulted even when the newest has no file.
func recentFile(home, xdgDir string, p Product) (string, bool) {
	dirs := scanConfigDirs(home, xdgDir, p)
	if len(dirs) == 0 {
		return "", false
	}
	if _, err := os.Stat(dirs[0].path); err != nil {
		return "", false
	}
	return dirs[0].path, true
}

func readDirNames(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil // missing roots are normal
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// isDir follows symlinks.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
