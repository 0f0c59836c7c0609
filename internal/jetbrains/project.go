package jetbrains

import (
	"os"
	"path/filepath"
	"strings"
)

const userHomeMacro = "$USER_HOME$"

// Project is one recently opened project of one product.
type Project struct {
	Timestamp int64 // last open, epoch ms; 0 when the IDE recorded none
	Path      string
	Name      string
	Product   string
}

func newProject(home string, e RecentEntry, product string) Project {
	path := strings.ReplaceAll(e.Key, userHomeMacro, home)
	return Project{
		Timestamp: e.Timestamp,
		Path:      path,
		Name:      projectName(path),
		Product:   product,
	}
}

// projectName prefers the name the IDE stored in .idea/.name over the directory name.
// Rider records the .sln file, so its parent directory is used.
func projectName(path string) string {
	dir := path
	if strings.HasSuffix(dir, ".sln") {
		dir = filepath.Dir(dir)
	}
	if data, err := os.ReadFile(filepath.Join(dir, ".idea", ".name")); err == nil {
		if name := strings.TrimSpace(string(data)); name != "" {
			return name
		}
	}
	return filepath.Base(dir)
}
