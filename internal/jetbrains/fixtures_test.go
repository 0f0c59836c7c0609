package jetbrains

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type recentFixture struct {
	key       string
	timestamp int64 // 0 = no meta info
}

// recentDoc renders a recent-projects file listing every fixture in recentPaths
// and the ones with a timestamp in additionalInfo.
func recentDoc(fixtures ...recentFixture) string {
	var paths, info strings.Builder
	for _, f := range fixtures {
		fmt.Fprintf(&paths, "        <option value=%q />\n", f.key)
		if f.timestamp == 0 {
			continue
		}
		fmt.Fprintf(&info, `        <entry key=%q>
          <value>
            <RecentProjectMetaInfo opened="false">
              <option name="build" value="GO-193.5233.112" />
              <option name="projectOpenTimestamp" value="%d" />
            </RecentProjectMetaInfo>
          </value>
        </entry>
`, f.key, f.timestamp)
	}
	return fmt.Sprintf(`<application>
  <component name="RecentDirectoryProjectsManager">
    <option name="recentPaths">
      <list>
%s      </list>
    </option>
    <option name="additionalInfo">
      <map>
%s      </map>
    </option>
  </component>
</application>
`, paths.String(), info.String())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// installLegacy creates ~/.<dirName>/config/options/<file>.
func installLegacy(t *testing.T, home, dirName, file, content string) {
	t.Helper()
	writeFile(t, filepath.Join(home, "."+dirName, "config", "options", file), content)
}

func installDesktopEntry(t *testing.T, appsDir, name, exec, icon string) {
	t.Helper()
	writeFile(t, filepath.Join(appsDir, name+".desktop"), fmt.Sprintf(`[Desktop Entry]
Version=1.0
Type=Application
Name=%s
Icon=%s
Exec="%s" %%f
Terminal=false
`, name, icon, exec))
}
