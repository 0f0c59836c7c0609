package jetbrains

// Product describes one IDE family: where its config lives and how it is launched.
type Product struct {
	Name         string   // config directory prefix, e.g. "GoLand" for ~/.GoLand2019.3
	Binaries     []string // binary names the IDE ships under
	DesktopEntry string   // ~/.local/share/applications/<DesktopEntry>.desktop
	RecentFile   string   // file under options/
}

const (
	recentDirectories = "recentProjectDirectories.xml"
	recentProjects    = "recentProjects.xml"
	recentSolutions   = "recentSolutions.xml"
)

var Products = []Product{
	{Name: "CLion", Binaries: []string{"clion"}, DesktopEntry: "jetbrains-clion", RecentFile: recentDirectories},
	{Name: "DataGrip", Binaries: []string{"datagrip"}, DesktopEntry: "jetbrains-datagrip", RecentFile: recentDirectories},
	{Name: "GoLand", Binaries: []string{"goland"}, DesktopEntry: "jetbrains-goland", RecentFile: recentDirectories},
	{
		Name: "IntelliJIdea",
		Binaries: []string{
			"intellij-idea-ue-bundled-jre", "intellij-idea-ultimate-edition",
			"idea-ce-eap", "idea-ue-eap", "idea", "idea-ultimate",
		},
		DesktopEntry: "jetbrains-idea",
		RecentFile:   recentProjects,
	},
	{Name: "PhpStorm", Binaries: []string{"phpstorm"}, DesktopEntry: "jetbrains-phpstorm", RecentFile: recentDirectories},
	{Name: "PyCharm", Binaries: []string{"pycharm", "pycharm-eap", "charm"}, DesktopEntry: "jetbrains-pycharm", RecentFile: recentDirectories},
	{Name: "WebStorm", Binaries: []string{"webstorm"}, DesktopEntry: "jetbrains-webstorm", RecentFile: recentDirectories},
	{Name: "Rider", Binaries: []string{"rider"}, DesktopEntry: "jetbrains-rider", RecentFile: recentSolutions},
}
