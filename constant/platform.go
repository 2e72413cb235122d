package constant

// runtime.GOOS values the launchers branch on.
const (
	Linux   = "linux"
	Darwin  = "darwin"
	Windows = "windows"
	Android = "android"
)

// PlayerPackages maps the players with built-in arguments to their package names.
var PlayerPackages = map[string]string{
	"mpv":  "mpv",
	"vlc":  "vlc",
	"iina": "--cask iina",
}
