// Package open launches files and URLs with the platform handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/boomerplus/boomerplus/constant"
)

// Start opens input with the default handler without waiting for it.
func Start(input string) error {
	return StartWith(input, "")
}

// StartWith opens input with app, or with the default handler when app is empty.
func StartWith(input, app string) error {
	name, args, ok := Command(runtime.GOOS, input, app)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", runtime.GOOS)
	}
	return exec.Command(name, args...).Start()
}

// Command is the command line that opens input on goos.
func Command(goos, input, app string) (name string, args []string, ok bool) {
	if app == "" {
		return defaultHandler(goos, input)
	}

	switch goos {
	case constant.Windows:
		// start treats & as a command separator
		escaped := strings.ReplaceAll(input, "&", "^&")
		return "cmd", []string{"/C", "start", "", app, escaped}, true
	case constant.Darwin:
		return "open", []string{"-a", app, input}, true
	case constant.Linux:
		return app, []string{input}, true
	case constant.Android:
		return "termux-open", []string{"--choose", input}, true
	default:
		return "", nil, false
	}
}

func defaultHandler(goos, input string) (string, []string, bool) {
	switch goos {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return rundll, []string{"url.dll,FileProtocolHandler", input}, true
	case constant.Darwin:
		return "open", []string{input}, true
	case constant.Linux:
		return "xdg-open", []string{input}, true
	case constant.Android:
		return "termux-open", []string{input}, true
	default:
		return "", nil, false
	}
}
