// Package cmd implements the command-line interface of boomerplus.
package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/boomerplus/boomerplus/constant"
	"github.com/boomerplus/boomerplus/icon"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
)

// checkPlayer warns when the configured media player is not on PATH.
// Direct files then fall back to the system handler.
func checkPlayer() {
	player := viper.GetString(key.Player)
	if player == "" {
		return
	}

	if _, err := exec.LookPath(player); err != nil {
		printMissingPlayer(player)
	}
}

func installHint(player string) string {
	pkg, ok := constant.PlayerPackages[player]
	if !ok {
		return ""
	}

	switch runtime.GOOS {
	case constant.Darwin:
		return "brew install " + pkg
	case constant.Linux:
		return "sudo apt install " + player
	case constant.Windows:
		return "scoop install " + player
	default:
		return ""
	}
}

func printMissingPlayer(player string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.WarningColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.WarningColor).Render(fmt.Sprintf("%s Player not found", icon.Get(icon.Cross)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("'%s' was not found in your PATH. Direct files will open with the system handler.", player))

	suggestion := ""
	if hint := installHint(player); hint != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(hint))
	}

	_, _ = fmt.Fprintln(os.Stderr, box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			body,
			suggestion,
		),
	))
}
