package player

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/boomerplus/boomerplus/constant"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/log"
	"github.com/boomerplus/boomerplus/open"
	"github.com/spf13/viper"
)

// System launches the browser through the platform opener and media through
// the player named by player.default.
type System struct{}

func (System) Browse(link string) error {
	safe, err := sanitizeTarget(link)
	if err != nil {
		return err
	}
	return open.Start(safe)
}

func (System) Media(link, title string) error {
	safe, err := sanitizeTarget(link)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	name := viper.GetString(key.Player)
	cmd := mediaCommand(name, safe, sanitizeTitle(title))
	if cmd == nil {
		return open.StartWith(safe, name)
	}

	if cmd.Err != nil {
		log.With(log.Fields{"player": name}).Warn("player not found, using the system handler")
		return open.Start(safe)
	}

	// detach so the player outlives the terminal browser
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdin, cmd.Stdout, cmd.Stderr = nil, nil, nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", name, err)
	}

	log.With(log.Fields{"player": name, "url": safe}).Info("player started")

	// reap the process
	go func() { _ = cmd.Wait() }()
	return nil
}

// mediaCommand builds the command line of the players that take a title.
// Other players are started through the platform opener.
func mediaCommand(name, link, title string) *exec.Cmd {
	switch name {
	case "", "mpv":
		return exec.Command("mpv", mpvArgs(link, title)...)
	case "iina":
		if runtime.GOOS != constant.Darwin {
			return nil
		}
		return exec.Command("open", "-a", "IINA", "--args", "--mpv-force-media-title="+title, link)
	case "vlc":
		return exec.Command("vlc", "--meta-title="+title, link)
	default:
		return nil
	}
}

func mpvArgs(link, title string) []string {
	return []string{
		"--no-terminal",
		"--really-quiet",
		"--force-window=yes",
		"--force-media-title=" + title,
		"--title=" + title,
		"--user-agent=" + constant.UserAgent,
		link,
	}
}

// sanitizeTarget refuses anything that could be read as a flag or that is not http(s) or a local path.
func sanitizeTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", ErrNoSource
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
