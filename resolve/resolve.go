// Package resolve decides how a source URL is played: as an archive embed,
// an external search page, a direct file for a native player, or a plain link.
package resolve

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/boomerplus/boomerplus/constant"
	"github.com/boomerplus/boomerplus/media"
	"github.com/samber/lo"
)

// Kind is the outcome of classifying a URL.
type Kind int

const (
	None Kind = iota
	Embed
	SearchLink
	DirectVideo
	DirectAudio
	Outbound
)

func (k Kind) String() string {
	switch k {
	case Embed:
		return "embed"
	case SearchLink:
		return "search"
	case DirectVideo:
		return "video"
	case DirectAudio:
		return "audio"
	case Outbound:
		return "link"
	default:
		return "none"
	}
}

// MarshalText renders the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Inline reports whether the kind can be played in place.
func (k Kind) Inline() bool {
	return k == Embed || k == DirectVideo || k == DirectAudio
}

// Modality is the slot a URL was taken from.
type Modality int

const (
	Video Modality = iota
	Audio
)

func (m Modality) String() string {
	if m == Audio {
		return "audio"
	}
	return "video"
}

var (
	detailsPattern  = regexp.MustCompile(regexp.QuoteMeta(constant.ArchiveDetailsMarker) + `([^/?#]+)`)
	videoExtensions = []string{"mp4", "webm", "ogg"}
	audioExtensions = []string{"mp3", "wav", "ogg", "m4a"}
)

// Resolution is a classified URL.
type Resolution struct {
	Kind       Kind     `json:"kind"`
	URL        string   `json:"url,omitempty"`
	EmbedURL   string   `json:"embed_url,omitempty"`
	Identifier string   `json:"identifier,omitempty"`
	Modality   Modality `json:"-"`
}

// EmbedURL builds the archive playback URL for an identifier.
func EmbedURL(id string) string {
	return fmt.Sprintf(constant.ArchiveEmbedTemplate, id)
}

// Identifier extracts the archive identifier from a details URL.
func Identifier(raw string) (string, bool) {
	m := detailsPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Classify resolves raw, which came from the given modality slot.
// Archive details win over search links, which win over direct files.
func Classify(raw string, modality Modality) Resolution {
	raw = strings.TrimSpace(raw)
	r := Resolution{URL: raw, Modality: modality}

	if raw == "" {
		return r
	}

	if id, ok := Identifier(raw); ok {
		r.Kind = Embed
		r.Identifier = id
		r.EmbedURL = EmbedURL(id)
		return r
	}

	if strings.Contains(raw, constant.ArchiveSearchMarker) {
		r.Kind = SearchLink
		return r
	}

	switch ext := extension(raw); {
	case modality == Video && lo.Contains(videoExtensions, ext):
		r.Kind = DirectVideo
	case modality == Audio && lo.Contains(audioExtensions, ext):
		r.Kind = DirectAudio
	case modality == Audio && lo.Contains(videoExtensions, ext):
		// a video file in the audio slot still plays
		r.Kind = DirectVideo
	default:
		r.Kind = Outbound
	}

	return r
}

// extension is the lower-cased file extension of the URL path, without the dot.
func extension(raw string) string {
	p := raw
	if u, err := url.Parse(raw); err == nil {
		p = u.Path
	}
	return strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
}

// Primary picks the URL a player loads first: the primary video, else the primary audio.
// A backup is never substituted here.
func Primary(src media.Source) (string, Modality) {
	if src.VideoPrimary != "" {
		return src.VideoPrimary, Video
	}
	if src.AudioPrimary != "" {
		return src.AudioPrimary, Audio
	}
	return "", Video
}

// Backup is the counterpart of Primary over the backup slots.
func Backup(src media.Source) (string, Modality) {
	if src.VideoBackup != "" {
		return src.VideoBackup, Video
	}
	if src.AudioBackup != "" {
		return src.AudioBackup, Audio
	}
	return "", Video
}

// Source classifies the primary URL of src.
func Source(src media.Source) Resolution {
	return Classify(Primary(src))
}
