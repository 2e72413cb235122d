// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/boomerplus/boomerplus/color"
	"github.com/boomerplus/boomerplus/constant"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case time.Duration:
		return "duration"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

// defaults lists every field in registration order.
var defaults = []Field{
	{key.DataBase, constant.DefaultDataBase, "Base path of the category datasets.\nEither a directory or an http(s) URL; each category is read from <base>/<category>" + constant.DatasetSuffix},
	{key.DataCacheEnable, false, "Memoize fetched datasets on disk.\nWhen disabled every request fetches fresh data"},
	{key.DataCacheLifetime, time.Hour, "How long a memoized dataset stays valid"},

	{key.SearchShowQuerySuggestions, true, "Show query suggestions when searching"},
	{key.SearchRememberQueries, true, "Remember search queries to power suggestions"},

	{key.BrowseDefaultSort, "title-asc", "Default sort order.\nAvailable options are: title-asc, title-desc, year-desc, year-asc"},
	{key.BrowseLatestCount, constant.LatestCount, "Number of items per category on the home page"},

	{key.ServeAddr, ":8080", "Listen address of the web front-end"},
	{key.ServeCORSOrigins, []string{"*"}, "Origins allowed to call the JSON API"},

	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)"},

	{key.TUIItemSpacing, 1, "Spacing between items in the TUI"},
	{key.TUISearchPromptString, "> ", "Search prompt string to use"},
	{key.TUIShowURLs, false, "Show the primary source URL under list items"},

	{key.Player, "mpv", "Media player used for direct video and audio files"},
	{key.HistorySave, true, "Remember played items for the history command"},

	{key.LogsWrite, false, "Write logs to the logs directory instead of stderr"},
	{key.LogsLevel, "warn", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Use json format for logs"},

	{key.CliColored, true, "Enable colored CLI output"},
}

func init() {
	for _, field := range defaults {
		if _, exists := Default[field.Key]; exists {
			panic("duplicate config key: " + field.Key)
		}
		Default[field.Key] = field
		EnvExposed = append(EnvExposed, field.Key)
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
