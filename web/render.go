package web

import (
	"embed"
	"html/template"
	"net/url"
	"strings"

	"github.com/boomerplus/boomerplus/constant"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/present"
	"github.com/boomerplus/boomerplus/query"
	"github.com/gin-gonic/gin/render"
	"github.com/samber/lo"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageNames = []string{"home", "category", "item", "notfound", "search"}

// pages holds one template set per page, each sharing the layout.
type pages struct {
	sets map[string]*template.Template
}

var funcs = template.FuncMap{
	"categories": media.Categories,
	"year":       present.YearLabel,
	"initials":   present.Initials,
	"count":      present.CountLabel,
	"license":    present.LicenseLabel,
	"runtime": func(item *media.Item) string {
		return present.FormatRuntime(item.Runtime())
	},
	"preview": func(item *media.Item) []string {
		return present.TagPreview(item, constant.CardTagCount)
	},
	"itemURL": func(item *media.Item) string {
		return "/" + url.PathEscape(item.Category.String()) + "/" + url.PathEscape(item.Slug)
	},
	"tagURL": tagURL,
	"filterURL": func(c media.Category, tag string) string {
		return stateURL(c, query.State{Tags: []string{tag}})
	},
	"selected": func(state query.State, tag string) bool {
		return lo.Contains(state.Tags, tag)
	},
	"sortURL": func(c media.Category, state query.State, sort query.SortKey) string {
		state.Sort = sort
		return stateURL(c, state)
	},
	"sortKeys": query.SortKeys,
	"join":     strings.Join,
}

func mustParsePages() *pages {
	p := &pages{sets: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		p.sets[name] = template.Must(
			template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html"),
		)
	}
	return p
}

// render returns the gin renderer of page name over data.
func (p *pages) render(name string, data any) render.HTML {
	return render.HTML{Template: p.sets[name], Name: "layout", Data: data}
}

// stateURL is the category page link for state.
func stateURL(c media.Category, state query.State) string {
	values := url.Values{}
	if state.Text != "" {
		values.Set("q", state.Text)
	}
	for _, tag := range state.Tags {
		values.Add("tag", tag)
	}
	if state.Sort != "" && state.Sort != query.TitleAsc {
		values.Set("sort", string(state.Sort))
	}

	u := "/" + url.PathEscape(c.String())
	if encoded := values.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

// tagURL links to the category page with tag toggled.
func tagURL(c media.Category, state query.State, tag string) string {
	state.Tags = query.ToggleTag(state.Tags, tag)
	return stateURL(c, state)
}
