package tui

import (
	"context"
	"time"

	"github.com/boomerplus/boomerplus/catalog"
	"github.com/boomerplus/boomerplus/internal/ui"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/media"
	"github.com/boomerplus/boomerplus/player"
	"github.com/boomerplus/boomerplus/query"
	"github.com/boomerplus/boomerplus/style"
	"github.com/boomerplus/boomerplus/util"
	"github.com/charmbracelet/bubbles/help"
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// statefulBubble is the whole browser: the loaded collection, the query over
// it and the component models that render it.
type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]
	keymap        *statefulKeymap

	spinnerC    spinner.Model
	inputC      textinput.Model
	categoriesC list.Model
	itemsC      list.Model
	tagsC       list.Model
	helpC       help.Model

	ctx     context.Context
	catalog *catalog.Catalog
	handoff *player.Handoff

	category media.Category
	dataset  mo.Option[*media.Dataset]
	query    query.State
	selected *media.Item

	searchSuggestion mo.Option[string]
	lastError        error
	notifier         *ui.Model

	width, height int
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

// newState moves to s, remembering where we came from.
func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if b.state != loadingState && b.state != errorState {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if s, ok := b.statesHistory.Pop(); ok {
		b.setState(s)
	}
}

func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	xx, yy := listExtraPaddingStyle.GetFrameSize()

	listWidth := width - xx
	// the search line and the tag chips sit above the items list
	listHeight := height - yy

	for _, l := range []*list.Model{&b.categoriesC, &b.itemsC, &b.tagsC} {
		l.SetSize(listWidth, listHeight)
		l.Help.Width = listWidth
	}
	b.itemsC.SetHeight(max(listHeight-2, 0))

	b.width = width - x
	b.height = height - y
	b.helpC.Width = listWidth
	b.inputC.Width = listWidth
}

type listOptions struct {
	TitleStyle  mo.Option[lipgloss.Style]
	Description bool
}

func (b *statefulBubble) makeList(title string, options listOptions) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(viper.GetInt(key.TUIItemSpacing))
	delegate.ShowDescription = options.Description
	delegate.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(style.AccentColor).
		Foreground(style.AccentColor).
		Padding(0, 0, 0, 1)
	delegate.Styles.NormalTitle = delegate.Styles.NormalTitle.Foreground(lipgloss.Color("7"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedTitle

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.KeyMap = b.keymap.forList()
	l.AdditionalShortHelpKeys = b.keymap.ShortHelp
	l.AdditionalFullHelpKeys = func() []bubblesKey.Binding {
		return b.keymap.FullHelp()[0]
	}
	l.Title = title
	l.Styles.NoItems = paddingStyle
	if titleStyle, ok := options.TitleStyle.Get(); ok {
		l.Styles.Title = titleStyle
	}
	l.StatusMessageLifetime = time.Hour * 999
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)

	return l
}

func titleStyle(bg lipgloss.Color) mo.Option[lipgloss.Style] {
	return mo.Some(lipgloss.NewStyle().Foreground(style.Base).Background(bg).Padding(0, 1))
}

func newBubble(ctx context.Context, options *Options) *statefulBubble {
	bubble := &statefulBubble{
		keymap:   newStatefulKeymap(),
		ctx:      ctx,
		catalog:  options.Catalog,
		handoff:  options.Handoff,
		notifier: &ui.Model{},
		dataset:  mo.None[*media.Dataset](),
	}

	if bubble.handoff == nil {
		bubble.handoff = player.Default
	}

	sortKey, err := query.ParseSortKey(viper.GetString(key.BrowseDefaultSort))
	if err != nil {
		sortKey = query.TitleAsc
	}
	bubble.query.Sort = sortKey

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	bubble.inputC = textinput.New()
	bubble.inputC.Placeholder = "Search titles and tags"
	bubble.inputC.CharLimit = 80
	bubble.inputC.Prompt = viper.GetString(key.TUISearchPromptString)

	bubble.categoriesC = bubble.makeList("Catalog", listOptions{TitleStyle: titleStyle(style.AccentColor)})
	bubble.categoriesC.SetItems(lo.Map(media.Categories(), func(c media.Category, _ int) list.Item {
		return &listItem{internal: c}
	}))
	bubble.categoriesC.SetStatusBarItemName("category", "categories")

	bubble.itemsC = bubble.makeList("Items", listOptions{
		TitleStyle:  titleStyle(style.Lavender),
		Description: true,
	})
	bubble.itemsC.SetStatusBarItemName("item", "items")

	bubble.tagsC = bubble.makeList("Tags", listOptions{TitleStyle: titleStyle(style.Yellow)})
	bubble.tagsC.SetStatusBarItemName("tag", "tags")

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return bubble
}
