package tui

type state int

const (
	categoriesState state = iota
	loadingState
	itemsState
	searchState
	tagsState
	detailState
	errorState
)
