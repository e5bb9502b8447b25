package tui

type state int

const (
	loadingState state = iota
	errorState
	searchState
	titlesState
	episodesState
	serversState
	qualitiesState
	playState
)
