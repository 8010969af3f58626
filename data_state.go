package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/popviz/fetch"
	"github.com/andareed/popviz/logging"
	"github.com/andareed/popviz/registry"
)

type loadedMsg struct{ ds *registry.Dataset }

type loadErrMsg struct{ err error }

// dataState tracks the fetch and the sidebar's view of the country list.
type dataState struct {
	source  fetch.Source
	loading bool
	loadErr error

	countries []registry.Country
	// visible indexes countries that pass the sidebar search.
	visible []int
}

func fetchCmd(src fetch.Source) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetch.DefaultTimeout)
		defer cancel()
		logging.Infof("fetching dataset from %s", src)
		ds, err := src.Fetch(ctx)
		if err != nil {
			logging.Errorf("fetch %s: %v", src, err)
			return loadErrMsg{err: err}
		}
		return loadedMsg{ds: ds}
	}
}
