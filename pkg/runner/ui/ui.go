// Package ui provides the runner that launches the dashboard terminal app.
package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/studyplan/pkg/auth"
	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/store"
	"tableflip.dev/studyplan/pkg/tui"
)

// UI runs the interactive dashboard until the user quits. When Persistence is
// set the dashboard watches the planner files and refreshes on writes made by
// other processes.
type UI struct {
	Store       *planner.Store
	Identity    *auth.Identity
	Persistence store.Persistence
	Interval    time.Duration
}

func (n *UI) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not start ui, no store")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var changes <-chan store.Event
	if n.Persistence != nil {
		var err error
		changes, err = n.Persistence.Watch(ctx)
		if err != nil {
			return err
		}
	}

	p := tea.NewProgram(
		tui.New(n.Store, n.Identity, n.Interval, changes),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
