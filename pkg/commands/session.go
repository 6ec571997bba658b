package commands

import (
	"fmt"

	"tableflip.dev/studyplan/pkg/auth"
	"tableflip.dev/studyplan/pkg/planner"
	"tableflip.dev/studyplan/pkg/store"
)

// loadManager opens persistence and the account manager over it.
func loadManager() (store.Persistence, *auth.Manager, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, nil, err
	}
	return p, auth.NewManager(store.ForAccounts(p)), nil
}

// loadSession resolves the logged-in identity and hydrates that user's
// planner store. Planner commands refuse to run without a session.
func loadSession() (*planner.Store, *auth.Identity, error) {
	_, s, id, err := loadSessionPersistence()
	return s, id, err
}

// loadSessionPersistence is loadSession plus the raw record store, for
// callers that also watch the planner files.
func loadSessionPersistence() (store.Persistence, *planner.Store, *auth.Identity, error) {
	p, mgr, err := loadManager()
	if err != nil {
		return nil, nil, nil, err
	}

	id, ok, err := mgr.Current()
	if err != nil {
		return nil, nil, nil, err
	}
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: run 'studyplan login' first", auth.ErrNotLoggedIn)
	}

	s, err := planner.New(store.ForUser(p, id.ID))
	if err != nil {
		return nil, nil, nil, err
	}
	return p, s, id, nil
}
