package info

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/studyplan/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
}

func (n *Info) Do(ctx context.Context) error {

	if override := os.Getenv("STUDYPLAN_CONFIG_PATH"); override != "" {
		fmt.Println("STUDYPLAN_CONFIG_PATH found on env, using ", override)
	} else {
		fmt.Println("STUDYPLAN_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	fmt.Println("Config.path: ", n.Config.BasePath())

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	fmt.Printf("Records:\n")
	found := 0
	for _, k := range n.Persistence.Keys(ctx) {
		fmt.Printf("  %s\n", k)
		found++
	}

	if found == 0 {
		fmt.Printf("  %s\n", "no records")
	}

	return nil
}
