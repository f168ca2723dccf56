// Command demo fills an empty keepcmd store with a few example categories.
package main

import (
	"context"
	"fmt"
	"os"

	"tableflip.dev/keepcmd/pkg/app"
	"tableflip.dev/keepcmd/pkg/category"
	"tableflip.dev/keepcmd/pkg/id"
	"tableflip.dev/keepcmd/pkg/logging"
	"tableflip.dev/keepcmd/pkg/snapshot"
	"tableflip.dev/keepcmd/pkg/store"
)

func main() {
	cfg, err := store.LoadConfig(store.Overrides{})
	if err != nil {
		panic(err)
	}
	logger := logging.New(os.Stderr, cfg.LogLevel)
	disk, err := store.Open(cfg, logger)
	if err != nil {
		panic(err)
	}
	b, err := app.Open(context.Background(), app.Options{
		Store:  snapshot.NewStore(disk, logger),
		IDs:    id.UUID{},
		Logger: logger,
	})
	if err != nil {
		panic(err)
	}
	if n := len(b.All()); n > 0 {
		fmt.Printf("%s already holds %d categories, leaving it alone\n", cfg.BasePath(), n)
		return
	}

	// Categories are prepended, so seed in reverse.
	demo := demoCategories()
	for i := len(demo) - 1; i >= 0; i-- {
		u := b.ModifyCategory("", category.Category{Title: demo[i].Title, Description: demo[i].Description})
		if err := u.Err(); err != nil {
			panic(err)
		}
		for _, c := range demo[i].Commands {
			if err := b.ModifyCommand(u.Change.ID, "", *c).Err(); err != nil {
				panic(err)
			}
		}
	}
	fmt.Printf("seeded %d categories into %s\n", len(demo), cfg.BasePath())
}

func demoCategories() category.Collection {
	return category.Collection{
		{
			Title:       "Git",
			Description: "Everyday version control",
			Commands: []*category.Command{
				{Command: "git status -sb", Description: "Short status with branch"},
				{Command: "git log --oneline --graph --decorate", Description: "Compact history"},
				{Command: "git commit --amend --no-edit", Description: "Fold staged changes into the last commit"},
			},
		},
		{
			Title:       "Docker",
			Description: "Containers and images",
			Commands: []*category.Command{
				{Command: "docker ps -a", Description: "All containers"},
				{Command: "docker system prune -af", Description: "Remove everything unused"},
			},
		},
		{
			Title:       "Go",
			Description: "Toolchain",
			Commands: []*category.Command{
				{Command: "go test ./... -race", Description: "Test with the race detector"},
				{Command: "go mod tidy"},
			},
		},
	}
}
