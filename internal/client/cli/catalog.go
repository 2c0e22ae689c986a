package cli

import (
	"context"
	"fmt"
	"sort"
)

// Courses fetches the catalog and prints it grouped by category.
func (a *App) Courses(ctx context.Context) error {
	courses, err := a.client.Courses(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}

	categories := make([]string, 0, len(courses))
	for key := range courses {
		categories = append(categories, key)
	}
	sort.Strings(categories)

	for _, key := range categories {
		fmt.Printf("[%s]\n", key)
		for _, c := range courses[key] {
			fmt.Printf("  #%d %s", c.ID, c.Title)
			if c.Price > 0 {
				fmt.Printf(" ₹%d", c.Price)
			}
			fmt.Println()
		}
	}
	return nil
}

// Live prints the upcoming live sessions.
func (a *App) Live(ctx context.Context) error {
	items, err := a.client.Live(ctx)
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	for _, item := range items {
		fmt.Printf("#%d %s at %s\n", item.ID, item.Title, item.StartTime.Format("2006-01-02 15:04 MST"))
	}
	return nil
}

// Downloads lists the signed-in user's study materials.
func (a *App) Downloads(ctx context.Context) error {
	items, err := a.client.Downloads(ctx, a.session.Token())
	if err != nil {
		fmt.Println(err.Error())
		return err
	}
	for _, item := range items {
		fmt.Printf("#%d %s (%s)", item.ID, item.Title, item.Type)
		if item.URL != "" {
			fmt.Printf(" %s", item.URL)
		}
		fmt.Println()
	}
	return nil
}
