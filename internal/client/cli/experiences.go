package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/experiences/internal/client/models"
)

// Home prints the landing page.
func (a *App) Home(ctx context.Context) error {
	return a.navigate(ctx, ViewHome, func(context.Context) error {
		fmt.Fprintln(a.out, "Experiences: real stories from real people.")
		if a.isLoggedIn() {
			fmt.Fprintln(a.out, "Type 'experiences' to read, 'write' to share yours.")
		} else {
			fmt.Fprintln(a.out, "Type 'experiences' to read, 'register' or 'login' to share yours.")
		}
		return nil
	})
}

// Experiences prints the public feed with questions resolved to text.
func (a *App) Experiences(ctx context.Context) error {
	return a.navigate(ctx, ViewExperiences, func(ctx context.Context) error {
		cards, err := a.experienceService.Feed(ctx)
		if err != nil {
			return a.report(ctx, "Loading experiences", err)
		}
		if len(cards) == 0 {
			fmt.Fprintln(a.out, "No experiences yet.")
			return nil
		}
		for _, c := range cards {
			printCard(a.out, c)
		}
		return nil
	})
}

func printCard(w io.Writer, c models.Card) {
	fmt.Fprintf(w, "== %s ==\n", c.Title)

	meta := []string{c.Author, "age " + c.Age}
	if c.Date != "" {
		meta = append(meta, c.Date)
	}
	fmt.Fprintf(w, "%s %s\n", c.Avatar.Badge(c.Initials), strings.Join(meta, " | "))

	for _, ans := range c.Answers {
		fmt.Fprintf(w, "  Q: %s\n  A: %s\n", ans.Question, ans.Answer)
	}
	if c.Key != "" {
		fmt.Fprintf(w, "  [%s]\n", c.Key)
	}
	fmt.Fprintln(w)
}
