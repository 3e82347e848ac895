package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/experiences/internal/client/models"
)

// Write walks the user through the active questions and publishes the
// answers as a new experience.
func (a *App) Write(ctx context.Context) error {
	return a.navigate(ctx, ViewWrite, func(ctx context.Context) error {
		draft, err := a.promptDraft(ctx, "")
		if err != nil {
			return a.report(ctx, "Publishing", err)
		}

		exp, err := a.experienceService.Create(ctx, draft)
		if err != nil {
			return a.report(ctx, "Publishing", err)
		}
		fmt.Fprintf(a.out, "Published %q [%s]\n", models.DisplayTitle(exp.Title), exp.Key())
		return nil
	})
}

// Edit replaces the title and answers of experience id.
func (a *App) Edit(ctx context.Context, id string) error {
	return a.navigate(ctx, ViewWrite, func(ctx context.Context) error {
		current, err := a.experienceService.Get(ctx, id)
		if err != nil {
			return a.report(ctx, "Loading experience", err)
		}

		draft, err := a.promptDraft(ctx, current.Title)
		if err != nil {
			return a.report(ctx, "Saving", err)
		}

		exp, err := a.experienceService.Update(ctx, id, draft)
		if err != nil {
			return a.report(ctx, "Saving", err)
		}
		fmt.Fprintf(a.out, "Saved %q\n", models.DisplayTitle(exp.Title))
		return nil
	})
}

// Delete removes experience id.
func (a *App) Delete(ctx context.Context, id string) error {
	return a.navigate(ctx, ViewWrite, func(ctx context.Context) error {
		if err := a.experienceService.Delete(ctx, id); err != nil {
			return a.report(ctx, "Deleting", err)
		}
		fmt.Fprintln(a.out, "Deleted.")
		return nil
	})
}

// promptDraft asks for a title, then one answer per active question.
// Unanswered questions are left out of the draft.
func (a *App) promptDraft(ctx context.Context, currentTitle string) (models.ExperienceDraft, error) {
	questions, err := a.experienceService.ActiveQuestions(ctx)
	if err != nil {
		return models.ExperienceDraft{}, err
	}

	prompt := "Title"
	if currentTitle != "" {
		prompt = fmt.Sprintf("Title (was %q)", currentTitle)
	}
	title, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return models.ExperienceDraft{}, err
	}
	if title == "" {
		title = currentTitle
	}

	draft := models.ExperienceDraft{Title: title}
	for _, q := range questions {
		answer, err := getMultiline(a.reader, q.Text, a.out)
		if err != nil {
			return models.ExperienceDraft{}, err
		}
		if answer == "" {
			continue
		}
		draft.Content = append(draft.Content, models.QuestionAnswer{QuestionID: q.ID, Answer: answer})
	}
	return draft, nil
}
