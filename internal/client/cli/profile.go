package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/experiences/internal/client/models"
)

// Profile shows the logged-in user's profile. It is fetched on every visit.
func (a *App) Profile(ctx context.Context) error {
	return a.navigate(ctx, ViewProfile, func(ctx context.Context) error {
		p, err := a.profileService.Fetch(ctx)
		if err != nil {
			return a.report(ctx, "Loading profile", err)
		}

		name := models.Identity{Name: p.Name, Surname: p.Surname}.FullName()
		fmt.Fprintf(a.out, "%s %s\n", p.AvatarColor.Badge(models.Initials(name)), name)
		fmt.Fprintf(a.out, "email:         %s\n", p.Email)
		if p.DateOfBirth != "" {
			fmt.Fprintf(a.out, "date of birth: %s\n", p.DateOfBirth)
		}
		return nil
	})
}
