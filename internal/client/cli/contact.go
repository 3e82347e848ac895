package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/experiences/internal/client/models"
)

// Contact sends a message to the site team. Name defaults to the logged-in
// user's name.
func (a *App) Contact(ctx context.Context) error {
	return a.navigate(ctx, ViewContact, func(ctx context.Context) error {
		var msg models.ContactMessage

		defaultName := ""
		if st := a.session.Current(); st.Identity != nil {
			defaultName = st.Identity.FullName()
		}

		prompt := "Your name"
		if defaultName != "" {
			prompt = fmt.Sprintf("Your name (%s)", defaultName)
		}
		name, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		if name == "" {
			name = defaultName
		}
		msg.Name = name

		if msg.Email, err = getSimpleText(a.reader, "Your email", a.out); err != nil {
			return err
		}
		if msg.Subject, err = getSimpleText(a.reader, "Subject", a.out); err != nil {
			return err
		}
		if msg.Message, err = getMultiline(a.reader, "Message", a.out); err != nil {
			return err
		}

		ack, err := a.contactService.Send(ctx, msg)
		if err != nil {
			return a.report(ctx, "Sending message", err)
		}
		if ack == "" {
			ack = "Message sent."
		}
		fmt.Fprintln(a.out, ack)
		return nil
	})
}
