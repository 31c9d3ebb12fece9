package cli

import (
	"context"
	"log"
	"os"
)

// Login signs in with a Google ID token. Obtaining the token is the user's
// business (gcloud, the OAuth playground, or a browser devtools session);
// the CLI only exchanges it for a server session.
func (a *App) Login(ctx context.Context) error {

	token, err := GetSecret("Paste Google ID token", os.Stdout)
	if err != nil {
		reportError(err)
		return err
	}

	session, err := a.sessions.Login(ctx, string(token))
	if err != nil {
		reportError(err)
		return err
	}

	log.Printf("Logged in as %s", session.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {

	if err := a.sessions.Logout(ctx); err != nil {
		reportError(err)
		return err
	}

	log.Println("Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {

	session := a.sessions.Current()
	if session == nil {
		log.Println("Not logged in")
		return nil
	}

	log.Printf("%s <%s>", session.Name, session.Email)
	return nil
}
