package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if session := a.sessions.Current(); session != nil {
		s = session.Email + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to Jec Lens CLI (type 'help' for commands)")

	// resume the previous session, if any
	if session, err := a.sessions.Restore(ctx); err != nil {
		log.Printf("error restoring session: %v", err)
	} else if session != nil {
		log.Printf("Resumed session for %s", session.Email)
	}

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
