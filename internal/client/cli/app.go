// Package cli implements the interactive Jec Lens command line client.
package cli

import (
	"bufio"
	"context"
	"log"
	"os"
	"time"

	"github.com/ayushchouksey/jeclens/internal/client/api"
	"github.com/ayushchouksey/jeclens/internal/client/client"
	"github.com/ayushchouksey/jeclens/internal/client/config"
	"github.com/ayushchouksey/jeclens/internal/client/services"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	sessions    *services.SessionService
	feed        *services.FeedController
	submissions *services.SubmissionGate
	votes       *services.VoteGate
	moderation  *services.Moderation
	Mode        Mode
	reader      *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	db, err := client.InitDatabase(ctx, c.LocalDBPath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}
	repos := client.NewRepositories(db)

	apiClient := api.NewHTTPClient(c.ServerEndpointAddr)

	return &App{
		config:      c,
		sessions:    services.NewSessionService(apiClient, repos.Session),
		feed:        services.NewFeedController(apiClient),
		submissions: services.NewSubmissionGate(apiClient, repos.Quota),
		votes:       services.NewVoteGate(apiClient, repos.VoteMarks),
		moderation:  services.NewModeration(apiClient),
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		log.Printf("Switched to %s mode\n", mode)
	}
}

func (a *App) isLoggedIn() bool {
	return a.sessions.Current() != nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.sessions.Ping(probeCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
