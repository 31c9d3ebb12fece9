package config

import (
	"flag"
	"os"
	"time"

	"github.com/ayushchouksey/jeclens/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   session token HMAC secret key
//	-t int      access token validity, minutes
//	-r int      refresh token validity, minutes
//	-g string   Google OAuth client ID
//	-m string   approver email
//	-i string   insider email
//	-q int      daily post limit per identity
//	-l int      feed query cap
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. Duration
// flags are accepted as integers in minutes.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-r", "-g", "-m", "-i", "-q", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidityDuration := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access_token_validity_duration (in minutes)")
	refreshTokenValidityDuration := fs.Int("r", int(config.RefreshTokenValidityDuration.Minutes()), "refresh_token_validity_duration (in minutes)")

	fs.StringVar(&config.GoogleClientID, "g", config.GoogleClientID, "Google OAuth client ID")
	fs.StringVar(&config.ApproverEmail, "m", config.ApproverEmail, "approver email")
	fs.StringVar(&config.InsiderEmail, "i", config.InsiderEmail, "insider email")
	fs.IntVar(&config.DailyPostLimit, "q", config.DailyPostLimit, "daily post limit per identity")
	fs.IntVar(&config.FeedLimit, "l", config.FeedLimit, "feed query cap")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidityDuration) * time.Minute
	config.RefreshTokenValidityDuration = time.Duration(*refreshTokenValidityDuration) * time.Minute
}
