package config

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Sentry holds CLI flags for error reporting
type Sentry struct {
	dsn         string
	environment string
}

// Flags returns CLI flags for Sentry configuration
func (s *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN; errors are reported when set",
			Category:    "Sentry",
			Sources:     cli.EnvVars("SWISS_SENTRY_DSN"),
			Destination: &s.dsn,
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Sources:     cli.EnvVars("SWISS_SENTRY_ENV"),
			Destination: &s.environment,
		},
	}
}

type sentryLogValue struct {
	DSN         string `masq:"secret"`
	Environment string
}

func (s Sentry) LogValue() slog.Value {
	return slog.AnyValue(sentryLogValue{
		DSN:         s.dsn,
		Environment: s.environment,
	})
}

// IsConfigured reports whether a DSN was given
func (s *Sentry) IsConfigured() bool {
	return s.dsn != ""
}

// Configure initializes the global Sentry client. The returned function
// flushes buffered events. Without a DSN nothing is initialized.
func (s *Sentry) Configure(release string) (func(), error) {
	if !s.IsConfigured() {
		return func() {}, nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         s.dsn,
		Environment: s.environment,
		Release:     release,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to initialize sentry")
	}

	return func() {
		sentry.Flush(2 * time.Second)
	}, nil
}
