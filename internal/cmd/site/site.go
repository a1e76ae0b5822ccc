// Package site parses site command flags and starts the HTTP server.
package site

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/baucmind/site/internal/lead"
	leadsqlite "github.com/baucmind/site/internal/lead/sqlite"
	entrypoint "github.com/baucmind/site/internal/platform/cmd"
	server "github.com/baucmind/site/internal/services/site"
)

// Config holds site command configuration.
type Config struct {
	HTTPAddr        string        `env:"BAUC_SITE_HTTP_ADDR"        envDefault:"localhost:8080"`
	SchedulingURL   string        `env:"BAUC_SITE_SCHEDULING_URL"   envDefault:"https://calendly.com/lorenacsilva/bauc-mind"`
	LeadsDBPath     string        `env:"BAUC_SITE_LEADS_DB_PATH"`
	LeadSubmitDelay time.Duration `env:"BAUC_SITE_LEAD_SUBMIT_DELAY" envDefault:"2s"`
	CheckTimeScale  float64       `env:"BAUC_SITE_CHECK_TIME_SCALE" envDefault:"1"`
	DevMode         bool          `env:"BAUC_SITE_DEV_MODE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	return bindFlags(fs, args, cfg)
}

func parseConfigFrom(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfigFrom(&cfg, environ); err != nil {
		return Config{}, err
	}
	return bindFlags(fs, args, cfg)
}

func bindFlags(fs *flag.FlagSet, args []string, cfg Config) (Config, error) {
	if fs == nil {
		return Config{}, fmt.Errorf("flag parser is required")
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "site HTTP listen address")
	fs.StringVar(&cfg.SchedulingURL, "scheduling-url", cfg.SchedulingURL, "external demo scheduling page")
	fs.StringVar(&cfg.LeadsDBPath, "leads-db", cfg.LeadsDBPath, "SQLite path for demo requests; empty keeps the simulated inbox")
	fs.DurationVar(&cfg.LeadSubmitDelay, "lead-submit-delay", cfg.LeadSubmitDelay, "simulated inbox response delay")
	fs.Float64Var(&cfg.CheckTimeScale, "check-time-scale", cfg.CheckTimeScale, "multiplier for scripted check timings")
	fs.BoolVar(&cfg.DevMode, "dev", cfg.DevMode, "surface configuration errors as error pages")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.CheckTimeScale < 0 {
		return Config{}, fmt.Errorf("check time scale must not be negative")
	}
	return cfg, nil
}

// Run opens the lead inbox and serves the site until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSite, func(ctx context.Context) error {
		leads, closer, err := openLeads(cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := closer.Close(); err != nil {
				log.Printf("close lead inbox: %v", err)
			}
		}()

		srv, err := server.NewServer(ctx, serverConfig(cfg, leads))
		if err != nil {
			return fmt.Errorf("init site server: %w", err)
		}
		defer srv.Close()

		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve site: %w", err)
		}
		return nil
	})
}

func serverConfig(cfg Config, leads lead.Submitter) server.Config {
	return server.Config{
		HTTPAddr:       cfg.HTTPAddr,
		SchedulingURL:  cfg.SchedulingURL,
		DevMode:        cfg.DevMode,
		Leads:          leads,
		CheckTimeScale: cfg.CheckTimeScale,
		Logger:         log.Default(),
	}
}

// openLeads picks the SQLite inbox when a path is configured and the
// simulated one otherwise.
func openLeads(cfg Config) (lead.Submitter, io.Closer, error) {
	path := strings.TrimSpace(cfg.LeadsDBPath)
	if path == "" {
		log.Printf("demo requests use the simulated inbox (delay %s)", cfg.LeadSubmitDelay)
		return lead.NewSimulated(cfg.LeadSubmitDelay), nopCloser{}, nil
	}
	store, err := leadsqlite.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open lead inbox: %w", err)
	}
	log.Printf("demo requests stored in %s", path)
	return store, store, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
