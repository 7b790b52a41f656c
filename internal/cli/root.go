// Package cli implements portfolioctl, the terminal counterpart of the admin
// panel.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/dexsamir/portfolio/internal/backend"
	"github.com/dexsamir/portfolio/internal/cache"
)

const defaultBackendURL = "http://localhost:4000"

var version = "dev"

var (
	errNotLoggedIn    = errors.New("not logged in, run portfolioctl login")
	errSessionExpired = errors.New("session expired, run portfolioctl login")
)

// app holds the state shared by all commands of one invocation.
type app struct {
	dataDir    string
	backendURL string
	redisAddr  string

	cfg       *Config
	api       *backend.Client
	rdb       *redis.Client
	snapshots *cache.Snapshots
	logger    *slog.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "portfolioctl",
		Short:             "Manage portfolio projects and testimonials",
		Version:           version,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) { a.close() },
		SilenceUsage:      true,
	}
	root.PersistentFlags().StringVar(&a.dataDir, "data-dir", defaultDataDir(), "configuration directory")
	root.PersistentFlags().StringVar(&a.backendURL, "backend", "", "backend base URL (overrides the saved one)")
	root.PersistentFlags().StringVar(&a.redisAddr, "redis", "", "Redis address of the web app; cached lists are dropped after writes")

	root.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.projectsCmd(),
		a.testimonialsCmd(),
		a.technologiesCmd(),
		a.exportCmd(),
		a.importCmd(),
	)
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg, err := LoadConfig(a.dataDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	a.cfg = cfg

	base := firstNonEmpty(a.backendURL, os.Getenv("PORTFOLIO_BACKEND_URL"), cfg.BackendURL, defaultBackendURL)
	opts := []backend.Option{backend.WithLogger(a.logger)}
	if cfg.APIPrefix != "" {
		opts = append(opts, backend.WithAPIPrefix(cfg.APIPrefix))
	}
	if a.api, err = backend.New(base, opts...); err != nil {
		return err
	}

	if addr := firstNonEmpty(a.redisAddr, os.Getenv("PORTFOLIO_REDIS_ADDR"), cfg.RedisAddr); addr != "" {
		a.rdb = redis.NewClient(&redis.Options{Addr: addr})
		a.snapshots = cache.NewSnapshots(a.rdb, a.api, 0, a.logger)
	}
	return nil
}

func (a *app) close() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
}

// token returns the stored token or errNotLoggedIn.
func (a *app) token() (string, error) {
	tok, err := ReadToken(a.dataDir)
	if err != nil {
		return "", err
	}
	if tok == "" {
		return "", errNotLoggedIn
	}
	return tok, nil
}

// check removes the stored token when the backend rejected it.
func (a *app) check(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, backend.ErrUnauthorized) {
		if cerr := ClearToken(a.dataDir); cerr != nil {
			return cerr
		}
		return errSessionExpired
	}
	return err
}

func (a *app) InvalidateProjects(ctx context.Context) {
	if a.snapshots != nil {
		a.snapshots.InvalidateProjects(ctx)
	}
}

func (a *app) InvalidateTestimonials(ctx context.Context) {
	if a.snapshots != nil {
		a.snapshots.InvalidateTestimonials(ctx)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
