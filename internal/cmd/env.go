package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mingle-app/mingle/internal/api"
	"github.com/mingle-app/mingle/internal/config"
	"github.com/mingle-app/mingle/internal/plan"
	"github.com/mingle-app/mingle/internal/tui/prompt"
	"github.com/mingle-app/mingle/internal/upgrade"
)

// env is what every API-backed command needs.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	client *api.Client
	plain  bool
}

func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(resolveConfigPath(cmd, config.DefaultConfigPath()))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// Logs go to stderr so they never land inside the TUI.
	logger := slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	plain, _ := cmd.Flags().GetBool("plain")

	return &env{
		cfg:    cfg,
		logger: logger,
		client: api.New(api.Config{
			BaseURL:   cfg.API.URL,
			Token:     cfg.API.Token,
			UserAgent: "mingle/" + version,
			Timeout:   cfg.API.Timeout.Duration,
			Logger:    logger,
		}),
		plain: plain,
	}, nil
}

// fallbackPlan is the plan shown in the prompt: the token's plan claim if it
// has one, else the configured default.
func (e *env) fallbackPlan() plan.Plan {
	if p, ok := api.PlanFromToken(e.cfg.API.Token); ok {
		return p
	}
	return e.cfg.DefaultPlan
}

// showPrompt runs the upgrade prompt for the process-wide store.
func (e *env) showPrompt(cmd *cobra.Command) error {
	res, err := prompt.Show(cmd.Context(), upgrade.Default(), prompt.Options{
		Checkout: e.client,
		Logger:   e.logger,
		Plain:    e.plain,
		Input:    cmd.InOrStdin(),
		Output:   cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}
	e.logger.Info("upgrade prompt closed", "outcome", res.Outcome.String(), "tier", res.Tier)
	if res.Outcome == prompt.OutcomeRedirected {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Continue your %s checkout in the browser.\n", res.Tier.Plan().Details().Name)
	}
	return nil
}

// resolveConfigPath returns the --config flag value, or defaultPath.
func resolveConfigPath(cmd *cobra.Command, defaultPath string) string {
	if f := cmd.Flag("config"); f != nil && f.Changed {
		return f.Value.String()
	}
	if f := cmd.Root().PersistentFlags().Lookup("config"); f != nil && f.Changed {
		return f.Value.String()
	}
	return defaultPath
}
