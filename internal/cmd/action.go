package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mingle-app/mingle/internal/api"
	"github.com/mingle-app/mingle/internal/plan"
	"github.com/mingle-app/mingle/internal/upgrade"
)

func newPinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pin <user>",
		Short: "Pin a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, plan.LimitPin, func(ctx context.Context, c *api.Client) error {
				return c.Pin(ctx, args[0])
			})
		},
	}
}

func newMingleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mingle <user>",
		Short: "Send a mingle request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, plan.LimitMingle, func(ctx context.Context, c *api.Client) error {
				return c.Mingle(ctx, args[0])
			})
		},
	}
}

func newMessageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "message <user> <text>",
		Short: "Send a message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, plan.LimitMessage, func(ctx context.Context, c *api.Client) error {
				return c.Message(ctx, args[0], args[1])
			})
		},
	}
}

// runAction performs a quota-consuming call. A daily-limit reply opens the
// upgrade prompt; any other failure is returned.
func runAction(cmd *cobra.Command, kind plan.LimitKind, call func(context.Context, *api.Client) error) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}

	err = call(cmd.Context(), e.client)
	if err == nil {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Done.")
		return nil
	}
	if !upgrade.HandleLimitError(err, e.fallbackPlan()) {
		return fmt.Errorf("%s: %w", kind, err)
	}

	st := upgrade.Default().State()
	e.logger.Info("daily limit reached", "limit", st.LimitKind, "count", st.LimitCount, "plan", st.CurrentPlan)
	return e.showPrompt(cmd)
}
