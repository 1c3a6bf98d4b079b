package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mingle-app/mingle/internal/plan"
	"github.com/mingle-app/mingle/internal/upgrade"
)

func newUpgradeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "upgrade",
		Short: "Show the upgrade prompt",
		Args:  cobra.NoArgs,
		RunE:  runUpgrade,
	}
	c.Flags().String("limit", string(plan.LimitPin), "limit kind to show (pin, mingle, message)")
	c.Flags().Int("count", 0, "number of uses reached today")
	c.Flags().String("plan", "", "current plan (default: from token or config)")
	return c
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetString("limit")
	count, _ := cmd.Flags().GetInt("count")
	planName, _ := cmd.Flags().GetString("plan")

	kind, ok := plan.ParseLimitKind(limit)
	if !ok {
		return fmt.Errorf("unknown limit %q (want pin, mingle, or message)", limit)
	}

	e, err := setup(cmd)
	if err != nil {
		return err
	}

	current := e.fallbackPlan()
	if planName != "" {
		p, ok := plan.Parse(planName)
		if !ok {
			return fmt.Errorf("unknown plan %q", planName)
		}
		current = p
	}

	upgrade.Open(kind, count, current)
	return e.showPrompt(cmd)
}
