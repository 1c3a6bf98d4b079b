package prompt

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/mingle-app/mingle/internal/cli"
	"github.com/mingle-app/mingle/internal/plan"
	"github.com/mingle-app/mingle/internal/upgrade"
)

// RunPlain is the line-based version of the prompt. It offers the same tiers
// and runs the same checkout flow, one blocking request per choice.
func RunPlain(ctx context.Context, store *upgrade.Store, p *cli.Prompter, opts Options) (Result, error) {
	navigate := opts.Navigate
	if navigate == nil {
		navigate = OpenBrowser
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var errMsg string
	for {
		st := store.State()
		if !st.Visible {
			return Result{}, nil
		}

		current := st.CurrentPlan.Details()
		p.Printf("\nYou've hit your limit!\n")
		p.Printf("%d %s today on %s plan\n\n", st.LimitCount, st.LimitKind.Label(), current.Name)
		p.Printf("Upgrade now to keep connecting with your community.\n\n")
		if errMsg != "" {
			p.Printf("Error: %s\n\n", errMsg)
		}

		tiers := st.CurrentPlan.Offers()
		labels := make([]string, 0, len(tiers)+1)
		for _, t := range tiers {
			labels = append(labels, plainLabel(t))
		}
		labels = append(labels, "Maybe later")

		choice := p.Choose("Choose a plan", labels, len(labels)-1)
		if choice == len(tiers) {
			store.Close()
			return Result{}, nil
		}

		tier := tiers[choice]
		p.Printf("Redirecting to checkout...\n")
		session, err := opts.Checkout.CreateCheckout(ctx, tier)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Result{}, ctxErr
		}
		if err != nil {
			logger.Error("checkout error", "tier", tier, "error", err)
		}

		url, msg := checkoutURL(session, err)
		if msg != "" {
			errMsg = msg
			continue
		}
		if !p.Confirm("Open checkout in browser?", true) {
			p.Printf("Checkout link: %s\n", url)
			return Result{Outcome: OutcomeRedirected, Tier: tier, URL: url}, nil
		}
		if err := navigate(url); err != nil {
			logger.Warn("open checkout url", "error", err)
			errMsg = "Could not open browser. Visit: " + url
			continue
		}
		p.Printf("Opened %s\n", url)
		return Result{Outcome: OutcomeRedirected, Tier: tier, URL: url}, nil
	}
}

func plainLabel(t plan.Tier) string {
	d := t.Plan().Details()
	switch t {
	case plan.TierBasic:
		return fmt.Sprintf("Basic: %s pins • %s mingles • %s msgs/day (%s)", d.Pins, d.Mingles, d.Messages, d.Price)
	case plan.TierPremium:
		return fmt.Sprintf("Premium: Unlimited everything, priority support (%s) BEST VALUE", d.Price)
	}
	return string(t)
}
