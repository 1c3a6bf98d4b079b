// Package plan defines the subscription plans, purchasable tiers and daily
// limit kinds, along with the static quota and price table.
package plan

import (
	"strconv"
	"strings"
)

// Plan is a subscription level a user can be on.
type Plan string

const (
	Free    Plan = "free"
	Trial   Plan = "trial"
	Basic   Plan = "basic"
	Premium Plan = "premium"
)

// All lists the plans in display order.
var All = []Plan{Free, Trial, Basic, Premium}

// Parse returns the plan named s (case-insensitive).
func Parse(s string) (Plan, bool) {
	p := Plan(strings.ToLower(strings.TrimSpace(s)))
	return p, p.Valid()
}

// Valid reports whether p is one of the known plans.
func (p Plan) Valid() bool {
	switch p {
	case Free, Trial, Basic, Premium:
		return true
	}
	return false
}

// Details returns the reference row for p, defaulting to the free plan if p is unknown.
func (p Plan) Details() Details {
	if d, ok := details[p]; ok {
		return d
	}
	return details[Free]
}

// OffersBasic reports whether a user on p is offered the Basic tier.
func (p Plan) OffersBasic() bool {
	return p == Free || p == Trial
}

// OffersPremium reports whether a user on p is offered the Premium tier.
func (p Plan) OffersPremium() bool {
	return p != Premium
}

// Offers returns the tiers a user on p can buy, cheapest first.
func (p Plan) Offers() []Tier {
	var tiers []Tier
	if p.OffersBasic() {
		tiers = append(tiers, TierBasic)
	}
	if p.OffersPremium() {
		tiers = append(tiers, TierPremium)
	}
	return tiers
}

// Tier is a purchasable subscription level.
type Tier string

const (
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
)

// Valid reports whether t can be sent to checkout.
func (t Tier) Valid() bool {
	return t == TierBasic || t == TierPremium
}

// Plan returns the plan a user ends up on after buying t.
func (t Tier) Plan() Plan { return Plan(t) }

// LimitKind is the category of resource whose daily quota was exceeded.
type LimitKind string

const (
	LimitPin     LimitKind = "pin"
	LimitMingle  LimitKind = "mingle"
	LimitMessage LimitKind = "message"
)

// LimitKinds lists every limit kind in display order.
var LimitKinds = []LimitKind{LimitPin, LimitMingle, LimitMessage}

// ParseLimitKind validates s against the closed set of limit kinds.
func ParseLimitKind(s string) (LimitKind, bool) {
	switch k := LimitKind(s); k {
	case LimitPin, LimitMingle, LimitMessage:
		return k, true
	}
	return "", false
}

// Label returns the plural display label ("pins", "mingles", "messages").
func (k LimitKind) Label() string {
	switch k {
	case LimitPin:
		return "pins"
	case LimitMingle:
		return "mingles"
	case LimitMessage:
		return "messages"
	}
	return string(k)
}

// Quota is a daily allowance. Unlimited means no cap.
type Quota int

const Unlimited Quota = -1

func (q Quota) String() string {
	if q == Unlimited {
		return "Unlimited"
	}
	return strconv.Itoa(int(q))
}

// Details is the static reference data for a plan.
type Details struct {
	Name     string
	Pins     Quota
	Mingles  Quota
	Messages Quota
	Price    string // empty for unpaid plans
}

// Quota returns the allowance for kind.
func (d Details) Quota(kind LimitKind) Quota {
	switch kind {
	case LimitPin:
		return d.Pins
	case LimitMingle:
		return d.Mingles
	case LimitMessage:
		return d.Messages
	}
	return 0
}

var details = map[Plan]Details{
	Free:    {Name: "Free", Pins: 3, Mingles: 2, Messages: 20},
	Trial:   {Name: "Trial", Pins: 50, Mingles: 20, Messages: 1000},
	Basic:   {Name: "Basic", Pins: 10, Mingles: 5, Messages: 100, Price: "$2.99/mo"},
	Premium: {Name: "Premium", Pins: Unlimited, Mingles: Unlimited, Messages: Unlimited, Price: "$4.99/mo"},
}
