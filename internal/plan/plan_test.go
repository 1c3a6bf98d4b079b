package plan

import "testing"

func TestOffers(t *testing.T) {
	tests := []struct {
		plan    Plan
		basic   bool
		premium bool
	}{
		{Free, true, true},
		{Trial, true, true},
		{Basic, false, true},
		{Premium, false, false},
	}
	for _, tt := range tests {
		if got := tt.plan.OffersBasic(); got != tt.basic {
			t.Errorf("%s.OffersBasic() = %v, want %v", tt.plan, got, tt.basic)
		}
		if got := tt.plan.OffersPremium(); got != tt.premium {
			t.Errorf("%s.OffersPremium() = %v, want %v", tt.plan, got, tt.premium)
		}
	}
}

func TestOffers_Order(t *testing.T) {
	got := Free.Offers()
	if len(got) != 2 || got[0] != TierBasic || got[1] != TierPremium {
		t.Errorf("Free.Offers() = %v", got)
	}
	if got := Premium.Offers(); len(got) != 0 {
		t.Errorf("Premium.Offers() = %v, want none", got)
	}
}

func TestDetails_Table(t *testing.T) {
	tests := []struct {
		plan    Plan
		pins    Quota
		mingles Quota
		msgs    Quota
		price   string
	}{
		{Free, 3, 2, 20, ""},
		{Trial, 50, 20, 1000, ""},
		{Basic, 10, 5, 100, "$2.99/mo"},
		{Premium, Unlimited, Unlimited, Unlimited, "$4.99/mo"},
	}
	for _, tt := range tests {
		d := tt.plan.Details()
		if d.Pins != tt.pins || d.Mingles != tt.mingles || d.Messages != tt.msgs {
			t.Errorf("%s quotas = %v/%v/%v", tt.plan, d.Pins, d.Mingles, d.Messages)
		}
		if d.Price != tt.price {
			t.Errorf("%s price = %q, want %q", tt.plan, d.Price, tt.price)
		}
	}
}

func TestDetails_UnknownFallsBackToFree(t *testing.T) {
	if got := Plan("gold").Details().Name; got != "Free" {
		t.Errorf("unknown plan name = %q, want Free", got)
	}
}

func TestParse(t *testing.T) {
	if p, ok := Parse(" Premium "); !ok || p != Premium {
		t.Errorf("Parse(Premium) = %q, %v", p, ok)
	}
	if _, ok := Parse("gold"); ok {
		t.Error("expected gold to be rejected")
	}
}

func TestParseLimitKind(t *testing.T) {
	for _, s := range []string{"pin", "mingle", "message"} {
		if _, ok := ParseLimitKind(s); !ok {
			t.Errorf("ParseLimitKind(%q) rejected", s)
		}
	}
	for _, s := range []string{"", "Pin", "upload"} {
		if _, ok := ParseLimitKind(s); ok {
			t.Errorf("ParseLimitKind(%q) accepted", s)
		}
	}
}

func TestLimitKind_Label(t *testing.T) {
	if LimitMessage.Label() != "messages" {
		t.Errorf("label = %q", LimitMessage.Label())
	}
	if LimitPin.Label() != "pins" || LimitMingle.Label() != "mingles" {
		t.Error("unexpected labels")
	}
}

func TestQuota_String(t *testing.T) {
	if Unlimited.String() != "Unlimited" {
		t.Errorf("Unlimited = %q", Unlimited.String())
	}
	if Quota(20).String() != "20" {
		t.Errorf("20 = %q", Quota(20).String())
	}
	if Free.Details().Quota(LimitMingle) != 2 {
		t.Error("free mingle quota should be 2")
	}
	for _, k := range LimitKinds {
		if Premium.Details().Quota(k) != Unlimited {
			t.Errorf("premium %s quota should be unlimited", k)
		}
	}
	if Free.Details().Quota(LimitKind("upload")) != 0 {
		t.Error("unknown kind should have no quota")
	}
}

func TestTier(t *testing.T) {
	if !TierBasic.Valid() || !TierPremium.Valid() || Tier("free").Valid() {
		t.Error("unexpected tier validity")
	}
	if TierPremium.Plan() != Premium {
		t.Error("premium tier should map to premium plan")
	}
}
