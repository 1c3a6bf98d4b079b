package upgrade

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/mingle-app/mingle/internal/api"
	"github.com/mingle-app/mingle/internal/plan"
)

func intPtr(n int) *int { return &n }

func TestHandleLimitError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		fallback  plan.Plan
		handled   bool
		wantKind  plan.LimitKind
		wantCount int
		wantPlan  plan.Plan
	}{
		{
			name:      "count in message",
			err:       &api.APIError{StatusCode: 429, Action: "pin", Message: "Daily pin limit reached (3)"},
			handled:   true,
			wantKind:  plan.LimitPin,
			wantCount: 3,
			wantPlan:  plan.Free,
		},
		{
			name:      "no number in message",
			err:       &api.APIError{StatusCode: 429, Action: "pin", Message: "Daily pin limit reached"},
			handled:   true,
			wantKind:  plan.LimitPin,
			wantCount: 0,
			wantPlan:  plan.Free,
		},
		{
			name:      "no message",
			err:       &api.APIError{StatusCode: 429, Action: "message"},
			fallback:  plan.Basic,
			handled:   true,
			wantKind:  plan.LimitMessage,
			wantCount: 0,
			wantPlan:  plan.Basic,
		},
		{
			name:      "structured count wins",
			err:       &api.APIError{StatusCode: 429, Action: "mingle", Message: "limit reached (2)", Count: intPtr(5)},
			fallback:  plan.Trial,
			handled:   true,
			wantKind:  plan.LimitMingle,
			wantCount: 5,
			wantPlan:  plan.Trial,
		},
		{
			name:      "wrapped error",
			err:       fmt.Errorf("pin user: %w", &api.APIError{StatusCode: 429, Action: "pin", Message: "(12)"}),
			handled:   true,
			wantKind:  plan.LimitPin,
			wantCount: 12,
			wantPlan:  plan.Free,
		},
		{
			name:      "unknown fallback means free",
			err:       &api.APIError{StatusCode: 429, Action: "pin"},
			fallback:  plan.Plan("gold"),
			handled:   true,
			wantKind:  plan.LimitPin,
			wantCount: 0,
			wantPlan:  plan.Free,
		},
		{
			name: "server error",
			err:  &api.APIError{StatusCode: http.StatusInternalServerError, Action: "pin"},
		},
		{
			name: "429 without action",
			err:  &api.APIError{StatusCode: 429, Message: "rate limit exceeded"},
		},
		{
			name: "unknown action fails closed",
			err:  &api.APIError{StatusCode: 429, Action: "upload", Message: "(4)"},
		},
		{
			name: "plain error",
			err:  errors.New("connection refused"),
		},
		{
			name: "nil error",
		},
		{
			name: "typed nil",
			err:  error((*api.APIError)(nil)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			got := s.HandleLimitError(tt.err, tt.fallback)
			if got != tt.handled {
				t.Fatalf("handled = %v, want %v", got, tt.handled)
			}

			st := s.State()
			if !tt.handled {
				if st != (State{CurrentPlan: plan.Free}) {
					t.Errorf("state mutated: %+v", st)
				}
				return
			}
			if !st.Visible {
				t.Error("expected prompt to be open")
			}
			if st.LimitKind != tt.wantKind {
				t.Errorf("kind = %q, want %q", st.LimitKind, tt.wantKind)
			}
			if st.LimitCount != tt.wantCount {
				t.Errorf("count = %d, want %d", st.LimitCount, tt.wantCount)
			}
			if st.CurrentPlan != tt.wantPlan {
				t.Errorf("plan = %q, want %q", st.CurrentPlan, tt.wantPlan)
			}
		})
	}
}

func TestHandleLimitError_DefaultStore(t *testing.T) {
	t.Cleanup(Close)

	if !HandleLimitError(&api.APIError{StatusCode: 429, Action: "pin", Message: "Daily pin limit reached (3)"}, "") {
		t.Fatal("expected handled")
	}
	st := Default().State()
	if !st.Visible || st.LimitCount != 3 {
		t.Errorf("default store = %+v", st)
	}
}
