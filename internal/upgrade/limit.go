package upgrade

import (
	"log/slog"
	"regexp"
	"strconv"

	"github.com/mingle-app/mingle/internal/api"
	"github.com/mingle-app/mingle/internal/plan"
)

// countInMessage matches the count older servers embed in the message,
// e.g. "Daily pin limit reached (3)".
var countInMessage = regexp.MustCompile(`\((\d+)\)`)

// HandleLimitError opens the prompt when err is a daily-limit reply: an
// *api.APIError with status 429 and a known limit kind in its action. It
// reports whether it did. Any other error is left to the caller.
//
// The prompt is opened with fallback as the current plan; an empty or
// unknown fallback means free.
func (s *Store) HandleLimitError(err error, fallback plan.Plan) bool {
	apiErr, ok := api.AsAPIError(err)
	if !ok || apiErr == nil || !apiErr.IsRateLimited() || apiErr.Action == "" {
		return false
	}
	kind, ok := plan.ParseLimitKind(apiErr.Action)
	if !ok {
		slog.Debug("ignoring limit error with unknown action", "action", apiErr.Action)
		return false
	}
	if !fallback.Valid() {
		fallback = plan.Free
	}
	s.Open(kind, limitCount(apiErr), fallback)
	return true
}

// HandleLimitError runs Store.HandleLimitError on the process-wide store.
func HandleLimitError(err error, fallback plan.Plan) bool {
	return defaultStore.HandleLimitError(err, fallback)
}

// limitCount prefers the structured count and falls back to parsing the
// message. Parsing is best-effort for servers that predate the field.
func limitCount(e *api.APIError) int {
	if e.Count != nil {
		return *e.Count
	}
	m := countInMessage.FindStringSubmatch(e.Message)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
