package api

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/mingle-app/mingle/internal/plan"
)

// planClaims is the subset of the access token the client reads.
type planClaims struct {
	Plan string `json:"plan"`
	jwt.RegisteredClaims
}

// PlanFromToken reads the "plan" claim from a bearer JWT. The signature is not
// checked; the result only picks a display default and the server stays
// authoritative.
func PlanFromToken(token string) (plan.Plan, bool) {
	if token == "" {
		return "", false
	}
	var claims planClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return "", false
	}
	return plan.Parse(claims.Plan)
}
