package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Principal is the authenticated caller every service operation receives.
// It is built from JWT claims once per request; services never read the
// request context themselves.
type Principal struct {
	SubjectID uuid.UUID
	Role      Role
}

// PrincipalFromContext resolves the caller from the claims the JWT
// middleware stored. It fails closed: missing claims, a missing subject
// id, or an unknown role all yield an unauthenticated error even if the
// token itself was valid.
func PrincipalFromContext(ctx context.Context) (Principal, error) {
	claims, ok := ctx.Value(CtxJwtClaimsKey).(*JwtClaims)
	if !ok || claims == nil {
		return Principal{}, newErrUnauthenticated()
	}

	if claims.UUID == "" {
		return Principal{}, newErrUnauthenticated().
			SetDebug(fmt.Errorf("token for %q carries no subject id", claims.Username))
	}

	subject, err := uuid.Parse(claims.UUID)
	if err != nil {
		return Principal{}, newErrUnauthenticated().
			SetDebug(fmt.Errorf("failed to parse subject id: %w", err))
	}

	role, err := ParseRole(claims.Role)
	if err != nil {
		return Principal{}, newErrUnauthenticated().
			SetDebug(fmt.Errorf("failed to parse role claim: %w", err))
	}

	return Principal{SubjectID: subject, Role: role}, nil
}
