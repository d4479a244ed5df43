package auth

import "github.com/google/uuid"

// Require allows the operation when the principal acts as the given role.
func Require(p Principal, role Role) error {
	if p.Role != role {
		return newErrForbiddenRole(role)
	}
	return nil
}

// RequireOwner allows the operation when the principal acts as the given
// role and is the recorded owner of the resource. An ownership mismatch
// is an authorization failure, not a not-found.
func RequireOwner(p Principal, role Role, owner uuid.UUID) error {
	if err := Require(p, role); err != nil {
		return err
	}
	if p.SubjectID != owner {
		return newErrNotOwner()
	}
	return nil
}
