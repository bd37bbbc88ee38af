package domain

import "github.com/google/uuid"

// Identity is the resolved caller context presented to the facade by the
// authentication layer: the subject's user ID plus an admin flag. The facade
// never sees raw tokens, only this value.
type Identity struct {
	SubjectID uuid.UUID
	IsAdmin   bool
}

// CanMutate reports whether the identity may mutate a resource owned by
// ownerID. Admins may mutate anything; everyone else only their own
// resources. The rule is deliberately entity-agnostic: the same check covers
// reviews (owner = author), places (owner = place owner) and user accounts
// (owner = the account itself).
func (i Identity) CanMutate(ownerID uuid.UUID) bool {
	return i.IsAdmin || i.SubjectID == ownerID
}
