package domain

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Maximum lengths for user name fields.
const maxNameLength = 50

// User-specific validation errors
var (
	ErrEmptyUserID      = errors.New("user ID cannot be empty")
	ErrEmptyEmail       = errors.New("email cannot be empty")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrFirstNameTooLong = errors.New("first_name must be 50 characters or fewer")
	ErrLastNameTooLong  = errors.New("last_name must be 50 characters or fewer")
)

// User represents a registered user of the platform. A user owns zero or
// more Places and Reviews; deleting a user cascades to everything it owns.
type User struct {
	Record
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	HashedPassword string `json:"-"` // Never expose the password hash in JSON
	IsAdmin        bool   `json:"is_admin"`
}

// NewUser creates a new User with generated record metadata.
// The password is optional and must already be hashed by the caller; the
// domain never sees plaintext credentials.
// Returns an error if validation fails.
//
// Email uniqueness is intentionally NOT checked here: it depends on stored
// state and is enforced by the facade pre-check plus the storage layer's
// unique constraint.
func NewUser(firstName, lastName, email string) (*User, error) {
	user := &User{
		Record:    NewRecord(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	// Length limits count characters, not bytes, matching the max=N tags
	// on the request DTOs.
	if utf8.RuneCountInString(u.FirstName) > maxNameLength {
		return NewValidationError("first_name", "must be 50 characters or fewer", ErrFirstNameTooLong)
	}

	if utf8.RuneCountInString(u.LastName) > maxNameLength {
		return NewValidationError("last_name", "must be 50 characters or fewer", ErrLastNameTooLong)
	}

	if strings.TrimSpace(u.Email) == "" {
		return NewValidationError("email", "is required", ErrEmptyEmail)
	}

	if !validEmailFormat(u.Email) {
		return NewValidationError("email", "invalid email format", ErrInvalidEmail)
	}

	return nil
}

// validEmailFormat performs basic validation of email shape: a non-empty
// local part, an "@", and a non-empty domain part. Deliberately permissive;
// deliverability is not a domain concern.
func validEmailFormat(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
