// Package user defines the validated, immutable user record and the result
// type returned by store operations.
package user

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// ErrInvalidEmail matches every *ValidationError via errors.Is.
var ErrInvalidEmail = errors.New("invalid email")

// ValidationError reports an email that does not match the required pattern.
type ValidationError struct {
	Email string
}

func (e *ValidationError) Error() string {
	return "Invalid email: " + e.Email
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidEmail
}

// ErrInvalidRole matches every *RoleError via errors.Is.
var ErrInvalidRole = errors.New("invalid role")

// RoleError reports a role outside the declared set.
type RoleError struct {
	Role Role
}

func (e *RoleError) Error() string {
	return "Invalid role: " + string(e.Role)
}

func (e *RoleError) Is(target error) bool {
	return target == ErrInvalidRole
}

// ValidEmail reports whether email has the local@domain.suffix shape.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// User is a single user record. The zero value is not a valid record; build
// one with New. Fields cannot be changed after construction.
type User struct {
	id        int
	name      string
	email     string
	role      Role
	active    bool
	createdAt time.Time
}

// New returns a User, a *ValidationError when email is malformed, or a
// *RoleError when role is not one of Roles. Email is checked first.
func New(id int, name, email string, role Role, active bool, createdAt time.Time) (User, error) {
	if !ValidEmail(email) {
		return User{}, &ValidationError{Email: email}
	}
	if !role.Valid() {
		return User{}, &RoleError{Role: role}
	}
	return User{
		id:        id,
		name:      name,
		email:     email,
		role:      role,
		active:    active,
		createdAt: createdAt,
	}, nil
}

func (u User) ID() int { return u.id }
func (u User) Name() string { return u.name }
func (u User) Email() string { return u.email }
func (u User) Role() Role { return u.role }
func (u User) Active() bool { return u.active }
func (u User) CreatedAt() time.Time { return u.createdAt }

// IsAdmin reports whether u holds RoleAdmin.
func (u User) IsAdmin() bool { return u.role == RoleAdmin }

func (u User) String() string {
	return fmt.Sprintf("User #%d: %s (%s) - %s", u.id, u.name, u.email, u.role)
}
