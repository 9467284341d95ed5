// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core identity in the system. ID doubles as the token
// subject: it is the only value a validated credential resolves to.
type User struct {
	ID        int64     // Primary key; mirrored into token claims as the subject identifier.
	Username  string    // Unique human-readable handle, used for profile lookups.
	Email     string    // Unique login identifier.
	Password  string    // Credential hash (self-describing PHC string); never a plaintext.
	Bio       string    // Free-form profile text.
	Image     string    // Avatar URL.
	CreatedAt time.Time // Timestamp of when this account was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}
