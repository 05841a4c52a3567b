// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// DefaultUserName is the last fallback when an identity payload carries no usable name.
const DefaultUserName = "User"

// User is the identity anchor. Its ID is issued by the external auth provider.
type User struct {
	ID        string // External identity provider user ID.
	Email     string // Primary email address.
	Name      string // Display name.
	CreatedAt time.Time
	UpdatedAt time.Time
}
