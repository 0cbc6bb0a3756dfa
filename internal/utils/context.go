// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for carrying the vault owner through a context.Context and
// for generating item identifiers.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OwnerIDCtxKey is the key used to store the vault owner identifier in the
// context. Every vault item operation is scoped to this owner.
//
// Prefer WithOwnerID over writing the value directly.
var OwnerIDCtxKey = contextKey("ownerID")

// WithOwnerID returns a copy of ctx carrying ownerID.
func WithOwnerID(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, OwnerIDCtxKey, ownerID)
}

// GetOwnerIDFromContext retrieves the vault owner identifier from the context.
//
// Returns the owner ID and an ok flag:
//   - ok == true  — a non-empty string value is present
//   - ok == false — value is missing, empty or has an unexpected type
//
// Example usage:
//
//	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
//	if !ok {
//	    // handle missing owner in context
//	}
func GetOwnerIDFromContext(ctx context.Context) (string, bool) {
	ownerID, ok := ctx.Value(OwnerIDCtxKey).(string)
	if !ok || ownerID == "" {
		return "", false
	}
	return ownerID, true
}
