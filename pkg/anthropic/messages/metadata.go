package messages

import "github.com/google/uuid"

// Metadata describes the request for abuse detection. UserID should be an
// opaque identifier, never a name or email address.
type Metadata struct {
	UserID string `json:"user_id,omitempty"`
}

// NewMetadata creates metadata for the given external user identifier.
func NewMetadata(userID string) *Metadata {
	return &Metadata{UserID: userID}
}

// NewAnonymousMetadata creates metadata with a random opaque user
// identifier, for callers without stable per-user identifiers.
func NewAnonymousMetadata() *Metadata {
	return &Metadata{UserID: uuid.NewString()}
}
