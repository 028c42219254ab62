package types

import (
	"github.com/google/uuid"
)

// GroupID represents a directory group identifier
type GroupID string

// String returns the string representation
func (id GroupID) String() string {
	return string(id)
}

// AccountID represents the stable external identifier of a directory account
type AccountID string

// String returns the string representation
func (id AccountID) String() string {
	return string(id)
}

// CacheID represents a local cache entry identifier
type CacheID string

// String returns the string representation
func (id CacheID) String() string {
	return string(id)
}

// NewCacheID creates a new CacheID
func NewCacheID() CacheID {
	return CacheID(uuid.New().String())
}

// AccessToken represents an opaque directory API credential
type AccessToken string

// String returns the string representation
func (t AccessToken) String() string {
	return string(t)
}

// IsEmpty reports whether no token is present
func (t AccessToken) IsEmpty() bool {
	return t == ""
}
