package models

import "time"

// Credential is one durable provider-issued session token, stored sealed.
// At most one row per user is active at a time; inserting a new active
// credential supersedes the previous ones.
type Credential struct {
	ID          string // uuid
	UserID      int64
	PhoneNumber string
	SealedBlob  string // vault-sealed session string, base64 text
	IsActive    bool
	CreatedAt   time.Time
}
