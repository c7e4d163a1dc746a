package models

const (
	DefaultMinMessageLength = 10

	// Bounds enforced at the edit interface, not on stored rows.
	MinMessageLengthFloor   = 5
	MinMessageLengthCeiling = 100
)

// UserSettings is the per-user correction policy. Created with defaults on
// first access, never deleted. Extra holds open-ended named settings kept as
// a JSON document in storage.
type UserSettings struct {
	UserID             int64
	AutoCorrectEnabled bool
	MinMessageLength   int
	Extra              map[string]any
}

// DefaultSettings returns the policy applied on first access.
func DefaultSettings(userID int64) *UserSettings {
	return &UserSettings{
		UserID:             userID,
		AutoCorrectEnabled: true,
		MinMessageLength:   DefaultMinMessageLength,
		Extra:              map[string]any{},
	}
}
