// Package models defines the persistent row types shared by repositories
// and services.
package models

import "time"

// User identifies an end-user of the correction service. Created on first
// interaction; the session core only ever reads it.
type User struct {
	ID          int64
	Username    string
	FirstName   string
	PhoneNumber string
	CreatedAt   time.Time
	IsActive    bool
}
