package models

import "time"

// Role enumerates the portal account roles.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User is the portal account record. WiFiID ties the account to a
// pre-provisioned physical connection and is immutable after registration.
// PasswordHash is a bcrypt hash; the raw password is never stored.
type User struct {
	ID           string
	Email        string
	Name         string
	WiFiID       string
	PasswordHash string
	Role         Role
	Points       *PointsBalance
	CreatedAt    time.Time
}

// PointsBalance is the optional rewards balance attached to a user.
type PointsBalance struct {
	Balance int64
	Tier    string
}
