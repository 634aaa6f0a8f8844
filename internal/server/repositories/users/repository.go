// Package users implements the credential store. Uniqueness of email and
// WiFi ID is enforced at creation time: concurrent duplicate registrations
// resolve to exactly one winner, the loser observes a conflict error.
package users

import (
	"context"
	"database/sql"

	"github.com/samuelnapitupulu18/NusaCare/internal/server/models"
)

// DBTX is the subset of database/sql used by the postgres repository.
// Satisfied by *sql.DB and *sql.Tx.
type DBTX interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type Repository interface {
	// Create persists a new user and returns it with the assigned ID.
	// Fails with common.ErrorEmailTaken or common.ErrorWiFiIDTaken on
	// uniqueness violations.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given email or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByWiFiID returns the user with the given WiFi ID or common.ErrorNotFound.
	GetByWiFiID(ctx context.Context, wifiID string) (*models.User, error)
}
