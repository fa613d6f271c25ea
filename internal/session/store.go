package session

import (
	"context"
	"errors"

	"go-storefront/internal/models"
)

var ErrEmptySessionID = errors.New("session id is empty")

// CartStore keeps one cart per browser session.
type CartStore interface {
	// Load returns a new empty cart when nothing is stored for sessionID.
	Load(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, sessionID string, cart *models.Cart) error
	Delete(ctx context.Context, sessionID string) error
	Ping(ctx context.Context) error
}
