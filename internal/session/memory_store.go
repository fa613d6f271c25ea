package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go-storefront/internal/models"
)

// MemoryStore keeps JSON snapshots so callers never share a *Cart.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string][]byte),
	}
}

func (s *MemoryStore) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	if sessionID == "" {
		return nil, ErrEmptySessionID
	}

	s.mu.RLock()
	data, exists := s.carts[sessionID]
	s.mu.RUnlock()

	cart := models.NewCart()
	if !exists {
		return cart, nil
	}
	if err := json.Unmarshal(data, cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart for session %s: %w", sessionID, err)
	}
	return cart, nil
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, cart *models.Cart) error {
	if sessionID == "" {
		return ErrEmptySessionID
	}
	if cart == nil {
		return fmt.Errorf("cannot save nil cart for session %s", sessionID)
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart for session %s: %w", sessionID, err)
	}

	s.mu.Lock()
	s.carts[sessionID] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}
