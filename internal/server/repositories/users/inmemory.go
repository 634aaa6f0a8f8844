package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samuelnapitupulu18/NusaCare/internal/common"
	"github.com/samuelnapitupulu18/NusaCare/internal/server/models"
)

// InMemoryRepository backs dev mode and tests. The mutex makes the
// check-and-insert in Create atomic under concurrent registrations.
type InMemoryRepository struct {
	mu       sync.RWMutex
	byEmail  map[string]*models.User
	byWiFiID map[string]*models.User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byEmail:  make(map[string]*models.User),
		byWiFiID: make(map[string]*models.User),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrorEmailTaken
	}
	if _, ok := r.byWiFiID[user.WiFiID]; ok {
		return nil, common.ErrorWiFiIDTaken
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()

	r.byEmail[stored.Email] = &stored
	r.byWiFiID[stored.WiFiID] = &stored

	result := stored
	return &result, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	result := *user
	return &result, nil
}

func (r *InMemoryRepository) GetByWiFiID(ctx context.Context, wifiID string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byWiFiID[wifiID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	result := *user
	return &result, nil
}

// Count returns the number of stored users. Used by tests to assert that
// failed registrations do not change store cardinality.
func (r *InMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEmail)
}
