package users

import (
	"context"
	"sync"
	"time"

	"github.com/acadex/acadex/internal/common"
	"github.com/acadex/acadex/internal/server/models"
)

// Snapshot is the persistence port behind the in-memory repository: the full
// identity list is loaded once at startup and saved after every append.
type Snapshot interface {
	Load() ([]*models.User, error)
	Save(users []*models.User) error
}

// InMemoryRepository keeps the identity list in memory, optionally backed by
// a Snapshot. A single mutex serializes the uniqueness check and the append.
type InMemoryRepository struct {
	mu       sync.Mutex
	users    []*models.User
	snapshot Snapshot
}

// NewInMemoryRepository builds a repository seeded from snapshot, if one is
// given. A snapshot load failure is not fatal: the repository starts empty,
// matching a missing data file on first run.
func NewInMemoryRepository(snapshot Snapshot) *InMemoryRepository {
	r := &InMemoryRepository{snapshot: snapshot}
	if snapshot != nil {
		if users, err := snapshot.Load(); err == nil {
			r.users = users
		}
	}
	return r
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if (user.Email != "" && u.Email == user.Email) || (user.Phone != "" && u.Phone == user.Phone) {
			return nil, common.ErrorAlreadyExists
		}
	}

	var maxID int64
	for _, u := range r.users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	user.ID = maxID + 1
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	r.users = append(r.users, user)

	if r.snapshot != nil {
		if err := r.snapshot.Save(r.users); err != nil {
			// roll back the append so memory and snapshot stay consistent
			r.users = r.users[:len(r.users)-1]
			return nil, err
		}
	}

	return user, nil
}

func (r *InMemoryRepository) FindByIdentifier(ctx context.Context, email, phone string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if (email != "" && u.Email == email) || (phone != "" && u.Phone == phone) {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}
