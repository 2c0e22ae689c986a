package users

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/acadex/acadex/internal/server/models"
)

// snapshotUser is the JSON shape of a persisted identity. The password hash
// is stored alongside the record; the file is server-local and never served.
type snapshotUser struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"password"`
	CreatedAt    time.Time `json:"created_at,omitzero"`
}

// JSONFileSnapshot persists the identity list as a JSON file.
type JSONFileSnapshot struct {
	path string
}

func NewJSONFileSnapshot(path string) *JSONFileSnapshot {
	return &JSONFileSnapshot{path: path}
}

// Load reads the identity list. A missing file yields an empty list.
func (s *JSONFileSnapshot) Load() ([]*models.User, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var records []snapshotUser
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, len(records))
	for _, rec := range records {
		users = append(users, &models.User{
			ID:           rec.ID,
			Name:         rec.Name,
			Email:        rec.Email,
			Phone:        rec.Phone,
			PasswordHash: []byte(rec.PasswordHash),
			CreatedAt:    rec.CreatedAt,
		})
	}
	return users, nil
}

// Save writes the identity list, creating the parent directory if needed.
func (s *JSONFileSnapshot) Save(users []*models.User) error {
	records := make([]snapshotUser, 0, len(users))
	for _, u := range users {
		records = append(records, snapshotUser{
			ID:           u.ID,
			Name:         u.Name,
			Email:        u.Email,
			Phone:        u.Phone,
			PasswordHash: string(u.PasswordHash),
			CreatedAt:    u.CreatedAt,
		})
	}

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	return os.WriteFile(s.path, raw, 0o600)
}
