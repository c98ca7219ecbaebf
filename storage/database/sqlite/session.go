package sqlitedb

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/trezcool/examdesk/core/user"
)

// sessionKey is the fixed key of the current actor's slot.
const sessionKey = "currentUser"

type sessionSlot struct {
	SlotKey   string `gorm:"primaryKey"`
	Version   int
	Data      string // JSON encoded user.SessionRecord
	UpdatedAt time.Time
}

type sessionStore struct {
	db *gorm.DB
}

func NewSessionStore(db *gorm.DB) user.SessionStore {
	return &sessionStore{db: db}
}

// LoadSession returns user.ErrNoSession when the slot is empty or holds a record of another version.
func (s *sessionStore) LoadSession() (user.User, error) {
	var slot sessionSlot
	if err := s.db.First(&slot, "slot_key = ?", sessionKey).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, user.ErrNoSession
		}
		return user.User{}, errors.Wrap(err, "loading session")
	}
	if slot.Version != user.SessionVersion {
		return user.User{}, user.ErrNoSession
	}

	var rec user.SessionRecord
	if err := json.Unmarshal([]byte(slot.Data), &rec); err != nil {
		return user.User{}, errors.Wrap(err, "decoding session")
	}
	return rec.User, nil
}

func (s *sessionStore) SaveSession(usr user.User) error {
	data, err := json.Marshal(user.SessionRecord{Version: user.SessionVersion, User: usr})
	if err != nil {
		return errors.Wrap(err, "encoding session")
	}
	slot := sessionSlot{
		SlotKey: sessionKey,
		Version: user.SessionVersion,
		Data:    string(data),
	}
	if err = s.db.Save(&slot).Error; err != nil {
		return errors.Wrap(err, "saving session")
	}
	return nil
}

func (s *sessionStore) ClearSession() error {
	if err := s.db.Delete(&sessionSlot{}, "slot_key = ?", sessionKey).Error; err != nil {
		return errors.Wrap(err, "clearing session")
	}
	return nil
}
