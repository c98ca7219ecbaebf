package inmemdb

import (
	"sync"

	"github.com/trezcool/examdesk/core/user"
)

// sessionStore keeps the session slot in memory; it does not survive restarts.
type sessionStore struct {
	mutex  sync.RWMutex
	record *user.SessionRecord
}

func NewSessionStore() user.SessionStore {
	return new(sessionStore)
}

func (s *sessionStore) LoadSession() (user.User, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.record == nil || s.record.Version != user.SessionVersion {
		return user.User{}, user.ErrNoSession
	}
	return s.record.User, nil
}

func (s *sessionStore) SaveSession(usr user.User) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.record = &user.SessionRecord{Version: user.SessionVersion, User: usr}
	return nil
}

func (s *sessionStore) ClearSession() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.record = nil
	return nil
}
