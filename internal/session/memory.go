package session

import "sync"

// MemStore is an in-memory Store. It backs tests and any front end
// that should not leave a token on disk.
type MemStore struct {
	mu     sync.Mutex
	token  string
	notice string
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) SaveToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", false
	}
	return s.token, true
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}

func (s *MemStore) SetNotice(msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = msg
	return nil
}

func (s *MemStore) TakeNotice() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg := s.notice
	s.notice = ""
	if msg == "" {
		return "", false
	}
	return msg, true
}
