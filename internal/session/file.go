package session

import (
	"fmt"
	"os"
	"strings"
)

// FileStore keeps the token and the notice in two small files under
// the client's config directory. The token file survives restarts so a
// new run does not force a fresh login; the notice file is deleted on
// first read.
type FileStore struct {
	tokenPath  string
	noticePath string
}

func NewFileStore(tokenPath, noticePath string) *FileStore {
	return &FileStore{tokenPath: tokenPath, noticePath: noticePath}
}

func (s *FileStore) SaveToken(token string) error {
	if err := os.WriteFile(s.tokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}
	return nil
}

func (s *FileStore) Token() (string, bool) {
	data, err := os.ReadFile(s.tokenPath)
	if err != nil {
		return "", false
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}
	return token, true
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.tokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clearing token: %w", err)
	}
	return nil
}

func (s *FileStore) SetNotice(msg string) error {
	if err := os.WriteFile(s.noticePath, []byte(msg), 0600); err != nil {
		return fmt.Errorf("saving notice: %w", err)
	}
	return nil
}

func (s *FileStore) TakeNotice() (string, bool) {
	data, err := os.ReadFile(s.noticePath)
	if err != nil {
		return "", false
	}
	// Remove before returning so the notice cannot be shown twice,
	// even if the caller crashes between read and display.
	_ = os.Remove(s.noticePath)

	msg := strings.TrimSpace(string(data))
	if msg == "" {
		return "", false
	}
	return msg, true
}
