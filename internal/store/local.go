package store

import (
	"encoding/json"

	"github.com/gofrs/uuid/v5"

	"github.com/fadhilah/ramadhancare/internal/model"
)

// Local-only state: reminder settings and chat history. These never touch
// the remote backend and survive sign-out.

// UpdateReminderSettings merges the update into the settings singleton and
// persists it on the device.
func (s *Store) UpdateReminderSettings(upd model.SettingsUpdate) error {
	s.mu.Lock()
	upd.Apply(&s.reminderSettings)
	snapshot := s.reminderSettings
	s.mu.Unlock()
	return s.persistLocal(settingsKey, snapshot)
}

// AddChatMessage appends a message to the local conversation history.
func (s *Store) AddChatMessage(role model.ChatRole, content string) (*model.ChatMessage, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	msg := model.ChatMessage{ID: id, Role: role, Content: content, Timestamp: s.now()}

	s.mu.Lock()
	s.chatHistory = append(s.chatHistory, msg)
	snapshot := append([]model.ChatMessage(nil), s.chatHistory...)
	s.mu.Unlock()

	if err := s.persistLocal(chatKey, snapshot); err != nil {
		return nil, err
	}
	return &msg, nil
}

// ClearChatHistory drops the conversation on demand.
func (s *Store) ClearChatHistory() error {
	s.mu.Lock()
	s.chatHistory = nil
	s.mu.Unlock()
	return s.persistLocal(chatKey, []model.ChatMessage{})
}

func (s *Store) persistLocal(key string, v any) error {
	if s.local == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.local.Put(key, raw)
}
