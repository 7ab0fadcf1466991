package store

import (
	"context"
	"sync"

	"github.com/cois1702/trio-homework-app/app/models"
)

// NewMemory returns a Store backed by in-process slices. Nothing survives a
// restart. Each collection carries its own mutex so concurrent requests
// stay safe on a preemptive runtime.
func NewMemory() *Store {
	return &Store{
		Teachers:      &memoryCollection[models.Teacher]{},
		Tasks:         &memoryCollection[models.Task]{},
		Announcements: &memoryCollection[models.Announcement]{},
		Uploads:       &memoryCollection[models.Upload]{},
		Settings:      &memorySettings{},
		Backend:       "memory",
	}
}

type memoryCollection[T Doc] struct {
	mu    sync.Mutex
	items []T
}

func (m *memoryCollection[T]) List(context.Context) ([]T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *memoryCollection[T]) Insert(_ context.Context, item T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, item)
	return nil
}

func (m *memoryCollection[T]) Replace(_ context.Context, id string, item T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].DocID() == id {
			m.items[i] = item
			return nil
		}
	}
	return nil
}

func (m *memoryCollection[T]) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].DocID() == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type memorySettings struct {
	mu       sync.Mutex
	settings models.SchoolSettings
	saved    bool
}

func (m *memorySettings) Get(context.Context) (models.SchoolSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved {
		m.settings = models.DefaultSettings()
		m.saved = true
	}
	return m.settings, nil
}

func (m *memorySettings) Update(_ context.Context, patch models.SettingsPatch) (models.SchoolSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.saved {
		m.settings = models.DefaultSettings()
		m.saved = true
	}
	m.settings = m.settings.Apply(patch)
	return m.settings, nil
}
