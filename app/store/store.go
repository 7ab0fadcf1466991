// Package store is the persistence layer. Handlers talk to the Store
// struct only; whether records live in process memory or in MongoDB is
// decided once at startup.
package store

import (
	"context"

	"github.com/cois1702/trio-homework-app/app/models"
)

// Doc is anything a Collection can hold.
type Doc interface {
	DocID() string
}

// Collection is a keyed set of records of one type.
//
// Insert expects the ID to be pre-assigned by the caller. Replace swaps the
// stored record for the given one and is a silent no-op when the ID is
// absent. Delete is a no-op for an absent ID and only returns an error when
// the backing store itself fails.
type Collection[T Doc] interface {
	List(ctx context.Context) ([]T, error)
	Insert(ctx context.Context, item T) error
	Replace(ctx context.Context, id string, item T) error
	Delete(ctx context.Context, id string) error
}

// SettingsStore holds the singleton school settings record. Get hands out
// models.DefaultSettings until something is saved; Update merges the patch
// and returns the result.
type SettingsStore interface {
	Get(ctx context.Context) (models.SchoolSettings, error)
	Update(ctx context.Context, patch models.SettingsPatch) (models.SchoolSettings, error)
}

// Store bundles the four record collections and the settings singleton.
type Store struct {
	Teachers      Collection[models.Teacher]
	Tasks         Collection[models.Task]
	Announcements Collection[models.Announcement]
	Uploads       Collection[models.Upload]
	Settings      SettingsStore

	// Backend names the active implementation, "memory" or "mongo".
	Backend string

	closeFn func(context.Context) error
}

func (s *Store) Close(ctx context.Context) error {
	if s.closeFn == nil {
		return nil
	}
	return s.closeFn(ctx)
}

// FindByID scans a collection snapshot for the given ID. Collections are
// small, so a linear scan over List keeps the backends swappable without a
// dedicated lookup in the contract.
func FindByID[T Doc](ctx context.Context, c Collection[T], id string) (T, bool, error) {
	var zero T
	items, err := c.List(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, item := range items {
		if item.DocID() == id {
			return item, true, nil
		}
	}
	return zero, false, nil
}
