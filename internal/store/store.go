package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound signals that a referenced entity does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict signals a uniqueness violation (duplicate email or
	// duplicate membership pair).
	ErrConflict = errors.New("record already exists")
)

// Store bundles the per-entity stores over one shared connection.
type Store struct {
	Users       *Users
	Plans       *Plans
	Memberships *Memberships
	Events      *Events
	Runs        *Runs
}

func New(db *gorm.DB) *Store {
	return &Store{
		Users:       &Users{db: db},
		Plans:       &Plans{db: db},
		Memberships: &Memberships{db: db},
		Events:      &Events{db: db},
		Runs:        &Runs{db: db},
	}
}

// translate maps GORM errors onto the store's sentinel errors. Requires the
// connection to be opened with TranslateError so unique-index violations
// surface as gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}
