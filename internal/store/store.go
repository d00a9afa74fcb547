// Package store is the persistence gateway: plain create/read/update/list
// operations per entity, scoped by the natural foreign key. No business
// rules live here; cross-entity integrity is left to the FK constraints
// (cascade child -> recipes/interviews, SET NULL on interview.recipe_id).
package store

import "gorm.io/gorm"

type Store struct {
	db         *gorm.DB
	Users      *UserStore
	Children   *ChildStore
	Recipes    *RecipeStore
	Interviews *InterviewStore
}

func New(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		Users:      &UserStore{db: db},
		Children:   &ChildStore{db: db},
		Recipes:    &RecipeStore{db: db},
		Interviews: &InterviewStore{db: db},
	}
}

// Transaction runs fn against a Store bound to a single database
// transaction.
func (s *Store) Transaction(fn func(tx *Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
