package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/cookmate/backend/internal/store"
)

type gormTransactor struct {
	db        *gorm.DB
	favorites *store.FavoriteStore
	ratings   *store.RatingStore
}

// NewTransactor runs TxFuncs inside a gorm transaction with both stores bound to it.
func NewTransactor(db *gorm.DB, favorites *store.FavoriteStore, ratings *store.RatingStore) Transactor {
	return &gormTransactor{db: db, favorites: favorites, ratings: ratings}
}

func (t *gormTransactor) InTx(ctx context.Context, fn TxFunc) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(t.favorites.WithTx(tx), t.ratings.WithTx(tx))
	})
}
