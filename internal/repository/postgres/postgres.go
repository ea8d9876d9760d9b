package postgres

import (
	"database/sql"

	"carrental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CarRepository
	repository.RentalRepository
	repository.AccountRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		CarRepository:     NewCarRepository(db),
		RentalRepository:  NewRentalRepository(db),
		AccountRepository: NewAccountRepository(db),
	}
}
