package repository

import (
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/online-bookstore-platform/internal/config"

	_ "github.com/lib/pq"
)

// Repositories bundles the per-aggregate repositories over one connection
// pool.
type Repositories struct {
	DB *sql.DB

	User     UserRepository
	Book     BookRepository
	Cart     CartRepository
	Wishlist WishlistRepository
	Address  AddressRepository
	Order    OrderRepository
	Review   ReviewRepository
}

func New(cfg *config.Config) (*Repositories, error) {

	db, err := sql.Open("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Test the connection to make sure DB is reachable
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Repositories{
		DB:       db,
		User:     NewUserRepo(db),
		Book:     NewBookRepo(db),
		Cart:     NewCartRepo(db),
		Wishlist: NewWishlistRepo(db),
		Address:  NewAddressRepo(db),
		Order:    NewOrderRepo(db),
		Review:   NewReviewRepo(db),
	}, nil
}

func (r *Repositories) Close() error {
	return r.DB.Close()
}
