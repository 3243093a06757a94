package wishlist

import (
	"time"

	"github.com/jmoiron/sqlx"

	"shoestore/internal/catalog"
	"shoestore/internal/domain"
)

type Store struct{ db *sqlx.DB }

func NewStore(db *sqlx.DB) *Store { return &Store{db: db} }

func (s *Store) Ensure(sessionID string) (string, error) {
	var id string
	if err := s.db.Get(&id, `SELECT id FROM wishlists WHERE session_id=?`, sessionID); err == nil {
		return id, nil
	}
	_, err := s.db.Exec(`INSERT INTO wishlists(id,session_id,updated_at) VALUES(?,?,?)`,
		sessionID, sessionID, time.Now().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

func (s *Store) Add(wishlistID, productID string) error {
	_, err := s.db.Exec(`
	  INSERT INTO wishlist_items(wishlist_id, product_id, created_at)
	  VALUES(?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(wishlist_id, product_id) DO NOTHING
	`, wishlistID, productID)
	return err
}

func (s *Store) Remove(wishlistID, productID string) error {
	_, err := s.db.Exec(`DELETE FROM wishlist_items WHERE wishlist_id=? AND product_id=?`,
		wishlistID, productID)
	return err
}

func (s *Store) ProductIDs(wishlistID string) ([]string, error) {
	var out []string
	err := s.db.Select(&out, `
	  SELECT product_id FROM wishlist_items
	  WHERE wishlist_id = ?
	  ORDER BY rowid
	`, wishlistID)
	return out, err
}

// Service keeps a per-session list of saved products; product details are
// resolved against the in-memory catalog on read.
type Service struct {
	Store   *Store
	Catalog *catalog.Catalog
}

func NewService(store *Store, cat *catalog.Catalog) *Service {
	return &Service{Store: store, Catalog: cat}
}

func (s *Service) Save(sessionID, productID string) error {
	id, err := s.Store.Ensure(sessionID)
	if err != nil {
		return err
	}
	return s.Store.Add(id, productID)
}

func (s *Service) Unsave(sessionID, productID string) error {
	id, err := s.Store.Ensure(sessionID)
	if err != nil {
		return err
	}
	return s.Store.Remove(id, productID)
}

func (s *Service) List(sessionID string) ([]domain.Product, error) {
	id, err := s.Store.Ensure(sessionID)
	if err != nil {
		return nil, err
	}
	ids, err := s.Store.ProductIDs(id)
	if err != nil {
		return nil, err
	}
	out := []domain.Product{}
	for _, pid := range ids {
		if p, ok := s.Catalog.ByID(pid); ok {
			out = append(out, p)
		}
	}
	return out, nil
}
