package cart

import (
	"time"

	"github.com/jmoiron/sqlx"
)

type Store struct{ db *sqlx.DB }

func NewStore(db *sqlx.DB) *Store { return &Store{db: db} }

type LineRow struct {
	ProductID  string  `db:"product_id"`
	Size       string  `db:"size"`
	Color      string  `db:"color"`
	Qty        int     `db:"qty"`
	PriceAtAdd float64 `db:"price_at_add"`
	AddedAt    string  `db:"added_at"`
}

func (s *Store) EnsureCart(sessionID string) (string, error) {
	var cartID string
	if err := s.db.Get(&cartID, `SELECT id FROM carts WHERE session_id = ?`, sessionID); err == nil {
		return cartID, nil
	}
	_, err := s.db.Exec(`INSERT INTO carts(id,session_id,updated_at) VALUES(?,?,?)`,
		sessionID, sessionID, time.Now().Format(time.RFC3339))
	if err != nil {
		return "", err
	}
	return sessionID, nil
}

func (s *Store) UpsertLine(cartID, productID, size, color string, qty int, price float64) error {
	_, err := s.db.Exec(`
		INSERT INTO cart_lines(cart_id,product_id,size,color,qty,price_at_add,added_at)
		VALUES(?,?,?,?,?,?,?)
		ON CONFLICT(cart_id,product_id,size,color) DO UPDATE
		SET qty = cart_lines.qty + excluded.qty, updated_at = CURRENT_TIMESTAMP
	`, cartID, productID, size, color, qty, price, time.Now().UTC().Format(time.RFC3339))
	return err
}

func (s *Store) SetQty(cartID, productID, size, color string, qty int) error {
	_, err := s.db.Exec(`
		UPDATE cart_lines SET qty = ?, updated_at = CURRENT_TIMESTAMP
		WHERE cart_id = ? AND product_id = ? AND size = ? AND color = ?
	`, qty, cartID, productID, size, color)
	return err
}

func (s *Store) DeleteLine(cartID, productID, size, color string) error {
	_, err := s.db.Exec(`
		DELETE FROM cart_lines
		WHERE cart_id = ? AND product_id = ? AND size = ? AND color = ?
	`, cartID, productID, size, color)
	return err
}

func (s *Store) Lines(cartID string) ([]LineRow, error) {
	rows := []LineRow{}
	err := s.db.Select(&rows, `
	  SELECT product_id, size, color, qty, price_at_add, COALESCE(added_at,'') AS added_at
	  FROM cart_lines
	  WHERE cart_id = ?
	  ORDER BY rowid
	`, cartID)
	return rows, err
}

func (s *Store) Clear(cartID string) error {
	_, err := s.db.Exec(`DELETE FROM cart_lines WHERE cart_id = ?`, cartID)
	return err
}
