package cart

import (
	"fmt"
	"strings"
	"time"

	"shoestore/internal/catalog"
	"shoestore/internal/domain"
	applog "shoestore/internal/log"
)

// Service owns one cart per session. Totals and item counts are always
// recomputed from the stored lines, never persisted as separate values.
type Service struct {
	Store   *Store
	Catalog *catalog.Catalog
}

func NewService(store *Store, cat *catalog.Catalog) *Service {
	return &Service{Store: store, Catalog: cat}
}

// Get returns a point-in-time snapshot of the session's cart. A store
// failure is logged and yields an empty cart rather than an error.
func (s *Service) Get(sessionID string) domain.Cart {
	cartID, err := s.Store.EnsureCart(sessionID)
	if err != nil {
		applog.Error(nil, "cart.load.fail", err, map[string]any{"session": sessionID})
		return emptyCart()
	}
	rows, err := s.Store.Lines(cartID)
	if err != nil {
		applog.Error(nil, "cart.load.fail", err, map[string]any{"session": sessionID})
		return emptyCart()
	}

	cart := emptyCart()
	for _, row := range rows {
		p, ok := s.Catalog.ByID(row.ProductID)
		if !ok {
			// Product no longer in the catalog; skip the stale line.
			continue
		}
		addedAt, _ := time.Parse(time.RFC3339, row.AddedAt)
		cart.Lines = append(cart.Lines, domain.CartLine{
			Product:  p,
			Quantity: row.Qty,
			Size:     row.Size,
			Color:    row.Color,
			AddedAt:  addedAt,
		})
	}
	recompute(&cart)
	return cart
}

func (s *Service) Add(sessionID, productID string, qty int, size, color string) error {
	if qty < 1 {
		qty = 1
	}
	p, ok := s.Catalog.ByID(productID)
	if !ok {
		return fmt.Errorf("unknown product %q", productID)
	}
	cartID, err := s.Store.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	return s.Store.UpsertLine(cartID, productID, size, color, qty, p.Price)
}

func (s *Service) Remove(sessionID, productID, size, color string) error {
	cartID, err := s.Store.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	return s.Store.DeleteLine(cartID, productID, size, color)
}

// SetQuantity replaces a line's quantity; qty <= 0 removes the line.
func (s *Service) SetQuantity(sessionID, productID string, qty int, size, color string) error {
	if qty <= 0 {
		return s.Remove(sessionID, productID, size, color)
	}
	cartID, err := s.Store.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	return s.Store.SetQty(cartID, productID, size, color, qty)
}

func (s *Service) Clear(sessionID string) error {
	cartID, err := s.Store.EnsureCart(sessionID)
	if err != nil {
		return err
	}
	return s.Store.Clear(cartID)
}

// Summary renders a one-line description of the cart suitable for
// embedding in a generation prompt.
func (s *Service) Summary(sessionID string) string {
	cart := s.Get(sessionID)
	if len(cart.Lines) == 0 {
		return "Cart is empty"
	}
	parts := make([]string, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		desc := fmt.Sprintf("%dx %s", line.Quantity, line.Product.Name)
		if line.Size != "" {
			desc += fmt.Sprintf(" (%s)", line.Size)
		}
		if line.Color != "" {
			desc += " - " + line.Color
		}
		parts = append(parts, desc)
	}
	return fmt.Sprintf("Cart contains: %s. Total: $%.2f", strings.Join(parts, ", "), cart.Total)
}

func emptyCart() domain.Cart {
	return domain.Cart{Lines: []domain.CartLine{}}
}

func recompute(c *domain.Cart) {
	c.Total = 0
	c.ItemCount = 0
	for _, line := range c.Lines {
		c.Total += line.Product.Price * float64(line.Quantity)
		c.ItemCount += line.Quantity
	}
}
