package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shoestore/internal/cart"
	applog "shoestore/internal/log"
	"shoestore/internal/validate"
)

type CartHandler struct {
	Cart *cart.Service
}

type cartLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	return c.JSON(h.Cart.Get(sid))
}

func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req cartLineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if _, ok := validate.ID(req.ProductID); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	if req.Quantity > 50 {
		req.Quantity = 50
	}
	if err := h.Cart.Add(sid, req.ProductID, req.Quantity, req.Size, req.Color); err != nil {
		applog.Error(c, "cart.add.fail", err, map[string]any{"product": req.ProductID})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not add item"})
	}
	applog.Audit(c, "cart.add", map[string]any{"product": req.ProductID, "qty": req.Quantity})
	return c.JSON(h.Cart.Get(sid))
}

// SetQuantity replaces a line's quantity; zero or less removes the line.
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req cartLineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if _, ok := validate.ID(req.ProductID); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	if err := h.Cart.SetQuantity(sid, req.ProductID, req.Quantity, req.Size, req.Color); err != nil {
		applog.Error(c, "cart.quantity.fail", err, map[string]any{"product": req.ProductID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not update item"})
	}
	return c.JSON(h.Cart.Get(sid))
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req cartLineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if _, ok := validate.ID(req.ProductID); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	if err := h.Cart.Remove(sid, req.ProductID, req.Size, req.Color); err != nil {
		applog.Error(c, "cart.remove.fail", err, map[string]any{"product": req.ProductID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not remove item"})
	}
	applog.Audit(c, "cart.remove", map[string]any{"product": req.ProductID})
	return c.JSON(h.Cart.Get(sid))
}

func (h *CartHandler) Clear(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if err := h.Cart.Clear(sid); err != nil {
		applog.Error(c, "cart.clear.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not clear cart"})
	}
	applog.Audit(c, "cart.clear", nil)
	return c.JSON(h.Cart.Get(sid))
}
