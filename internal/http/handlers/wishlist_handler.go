package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "shoestore/internal/log"
	"shoestore/internal/validate"
	"shoestore/internal/wishlist"
)

type WishlistHandler struct {
	Wish *wishlist.Service
}

func (h *WishlistHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	items, err := h.Wish.List(sid)
	if err != nil {
		applog.Error(c, "wishlist.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not load wishlist"})
	}
	return c.JSON(fiber.Map{"items": items})
}

func (h *WishlistHandler) Save(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if _, ok := validate.ID(req.ProductID); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	if err := h.Wish.Save(sid, req.ProductID); err != nil {
		applog.Error(c, "wishlist.save.fail", err, map[string]any{"product": req.ProductID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not save item"})
	}
	applog.Audit(c, "wishlist.save", map[string]any{"product": req.ProductID})
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *WishlistHandler) Unsave(c *fiber.Ctx) error {
	sid := ensureSID(c)
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if _, ok := validate.ID(req.ProductID); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	if err := h.Wish.Unsave(sid, req.ProductID); err != nil {
		applog.Error(c, "wishlist.unsave.fail", err, map[string]any{"product": req.ProductID})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "could not unsave item"})
	}
	applog.Audit(c, "wishlist.unsave", map[string]any{"product": req.ProductID})
	return c.SendStatus(fiber.StatusNoContent)
}
