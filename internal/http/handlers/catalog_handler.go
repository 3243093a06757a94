package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"shoestore/internal/catalog"
	"shoestore/internal/domain"
	applog "shoestore/internal/log"
	"shoestore/internal/validate"
)

type CatalogHandler struct {
	Catalog *catalog.Catalog
}

// List applies at most one filter, checked in a fixed order; with no
// filters it returns the full catalog.
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	var products []domain.Product
	switch {
	case c.Query("q") != "":
		q, ok := validate.Q(c.Query("q"))
		if !ok {
			applog.Security(c, "validation.fail", map[string]any{"field": "q"})
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "enter a valid keyword (letters/numbers only)"})
		}
		products = h.Catalog.Search(q)
	case c.Query("category") != "":
		products = h.Catalog.ByCategory(c.Query("category"))
	case c.Query("brand") != "":
		products = h.Catalog.ByBrand(c.Query("brand"))
	case c.Query("sale") == "true":
		products = h.Catalog.OnSale()
	case c.Query("min") != "" || c.Query("max") != "":
		min, okMin := validate.Price(c.Query("min"))
		if !okMin {
			min = 0
		}
		max, okMax := validate.Price(c.Query("max"))
		if !okMax {
			max = 10000
		}
		products = h.Catalog.ByPriceRange(min, max)
	default:
		products = h.Catalog.All()
	}
	return c.JSON(fiber.Map{"products": products, "count": len(products)})
}

func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid product id"})
	}
	p, found := h.Catalog.ByID(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	return c.JSON(p)
}

func (h *CatalogHandler) Brands(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"brands": h.Catalog.Brands()})
}

func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": h.Catalog.Categories()})
}

// Availability reports the stock flag for one product.
func (h *CatalogHandler) Availability(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Query("productId"))
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing productId"})
	}
	p, found := h.Catalog.ByID(id)
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	status := "OUT_OF_STOCK"
	if p.InStock {
		status = "IN_STOCK"
	}
	return c.JSON(fiber.Map{"status": status})
}
