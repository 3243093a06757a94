package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"shoestore/internal/chat"
	applog "shoestore/internal/log"
)

type FormHandler struct{}

// Get returns the canonical template for a form kind.
func (h *FormHandler) Get(c *fiber.Ctx) error {
	kind := strings.ToUpper(c.Params("kind"))
	form, ok := chat.FormTemplate(kind)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown form type"})
	}
	return c.JSON(form)
}

// Submit validates submitted values against the template's fields and
// returns the confirmation message; invalid fields come back as a map of
// field id to error.
func (h *FormHandler) Submit(c *fiber.Ctx) error {
	kind := strings.ToUpper(c.Params("kind"))
	form, ok := chat.FormTemplate(kind)
	if !ok {
		applog.Security(c, "form.unknown", map[string]any{"type": kind})
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown form type"})
	}

	var req struct {
		Values map[string]string `json:"values"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if errs := chat.ValidateSubmission(form, req.Values); len(errs) > 0 {
		applog.Security(c, "form.validation.fail", map[string]any{"type": kind, "fields": len(errs)})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	applog.Audit(c, "form.submit", map[string]any{"type": kind})
	return c.JSON(fiber.Map{"message": chat.FormConfirmation(kind)})
}
