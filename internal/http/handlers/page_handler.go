package handlers

import "github.com/gofiber/fiber/v2"

type PageHandler struct{}

// Chat renders the chat page shell; the page talks to the JSON API.
func (h *PageHandler) Chat(c *fiber.Ctx) error {
	ensureSID(c)
	return c.Render("chat", fiber.Map{"Title": "ShoeStore Assistant"})
}
