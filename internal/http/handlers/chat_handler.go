package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"shoestore/internal/chat"
	"shoestore/internal/domain"
	applog "shoestore/internal/log"
)

type ChatHandler struct {
	Orch *chat.Orchestrator
}

type chatRequest struct {
	Message string            `json:"message"`
	History []domain.ChatTurn `json:"history"`
}

type chatResponse struct {
	domain.ResponseBundle
	Source chat.Source `json:"source"`
}

func (h *ChatHandler) Message(c *fiber.Ctx) error {
	sid := ensureSID(c)

	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing message"})
	}
	if len(msg) > 500 {
		applog.Security(c, "validation.fail", map[string]any{"field": "message", "len": len(msg)})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "message too long"})
	}

	bundle, source := h.Orch.Respond(c.Context(), sid, msg, req.History)
	applog.Info(c, "chat.message", map[string]any{"source": string(source)})
	return c.JSON(chatResponse{ResponseBundle: bundle, Source: source})
}

func (h *ChatHandler) GetMode(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"aiEnabled": h.Orch.AIEnabled()})
}

func (h *ChatHandler) SetMode(c *fiber.Ctx) error {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	h.Orch.SetAIMode(req.Enabled)
	applog.Audit(c, "chat.mode.set", map[string]any{"requested": req.Enabled, "effective": h.Orch.AIEnabled()})
	return c.JSON(fiber.Map{"aiEnabled": h.Orch.AIEnabled()})
}
