package chat

import (
	"context"
	"sync/atomic"

	"shoestore/internal/cart"
	"shoestore/internal/catalog"
	"shoestore/internal/domain"
	applog "shoestore/internal/log"
)

// Generator is the pluggable generative backend: text in, text out. Ready
// reports whether the backend is configured at all.
type Generator interface {
	Ready() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

// Source tags which path produced a response bundle.
type Source string

const (
	SourceGenerated Source = "generated" // generator succeeded
	SourceFallback  Source = "fallback"  // generator failed, pattern engine answered
	SourcePattern   Source = "pattern"   // generative mode off
)

// Orchestrator routes a user message to the generative backend or the
// pattern responder and normalizes both outcomes into one bundle shape.
type Orchestrator struct {
	useAI     atomic.Bool
	gen       Generator
	catalog   *catalog.Catalog
	cart      *cart.Service
	responder *Responder
}

func NewOrchestrator(gen Generator, cat *catalog.Catalog, cartSvc *cart.Service, useAI bool) *Orchestrator {
	o := &Orchestrator{
		gen:       gen,
		catalog:   cat,
		cart:      cartSvc,
		responder: NewResponder(cat),
	}
	if useAI && !gen.Ready() {
		applog.Security(nil, "chat.ai.unconfigured", map[string]any{
			"detail": "AI mode requested but generator not configured, using pattern matching",
		})
	}
	o.useAI.Store(useAI && gen.Ready())
	return o
}

// SetAIMode toggles generative mode for subsequent calls. In-flight
// requests keep the mode they started with.
func (o *Orchestrator) SetAIMode(enabled bool) {
	o.useAI.Store(enabled && o.gen.Ready())
}

func (o *Orchestrator) AIEnabled() bool {
	return o.useAI.Load() && o.gen.Ready()
}

// Respond produces the bundle for one user message. In generative mode a
// backend failure falls back to the pattern engine for this turn only.
func (o *Orchestrator) Respond(ctx context.Context, sessionID, message string, history []domain.ChatTurn) (domain.ResponseBundle, Source) {
	if !o.AIEnabled() {
		return o.responder.Respond(message), SourcePattern
	}

	prompt := BuildPrompt(o.catalog, history, o.cart.Summary(sessionID), message)
	text, err := o.gen.Generate(ctx, prompt)
	if err != nil || text == "" {
		applog.Error(nil, "chat.generate.fail", err, nil)
		return o.responder.Respond(message), SourceFallback
	}

	return o.assemble(sessionID, text), SourceGenerated
}

// assemble extracts directives from generated text and performs the side
// effects they imply.
func (o *Orchestrator) assemble(sessionID, text string) domain.ResponseBundle {
	d, cleaned := ExtractDirectives(text)

	bundle := domain.ResponseBundle{
		Text:         cleaned,
		QuickReplies: d.QuickReplies,
		ShouldSpeak:  true,
	}
	if bundle.Text == "" {
		bundle.Text = "I'd be happy to help you find the perfect shoes!"
	}

	// Unresolvable product ids are dropped, not surfaced.
	for _, id := range d.ProductIDs {
		if p, ok := o.catalog.ByID(id); ok {
			bundle.Products = append(bundle.Products, p)
		}
	}

	if d.FormName != "" {
		if form, ok := FormTemplate(d.FormName); ok {
			bundle.Form = &form
		} else {
			applog.Security(nil, "chat.form.unknown", map[string]any{"type": d.FormName})
		}
	}

	if d.ShowCart {
		snapshot := o.cart.Get(sessionID)
		bundle.Cart = &snapshot
	}

	if d.AddToCart != nil {
		if _, ok := o.catalog.ByID(d.AddToCart.ProductID); ok {
			if err := o.cart.Add(sessionID, d.AddToCart.ProductID, 1, d.AddToCart.Size, d.AddToCart.Color); err != nil {
				applog.Error(nil, "chat.cart.add.fail", err, map[string]any{"product": d.AddToCart.ProductID})
			}
			// Fresh snapshot after the add, whether or not SHOW_CART was present.
			snapshot := o.cart.Get(sessionID)
			bundle.Cart = &snapshot
		}
	}

	return bundle
}
