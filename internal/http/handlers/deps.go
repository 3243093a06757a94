package handlers

import (
	"github.com/jmoiron/sqlx"

	"shoestore/internal/cart"
	"shoestore/internal/catalog"
	"shoestore/internal/chat"
	"shoestore/internal/config"
	"shoestore/internal/genai"
	"shoestore/internal/wishlist"
)

type Deps struct {
	ChatHandler     *ChatHandler
	CatalogHandler  *CatalogHandler
	CartHandler     *CartHandler
	WishlistHandler *WishlistHandler
	FormHandler     *FormHandler
	PageHandler     *PageHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	cat := catalog.New()
	cartSvc := cart.NewService(cart.NewStore(db), cat)
	wishSvc := wishlist.NewService(wishlist.NewStore(db), cat)

	gen := genai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
	orch := chat.NewOrchestrator(gen, cat, cartSvc, cfg.AIMode)

	return &Deps{
		ChatHandler:     &ChatHandler{Orch: orch},
		CatalogHandler:  &CatalogHandler{Catalog: cat},
		CartHandler:     &CartHandler{Cart: cartSvc},
		WishlistHandler: &WishlistHandler{Wish: wishSvc},
		FormHandler:     &FormHandler{},
		PageHandler:     &PageHandler{},
	}
}
