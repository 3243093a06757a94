package chat_test

import (
	"strings"
	"testing"

	"shoestore/internal/catalog"
	"shoestore/internal/chat"
)

func newResponder() *chat.Responder {
	return chat.NewResponder(catalog.New())
}

func TestRespondGreeting(t *testing.T) {
	r := newResponder()
	b := r.Respond("Hello there")
	if !strings.HasPrefix(b.Text, "Hello! Welcome to ShoeStore.") {
		t.Fatalf("text = %q", b.Text)
	}
	if len(b.Products) != 0 {
		t.Fatalf("greeting should carry no products, got %d", len(b.Products))
	}
	if len(b.QuickReplies) != 4 {
		t.Fatalf("quick replies = %v", b.QuickReplies)
	}
	if !b.ShouldSpeak {
		t.Fatal("ShouldSpeak not set")
	}
}

func TestRespondSale(t *testing.T) {
	b := newResponder().Respond("what's on sale?")
	if len(b.Products) != 3 {
		t.Fatalf("sale products = %d", len(b.Products))
	}
	for _, p := range b.Products {
		if !p.OnSale() {
			t.Fatalf("product %s not on sale", p.ID)
		}
	}
}

func TestRespondCategoryBeforeBrand(t *testing.T) {
	// "nike running shoes" mentions both; the category branch runs first.
	b := newResponder().Respond("nike running shoes")
	if !strings.Contains(b.Text, "running shoes") {
		t.Fatalf("text = %q", b.Text)
	}
	for _, p := range b.Products {
		if p.Category != "running" {
			t.Fatalf("non-running product %s in category response", p.ID)
		}
	}
}

func TestRespondBrand(t *testing.T) {
	b := newResponder().Respond("show me new balance")
	if !strings.Contains(b.Text, "New Balance") {
		t.Fatalf("text = %q", b.Text)
	}
	if len(b.Products) != 2 {
		t.Fatalf("want 2 New Balance shoes, got %d", len(b.Products))
	}
}

func TestRespondUnderPrice(t *testing.T) {
	b := newResponder().Respond("shoes under $100")
	if !strings.Contains(b.Text, "under $100") {
		t.Fatalf("text = %q", b.Text)
	}
	for _, p := range b.Products {
		if p.Price > 100 {
			t.Fatalf("product %s over budget at %.0f", p.ID, p.Price)
		}
	}
	if len(b.Products) == 0 {
		t.Fatal("expected matches under $100")
	}
}

func TestRespondPriceRange(t *testing.T) {
	b := newResponder().Respond("shoes between $80 and $150?")
	for _, p := range b.Products {
		if p.Price < 80 || p.Price > 150 {
			t.Fatalf("product %s outside range at %.0f", p.ID, p.Price)
		}
	}
	if len(b.Products) == 0 {
		t.Fatal("expected matches in range")
	}
}

func TestRespondAllBrands(t *testing.T) {
	b := newResponder().Respond("what brands do you carry?")
	if !strings.Contains(b.Text, "Nike") || !strings.Contains(b.Text, "Salomon") {
		t.Fatalf("text = %q", b.Text)
	}
	if len(b.QuickReplies) != 4 {
		t.Fatalf("quick replies capped at 4, got %v", b.QuickReplies)
	}
}

func TestRespondBestRated(t *testing.T) {
	b := newResponder().Respond("what's your best shoe?")
	if len(b.Products) != 6 {
		t.Fatalf("want 6, got %d", len(b.Products))
	}
	if b.Products[0].ID != "10" {
		t.Fatalf("top product = %s", b.Products[0].ID)
	}
}

func TestRespondSizeWithNumber(t *testing.T) {
	b := newResponder().Respond("do you have size 13?")
	if !strings.Contains(b.Text, "size 13") {
		t.Fatalf("text = %q", b.Text)
	}
	if len(b.Products) != 1 || b.Products[0].ID != "2" {
		t.Fatalf("products = %+v", b.Products)
	}
}

func TestRespondSizeWithoutNumberAsks(t *testing.T) {
	b := newResponder().Respond("what sizes do you have?")
	if !strings.Contains(b.Text, "What size are you looking for?") {
		t.Fatalf("text = %q", b.Text)
	}
	if len(b.Products) != 0 {
		t.Fatal("clarifying question should carry no products")
	}
}

func TestRespondColor(t *testing.T) {
	b := newResponder().Respond("show me navy color shoes")
	if !strings.Contains(b.Text, "Navy") {
		t.Fatalf("text = %q", b.Text)
	}
	if len(b.Products) == 0 {
		t.Fatal("expected navy matches")
	}
}

func TestRespondInStockCapsDisplay(t *testing.T) {
	b := newResponder().Respond("what's in stock?")
	if !strings.Contains(b.Text, "11 shoes in stock") {
		t.Fatalf("text = %q", b.Text)
	}
	if len(b.Products) != 6 {
		t.Fatalf("display capped at 6, got %d", len(b.Products))
	}
}

func TestRespondFreeTextSearch(t *testing.T) {
	b := newResponder().Respond("Gel-Kayano")
	if len(b.Products) != 1 || b.Products[0].ID != "6" {
		t.Fatalf("products = %+v", b.Products)
	}
}

func TestRespondFallback(t *testing.T) {
	b := newResponder().Respond("xyzzy plugh")
	if !strings.HasPrefix(b.Text, "I'm not sure I understood that.") {
		t.Fatalf("text = %q", b.Text)
	}
	if len(b.QuickReplies) != 4 {
		t.Fatalf("quick replies = %v", b.QuickReplies)
	}
}

func TestRespondDeterministic(t *testing.T) {
	r := newResponder()
	a := r.Respond("show me adidas")
	b := r.Respond("show me adidas")
	if a.Text != b.Text || len(a.Products) != len(b.Products) {
		t.Fatal("same input must produce same response")
	}
}
