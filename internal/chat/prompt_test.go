package chat_test

import (
	"fmt"
	"strings"
	"testing"

	"shoestore/internal/catalog"
	"shoestore/internal/chat"
	"shoestore/internal/domain"
)

func TestBuildPromptSections(t *testing.T) {
	cat := catalog.New()
	p := chat.BuildPrompt(cat, nil, "Cart is empty", "any trail shoes?")
	if !strings.Contains(p, "PRODUCT CATALOGUE:") {
		t.Fatal("catalog section missing")
	}
	if !strings.Contains(p, `"Speedcross 5"`) {
		t.Fatal("catalog products missing")
	}
	if !strings.Contains(p, "CURRENT CART: Cart is empty") {
		t.Fatal("cart summary missing")
	}
	if !strings.Contains(p, "CURRENT USER QUESTION: any trail shoes?") {
		t.Fatal("user message missing")
	}
	if strings.Contains(p, "CONVERSATION SUMMARY:") {
		t.Fatal("history section present without history")
	}
}

func TestBuildPromptBoundsHistory(t *testing.T) {
	cat := catalog.New()
	var history []domain.ChatTurn
	for i := 0; i < 25; i++ {
		history = append(history, domain.ChatTurn{Role: "user", Content: fmt.Sprintf("turn %d", i)})
	}
	p := chat.BuildPrompt(cat, history, "", "hello")
	if strings.Contains(p, "turn 14") {
		t.Fatal("old turns must be dropped")
	}
	if !strings.Contains(p, "turn 15") || !strings.Contains(p, "turn 24") {
		t.Fatal("recent turns must be kept")
	}
}

func TestBuildPromptRoleLabels(t *testing.T) {
	cat := catalog.New()
	history := []domain.ChatTurn{
		{Role: "user", Content: "hi"},
		{Role: "bot", Content: "Hello!"},
	}
	p := chat.BuildPrompt(cat, history, "", "ok")
	if !strings.Contains(p, "User: hi") || !strings.Contains(p, "Assistant: Hello!") {
		t.Fatalf("role labels wrong:\n%s", p)
	}
}
