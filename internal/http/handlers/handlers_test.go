package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"shoestore/internal/config"
	"shoestore/internal/http/handlers"
	"shoestore/internal/storage"
)

// testApp wires the API routes over an in-memory database. The generator
// is unconfigured, so chat runs in pattern mode.
func testApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := storage.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	deps := handlers.NewDeps(db, config.Config{})

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Post("/chat", deps.ChatHandler.Message)
	api.Get("/chat/mode", deps.ChatHandler.GetMode)
	api.Post("/chat/mode", deps.ChatHandler.SetMode)
	api.Get("/products", deps.CatalogHandler.List)
	api.Get("/products/:id", deps.CatalogHandler.Get)
	api.Get("/brands", deps.CatalogHandler.Brands)
	api.Get("/categories", deps.CatalogHandler.Categories)
	api.Get("/availability", deps.CatalogHandler.Availability)
	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart/items", deps.CartHandler.Add)
	api.Post("/cart/items/quantity", deps.CartHandler.SetQuantity)
	api.Post("/cart/items/remove", deps.CartHandler.Remove)
	api.Post("/cart/clear", deps.CartHandler.Clear)
	api.Get("/wishlist", deps.WishlistHandler.List)
	api.Post("/wishlist", deps.WishlistHandler.Save)
	api.Post("/wishlist/delete", deps.WishlistHandler.Unsave)
	api.Get("/forms/:kind", deps.FormHandler.Get)
	api.Post("/forms/:kind", deps.FormHandler.Submit)
	return app
}

func jsonReq(method, path string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == "sid" {
			return ck
		}
	}
	return nil
}

func TestChatEndpointPatternMode(t *testing.T) {
	app := testApp(t)
	resp, err := app.Test(jsonReq("POST", "/api/v1/chat", fiber.Map{"message": "hello"}))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var body struct {
		Text         string   `json:"text"`
		QuickReplies []string `json:"quickReplies"`
		ShouldSpeak  bool     `json:"shouldSpeak"`
		Source       string   `json:"source"`
	}
	decode(t, resp, &body)
	if body.Source != "pattern" {
		t.Fatalf("source = %q", body.Source)
	}
	if !strings.HasPrefix(body.Text, "Hello! Welcome to ShoeStore.") {
		t.Fatalf("text = %q", body.Text)
	}
	if len(body.QuickReplies) != 4 || !body.ShouldSpeak {
		t.Fatalf("body = %+v", body)
	}
	if sessionCookie(resp) == nil {
		t.Fatal("chat should mint a session cookie")
	}
}

func TestChatEndpointRejectsEmptyMessage(t *testing.T) {
	app := testApp(t)
	resp, _ := app.Test(jsonReq("POST", "/api/v1/chat", fiber.Map{"message": "   "}))
	if resp.StatusCode != 400 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestChatEndpointRejectsOversizedMessage(t *testing.T) {
	app := testApp(t)
	resp, _ := app.Test(jsonReq("POST", "/api/v1/chat", fiber.Map{"message": strings.Repeat("a", 501)}))
	if resp.StatusCode != 400 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestChatModeWithoutBackendStaysOff(t *testing.T) {
	app := testApp(t)

	resp, _ := app.Test(jsonReq("GET", "/api/v1/chat/mode", nil))
	var mode struct {
		AIEnabled bool `json:"aiEnabled"`
	}
	decode(t, resp, &mode)
	if mode.AIEnabled {
		t.Fatal("AI mode on without an API key")
	}

	// The toggle cannot turn on a backend that isn't configured.
	resp, _ = app.Test(jsonReq("POST", "/api/v1/chat/mode", fiber.Map{"enabled": true}))
	decode(t, resp, &mode)
	if mode.AIEnabled {
		t.Fatal("toggle overrode a missing backend")
	}
}

func TestProductsList(t *testing.T) {
	app := testApp(t)
	resp, _ := app.Test(jsonReq("GET", "/api/v1/products", nil))
	var body struct {
		Count int `json:"count"`
	}
	decode(t, resp, &body)
	if body.Count != 12 {
		t.Fatalf("count = %d", body.Count)
	}
}

func TestProductsListSaleFilter(t *testing.T) {
	app := testApp(t)
	resp, _ := app.Test(jsonReq("GET", "/api/v1/products?sale=true", nil))
	var body struct {
		Count int `json:"count"`
	}
	decode(t, resp, &body)
	if body.Count != 3 {
		t.Fatalf("count = %d", body.Count)
	}
}

func TestProductsListRejectsHostileQuery(t *testing.T) {
	app := testApp(t)
	resp, _ := app.Test(jsonReq("GET", "/api/v1/products?q=%3Cscript%3E", nil))
	if resp.StatusCode != 400 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestProductGet(t *testing.T) {
	app := testApp(t)
	resp, _ := app.Test(jsonReq("GET", "/api/v1/products/1", nil))
	var p struct {
		Name string `json:"name"`
	}
	decode(t, resp, &p)
	if p.Name != "Air Max 270" {
		t.Fatalf("name = %q", p.Name)
	}

	resp, _ = app.Test(jsonReq("GET", "/api/v1/products/999", nil))
	if resp.StatusCode != 404 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestAvailability(t *testing.T) {
	app := testApp(t)
	resp, _ := app.Test(jsonReq("GET", "/api/v1/availability?productId=12", nil))
	var body struct {
		Status string `json:"status"`
	}
	decode(t, resp, &body)
	if body.Status != "OUT_OF_STOCK" {
		t.Fatalf("status = %q", body.Status)
	}

	resp, _ = app.Test(jsonReq("GET", "/api/v1/availability", nil))
	if resp.StatusCode != 400 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestCartFlow(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(jsonReq("POST", "/api/v1/cart/items", fiber.Map{
		"productId": "1", "quantity": 2, "size": "10", "color": "Black",
	}))
	if err != nil {
		t.Fatal(err)
	}
	sid := sessionCookie(resp)
	if sid == nil {
		t.Fatal("no session cookie on first cart write")
	}
	var cart struct {
		Items []struct {
			Quantity int `json:"quantity"`
		} `json:"items"`
		Total     float64 `json:"total"`
		ItemCount int     `json:"itemCount"`
	}
	decode(t, resp, &cart)
	if cart.ItemCount != 2 || cart.Total != 300 {
		t.Fatalf("cart = %+v", cart)
	}

	// Same session sees the cart; quantity update and clear round-trip.
	req := jsonReq("POST", "/api/v1/cart/items/quantity", fiber.Map{
		"productId": "1", "quantity": 5, "size": "10", "color": "Black",
	})
	req.AddCookie(sid)
	resp, _ = app.Test(req)
	decode(t, resp, &cart)
	if cart.ItemCount != 5 || cart.Total != 750 {
		t.Fatalf("cart after update = %+v", cart)
	}

	req = jsonReq("POST", "/api/v1/cart/clear", nil)
	req.AddCookie(sid)
	resp, _ = app.Test(req)
	decode(t, resp, &cart)
	if cart.ItemCount != 0 || len(cart.Items) != 0 {
		t.Fatalf("cart after clear = %+v", cart)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	app := testApp(t)
	resp, _ := app.Test(jsonReq("POST", "/api/v1/cart/items", fiber.Map{"productId": "999"}))
	if resp.StatusCode != 400 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestCartIsSessionScoped(t *testing.T) {
	app := testApp(t)
	resp, _ := app.Test(jsonReq("POST", "/api/v1/cart/items", fiber.Map{"productId": "1"}))
	if sessionCookie(resp) == nil {
		t.Fatal("no session cookie")
	}

	// A request without the cookie is a different shopper.
	resp, _ = app.Test(jsonReq("GET", "/api/v1/cart", nil))
	var cart struct {
		ItemCount int `json:"itemCount"`
	}
	decode(t, resp, &cart)
	if cart.ItemCount != 0 {
		t.Fatalf("cart leaked across sessions: %+v", cart)
	}
}

func TestWishlistFlow(t *testing.T) {
	app := testApp(t)

	resp, _ := app.Test(jsonReq("POST", "/api/v1/wishlist", fiber.Map{"productId": "3"}))
	if resp.StatusCode != 204 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	sid := sessionCookie(resp)

	req := jsonReq("GET", "/api/v1/wishlist", nil)
	req.AddCookie(sid)
	resp, _ = app.Test(req)
	var body struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	decode(t, resp, &body)
	if len(body.Items) != 1 || body.Items[0].ID != "3" {
		t.Fatalf("items = %+v", body.Items)
	}

	req = jsonReq("POST", "/api/v1/wishlist/delete", fiber.Map{"productId": "3"})
	req.AddCookie(sid)
	if resp, _ = app.Test(req); resp.StatusCode != 204 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestFormGet(t *testing.T) {
	app := testApp(t)
	resp, _ := app.Test(jsonReq("GET", "/api/v1/forms/appointment", nil))
	var form struct {
		Title  string `json:"title"`
		Fields []struct {
			ID string `json:"id"`
		} `json:"fields"`
	}
	decode(t, resp, &form)
	if form.Title != "Book an Appointment" || len(form.Fields) != 6 {
		t.Fatalf("form = %+v", form)
	}

	resp, _ = app.Test(jsonReq("GET", "/api/v1/forms/survey", nil))
	if resp.StatusCode != 404 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestFormSubmit(t *testing.T) {
	app := testApp(t)

	resp, _ := app.Test(jsonReq("POST", "/api/v1/forms/contact", fiber.Map{
		"values": fiber.Map{"name": "Ada", "email": "bad-email", "preferred_contact": "Email"},
	}))
	if resp.StatusCode != 400 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var failed struct {
		Errors map[string]string `json:"errors"`
	}
	decode(t, resp, &failed)
	if _, ok := failed.Errors["email"]; !ok {
		t.Fatalf("errors = %v", failed.Errors)
	}

	resp, _ = app.Test(jsonReq("POST", "/api/v1/forms/contact", fiber.Map{
		"values": fiber.Map{"name": "Ada", "email": "ada@example.com", "preferred_contact": "Email"},
	}))
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var ok struct {
		Message string `json:"message"`
	}
	decode(t, resp, &ok)
	if !strings.Contains(ok.Message, "saved") {
		t.Fatalf("message = %q", ok.Message)
	}
}
