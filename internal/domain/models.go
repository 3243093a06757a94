package domain

import "time"

type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Category      string   `json:"category"`
	Price         float64  `json:"price"`
	OriginalPrice float64  `json:"originalPrice,omitempty"` // > Price when on sale, 0 otherwise
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"imageUrl"`
	Rating        float64  `json:"rating"`
	InStock       bool     `json:"inStock"`
	Features      []string `json:"features"`
}

// OnSale reports whether the product carries a discount.
func (p Product) OnSale() bool {
	return p.OriginalPrice > 0 && p.OriginalPrice > p.Price
}

// CartLine is one (product, size, color) entry in a cart. Lines with the
// same identity key merge by quantity rather than duplicating.
type CartLine struct {
	Product  Product   `json:"product"`
	Quantity int       `json:"quantity"`
	Size     string    `json:"selectedSize,omitempty"`
	Color    string    `json:"selectedColor,omitempty"`
	AddedAt  time.Time `json:"addedAt"`
}

// Cart is a point-in-time snapshot: Total and ItemCount are always derived
// from Lines, never set independently.
type Cart struct {
	Lines     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}

type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldEmail    FieldKind = "email"
	FieldPhone    FieldKind = "phone"
	FieldDate     FieldKind = "date"
	FieldTextarea FieldKind = "textarea"
	FieldSelect   FieldKind = "select"
)

type FormField struct {
	ID          string    `json:"id"`
	Kind        FieldKind `json:"type"`
	Label       string    `json:"label"`
	Placeholder string    `json:"placeholder,omitempty"`
	Required    bool      `json:"required"`
	Options     []string  `json:"options,omitempty"` // select only
	MinDate     string    `json:"minDate,omitempty"` // date only, YYYY-MM-DD
	MaxDate     string    `json:"maxDate,omitempty"`
}

type FormDescriptor struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Fields      []FormField `json:"fields"`
	SubmitLabel string      `json:"submitLabel"`
}

// ChatTurn is one prior exchange passed back by the client as history.
type ChatTurn struct {
	Role    string `json:"role"` // "user" or "bot"
	Content string `json:"content"`
}

// ResponseBundle is the normalized output of either response path.
type ResponseBundle struct {
	Text         string          `json:"text"`
	Products     []Product       `json:"products,omitempty"`
	QuickReplies []string        `json:"quickReplies,omitempty"`
	Form         *FormDescriptor `json:"form,omitempty"`
	Cart         *Cart           `json:"cart,omitempty"`
	ShouldSpeak  bool            `json:"shouldSpeak"`
}
