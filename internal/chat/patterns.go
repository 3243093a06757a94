package chat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"shoestore/internal/catalog"
	"shoestore/internal/domain"
)

var (
	greetingWords = []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening", "greetings"}

	// Checked in order; first hit wins.
	knownCategories = []string{"running", "casual", "basketball", "training", "trail"}
	knownBrands     = []string{"nike", "adidas", "new balance", "reebok", "converse", "asics", "salomon", "on running"}
	colorKeywords   = []string{"black", "white", "blue", "red", "grey", "navy", "green"}

	reNumber = regexp.MustCompile(`\$?(\d+)`)
	reSize   = regexp.MustCompile(`size (\d+)`)
)

// Responder is the deterministic fallback engine: an ordered chain of
// intent matchers over the lowercased user text. The first branch whose
// condition holds produces the whole response.
type Responder struct {
	Catalog *catalog.Catalog
}

func NewResponder(cat *catalog.Catalog) *Responder {
	return &Responder{Catalog: cat}
}

func (r *Responder) Respond(message string) domain.ResponseBundle {
	lower := strings.ToLower(strings.TrimSpace(message))

	if containsAny(lower, greetingWords) {
		return speak(domain.ResponseBundle{
			Text: "Hello! Welcome to ShoeStore. I'm your personal shoe shopping assistant. How can I help you today?",
			QuickReplies: []string{
				"Show me running shoes",
				"What's on sale?",
				"Nike shoes under $100",
				"Show all brands",
			},
		})
	}

	if strings.Contains(lower, "help") || strings.Contains(lower, "what can you do") {
		return speak(domain.ResponseBundle{
			Text: "I can help you find the perfect shoes! You can ask me about:\n" +
				"• Specific brands or categories\n• Shoes by price range\n• What's on sale\n" +
				"• Shoe features and details\n• Size and color availability",
			QuickReplies: []string{
				"Show running shoes",
				"What's on sale?",
				"Show me Adidas",
				"Shoes under $100",
			},
		})
	}

	if containsAny(lower, []string{"sale", "discount", "deal"}) {
		sale := r.Catalog.OnSale()
		return speak(domain.ResponseBundle{
			Text:     fmt.Sprintf("Great news! We have %d shoes on sale right now. Check them out:", len(sale)),
			Products: sale,
			QuickReplies: []string{
				"Tell me more about the first one",
				"Show running shoes on sale",
				"What else is new?",
			},
		})
	}

	for _, cat := range knownCategories {
		if strings.Contains(lower, cat) {
			products := r.Catalog.ByCategory(cat)
			return speak(domain.ResponseBundle{
				Text:     fmt.Sprintf("Here are our %s shoes. We have %d options for you:", cat, len(products)),
				Products: products,
				QuickReplies: []string{
					"Filter by brand",
					"Show cheaper options",
					"What's the best rated?",
				},
			})
		}
	}

	for _, brand := range knownBrands {
		if strings.Contains(lower, brand) {
			name := titleCase(brand)
			products := r.Catalog.ByBrand(name)
			return speak(domain.ResponseBundle{
				Text:     fmt.Sprintf("Here are all our %s shoes. We have %d styles available:", name, len(products)),
				Products: products,
				QuickReplies: []string{
					"Show me the cheapest",
					"What's on sale?",
					"Show other brands",
				},
			})
		}
	}

	if containsAny(lower, []string{"under", "less than", "cheaper"}) {
		if m := reNumber.FindStringSubmatch(lower); m != nil {
			max, _ := strconv.Atoi(m[1])
			products := r.Catalog.ByPriceRange(0, float64(max))
			return speak(domain.ResponseBundle{
				Text:     fmt.Sprintf("I found %d shoes under $%d:", len(products), max),
				Products: products,
				QuickReplies: []string{
					"Show me the best rated",
					"Any on sale?",
					"Show running shoes",
				},
			})
		}
	}

	if strings.Contains(lower, "between") || strings.Contains(lower, "range") {
		if nums := reNumber.FindAllStringSubmatch(lower, -1); len(nums) >= 2 {
			min, _ := strconv.Atoi(nums[0][1])
			max, _ := strconv.Atoi(nums[1][1])
			products := r.Catalog.ByPriceRange(float64(min), float64(max))
			return speak(domain.ResponseBundle{
				Text:     fmt.Sprintf("Here are shoes between $%d and $%d:", min, max),
				Products: products,
				QuickReplies: []string{
					"Show me the most popular",
					"What's new?",
					"Show all",
				},
			})
		}
	}

	if strings.Contains(lower, "all brands") || strings.Contains(lower, "what brands") {
		brands := r.Catalog.Brands()
		quick := brands
		if len(quick) > 4 {
			quick = quick[:4]
		}
		return speak(domain.ResponseBundle{
			Text: fmt.Sprintf("We carry these brands: %s. Which one would you like to see?",
				strings.Join(brands, ", ")),
			QuickReplies: quick,
		})
	}

	if strings.Contains(lower, "categories") || strings.Contains(lower, "types") {
		cats := r.Catalog.Categories()
		quick := make([]string, len(cats))
		for i, cat := range cats {
			quick[i] = "Show " + cat + " shoes"
		}
		return speak(domain.ResponseBundle{
			Text: fmt.Sprintf("We have these categories: %s. What interests you?",
				strings.Join(cats, ", ")),
			QuickReplies: quick,
		})
	}

	if containsAny(lower, []string{"best", "highest rated", "top rated"}) {
		return speak(domain.ResponseBundle{
			Text:     "Here are our highest-rated shoes:",
			Products: r.Catalog.TopRated(6),
			QuickReplies: []string{
				"Show me the first one",
				"Any on sale?",
				"Show running shoes",
			},
		})
	}

	if strings.Contains(lower, "size") {
		if m := reSize.FindStringSubmatch(lower); m != nil {
			size := m[1]
			matching := r.Catalog.BySize(size)
			products := matching
			if len(products) > 6 {
				products = products[:6]
			}
			return speak(domain.ResponseBundle{
				Text:     fmt.Sprintf("We have %d shoes available in size %s:", len(matching), size),
				Products: products,
				QuickReplies: []string{
					"Show running shoes",
					"Filter by brand",
					"What's on sale?",
				},
			})
		}
		return speak(domain.ResponseBundle{
			Text:         "What size are you looking for? We carry sizes from 5 to 13.",
			QuickReplies: []string{"Size 9", "Size 10", "Size 11"},
		})
	}

	if strings.Contains(lower, "color") || containsAny(lower, []string{"black", "white", "blue", "red"}) {
		for _, color := range colorKeywords {
			if strings.Contains(lower, color) {
				return speak(domain.ResponseBundle{
					Text:     fmt.Sprintf("Here are our %s shoes:", titleCase(color)),
					Products: r.Catalog.ByColor(color),
					QuickReplies: []string{
						"Show other colors",
						"Filter by price",
						"What's popular?",
					},
				})
			}
		}
	}

	if strings.Contains(lower, "in stock") || strings.Contains(lower, "available") {
		inStock := r.Catalog.InStock()
		products := inStock
		if len(products) > 6 {
			products = products[:6]
		}
		return speak(domain.ResponseBundle{
			Text:     fmt.Sprintf("We have %d shoes in stock right now:", len(inStock)),
			Products: products,
			QuickReplies: []string{
				"Show running shoes",
				"What's on sale?",
				"Show by brand",
			},
		})
	}

	if containsAny(lower, []string{"show all", "browse", "see everything"}) {
		all := r.Catalog.All()
		return speak(domain.ResponseBundle{
			Text:     fmt.Sprintf("Here's our complete collection of %d shoes:", len(all)),
			Products: all,
			QuickReplies: []string{
				"Show running shoes",
				"What's on sale?",
				"Filter by brand",
			},
		})
	}

	if results := r.Catalog.Search(message); len(results) > 0 {
		return speak(domain.ResponseBundle{
			Text:     fmt.Sprintf("I found %d shoes matching %q:", len(results), message),
			Products: results,
			QuickReplies: []string{
				"Show me more details",
				"What's on sale?",
				"Show other options",
			},
		})
	}

	return speak(domain.ResponseBundle{
		Text: "I'm not sure I understood that. Try asking me about shoe brands, categories, prices, or what's on sale!",
		QuickReplies: []string{
			"Show running shoes",
			"What's on sale?",
			"Show all brands",
			"Shoes under $100",
		},
	})
}

func speak(b domain.ResponseBundle) domain.ResponseBundle {
	b.ShouldSpeak = true
	return b
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
