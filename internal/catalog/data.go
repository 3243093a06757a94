package catalog

import "shoestore/internal/domain"

// seedProducts is the demo shoe catalog. IDs are stable; the list is never
// mutated after startup.
func seedProducts() []domain.Product {
	return []domain.Product{
		{
			ID: "1", Name: "Air Max 270", Brand: "Nike", Category: "running",
			Price: 150, OriginalPrice: 180,
			Sizes:  []string{"7", "8", "9", "10", "11", "12"},
			Colors: []string{"Black", "White", "Blue", "Red"},
			Description: "Experience ultimate comfort with the Air Max 270. " +
				"Features large Air unit for exceptional cushioning.",
			ImageURL: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=400&h=400&fit=crop",
			Rating:   4.5, InStock: true,
			Features: []string{"Air Max cushioning", "Breathable mesh", "Lightweight design"},
		},
		{
			ID: "2", Name: "UltraBoost 22", Brand: "Adidas", Category: "running",
			Price:  190,
			Sizes:  []string{"7", "8", "9", "10", "11", "12", "13"},
			Colors: []string{"White", "Black", "Grey"},
			Description: "Revolutionary energy return with Boost technology. " +
				"Perfect for long-distance running.",
			ImageURL: "https://images.unsplash.com/photo-1608231387042-66d1773070a5?w=400&h=400&fit=crop",
			Rating:   4.7, InStock: true,
			Features: []string{"Boost cushioning", "Primeknit upper", "Continental rubber outsole"},
		},
		{
			ID: "3", Name: "Classic Leather", Brand: "Reebok", Category: "casual",
			Price: 75, OriginalPrice: 90,
			Sizes:       []string{"6", "7", "8", "9", "10", "11"},
			Colors:      []string{"White", "Black", "Navy"},
			Description: "Timeless style meets everyday comfort. A wardrobe essential.",
			ImageURL:    "https://images.unsplash.com/photo-1549298916-b41d501d3772?w=400&h=400&fit=crop",
			Rating:      4.3, InStock: true,
			Features: []string{"Soft leather upper", "EVA midsole", "Classic design"},
		},
		{
			ID: "4", Name: "574 Core", Brand: "New Balance", Category: "casual",
			Price:       85,
			Sizes:       []string{"7", "8", "9", "10", "11", "12"},
			Colors:      []string{"Grey", "Navy", "Burgundy", "Green"},
			Description: "The iconic 574 silhouette with modern comfort technology.",
			ImageURL:    "https://images.unsplash.com/photo-1539185441755-769473a23570?w=400&h=400&fit=crop",
			Rating:      4.4, InStock: true,
			Features: []string{"ENCAP midsole", "Suede and mesh upper", "Retro style"},
		},
		{
			ID: "5", Name: "Chuck Taylor All Star", Brand: "Converse", Category: "casual",
			Price:  60,
			Sizes:  []string{"5", "6", "7", "8", "9", "10", "11", "12"},
			Colors: []string{"Black", "White", "Red", "Navy", "Pink"},
			Description: "The legendary sneaker that started it all. " +
				"Timeless design for any occasion.",
			ImageURL: "https://images.unsplash.com/photo-1607522370275-f14206abe5d3?w=400&h=400&fit=crop",
			Rating:   4.6, InStock: true,
			Features: []string{"Canvas upper", "Iconic design", "Versatile style"},
		},
		{
			ID: "6", Name: "Gel-Kayano 29", Brand: "Asics", Category: "running",
			Price:  160,
			Sizes:  []string{"7", "8", "9", "10", "11", "12"},
			Colors: []string{"Blue", "Black", "Grey"},
			Description: "Premium stability shoe for overpronators. " +
				"Engineered for long-distance comfort.",
			ImageURL: "https://images.unsplash.com/photo-1605348532760-6753d2c43329?w=400&h=400&fit=crop",
			Rating:   4.8, InStock: true,
			Features: []string{"GEL cushioning", "Dynamic support", "Breathable mesh"},
		},
		{
			ID: "7", Name: "Court Vision Low", Brand: "Nike", Category: "basketball",
			Price: 70, OriginalPrice: 85,
			Sizes:       []string{"7", "8", "9", "10", "11", "12"},
			Colors:      []string{"White", "Black", "Red"},
			Description: "Basketball-inspired style meets everyday comfort. Classic court look.",
			ImageURL:    "https://images.unsplash.com/photo-1551107696-a4b0c5a0d9a2?w=400&h=400&fit=crop",
			Rating:      4.2, InStock: true,
			Features: []string{"Leather upper", "Padded collar", "Rubber outsole"},
		},
		{
			ID: "8", Name: "Cloudflow", Brand: "On Running", Category: "running",
			Price:       140,
			Sizes:       []string{"7", "8", "9", "10", "11"},
			Colors:      []string{"White", "Black", "Blue"},
			Description: "Lightweight performance runner with CloudTec cushioning technology.",
			ImageURL:    "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=400&h=400&fit=crop",
			Rating:      4.6, InStock: true,
			Features: []string{"CloudTec cushioning", "Speedboard technology", "Lightweight mesh"},
		},
		{
			ID: "9", Name: "Stan Smith", Brand: "Adidas", Category: "casual",
			Price:  90,
			Sizes:  []string{"6", "7", "8", "9", "10", "11", "12"},
			Colors: []string{"White/Green", "White/Navy", "All White"},
			Description: "The tennis legend that became a fashion icon. " +
				"Clean, minimalist design.",
			ImageURL: "https://images.unsplash.com/photo-1560769629-975ec94e6a86?w=400&h=400&fit=crop",
			Rating:   4.7, InStock: true,
			Features: []string{"Leather upper", "Perforated 3-Stripes", "Iconic style"},
		},
		{
			ID: "10", Name: "Speedcross 5", Brand: "Salomon", Category: "trail",
			Price:       130,
			Sizes:       []string{"8", "9", "10", "11", "12"},
			Colors:      []string{"Black", "Blue", "Red"},
			Description: "Aggressive grip for technical trails. Built for mountain running.",
			ImageURL:    "https://images.unsplash.com/photo-1579338559194-a162d19bf842?w=400&h=400&fit=crop",
			Rating:      4.9, InStock: true,
			Features: []string{"Contragrip outsole", "Quicklace system", "Sensifit technology"},
		},
		{
			ID: "11", Name: "Fresh Foam 1080", Brand: "New Balance", Category: "running",
			Price:       155,
			Sizes:       []string{"7", "8", "9", "10", "11", "12"},
			Colors:      []string{"Black", "Blue", "Grey"},
			Description: "Plush cushioning for maximum comfort on long runs.",
			ImageURL:    "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?w=400&h=400&fit=crop",
			Rating:      4.5, InStock: true,
			Features: []string{"Fresh Foam midsole", "Hypoknit upper", "Data-driven design"},
		},
		{
			ID: "12", Name: "Metcon 8", Brand: "Nike", Category: "training",
			Price:  140,
			Sizes:  []string{"7", "8", "9", "10", "11", "12"},
			Colors: []string{"Black", "White", "Grey"},
			Description: "Built for high-intensity training and weightlifting. " +
				"Maximum stability.",
			ImageURL: "https://images.unsplash.com/photo-1600185365483-26d7a4cc7519?w=400&h=400&fit=crop",
			Rating:   4.6, InStock: false,
			Features: []string{"Stable heel", "Rope wrap", "Reinforced upper"},
		},
	}
}
