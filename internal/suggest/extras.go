package suggest

import (
	"strings"
	"time"

	"github.com/khartman/trip-planner/internal/domain"
)

// Highlights is the foodie section for one city: dishes worth seeking out,
// low-key spots, and a short grocery list for cooking at the rental.
type Highlights struct {
	DishesToTry []string `json:"dishes_to_try"`
	HiddenGems  []string `json:"hidden_gems"`
	GroceryList []string `json:"grocery_list"`
}

var highlightsTable = []struct {
	keyword    string
	highlights Highlights
}{
	{
		keyword: "charleston",
		highlights: Highlights{
			DishesToTry: []string{"Shrimp & grits", "She-crab soup", "Fried green tomatoes"},
			HiddenGems:  []string{"Local shrimp shack away from the main tourist strip"},
			GroceryList: []string{"Fresh shrimp", "Grits", "Butter", "Garlic"},
		},
	},
	{
		keyword: "tokyo",
		highlights: Highlights{
			DishesToTry: []string{"Tsukemen ramen", "Tonkatsu", "Matcha dessert"},
			HiddenGems:  []string{"Standing sushi bar near a train station", "Tiny ramen shop with 10 seats"},
			GroceryList: []string{"Rice", "Soy sauce", "Miso paste", "Seasonal vegetables"},
		},
	},
}

// HighlightsFor returns foodie highlights for a destination, falling back to
// generic advice when no keyword matches.
func HighlightsFor(destination string) Highlights {
	norm := strings.ToLower(destination)
	for _, entry := range highlightsTable {
		if strings.Contains(norm, entry.keyword) {
			return entry.highlights
		}
	}
	return Highlights{
		DishesToTry: []string{render("One hearty local dish in %s", destination)},
		HiddenGems:  []string{"Ask a local barista or waiter where they eat on their day off."},
		GroceryList: []string{"3 seasonal vegetables", "Local cheese or protein", "Bread or rice"},
	}
}

// Recipe is a deliberately simple meal the traveller can cook in a rental.
type Recipe struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

var recipeTable = []struct {
	keyword string
	recipe  Recipe
}{
	{
		keyword: "charleston",
		recipe: Recipe{
			Title:       "Ultra-Simple Shrimp & Grits",
			Description: "A one-pan, low-stress version of a Charleston classic you can cook in most rentals.",
			Ingredients: []string{
				"Frozen or fresh peeled shrimp",
				"Quick-cooking grits",
				"Butter or olive oil",
				"Garlic (fresh or pre-minced)",
				"Salt and pepper",
			},
			Steps: []string{
				"Cook grits according to the package in a small pot with water and a spoonful of butter.",
				"While grits cook, heat a pan with a little butter or oil and gently cook garlic for 30-60 seconds.",
				"Add shrimp to the pan, season with salt and pepper, and cook until pink on both sides.",
				"Spoon grits into a bowl and top with the garlic shrimp and pan juices.",
			},
		},
	},
	{
		keyword: "tokyo",
		recipe: Recipe{
			Title:       "Lazy Tokyo Rice Bowl",
			Description: "A 10-15 minute rice bowl using simple ingredients from a convenience store or small market.",
			Ingredients: []string{
				"Cooked rice (microwaveable pack is fine)",
				"Soy sauce",
				"Green onions or any soft vegetable",
				"Egg (or tofu if you prefer)",
			},
			Steps: []string{
				"Heat the rice according to the package and place it in a bowl.",
				"Gently fry an egg sunny-side-up (or warm cubed tofu) in a little oil.",
				"Slice green onions or soft vegetables into small pieces.",
				"Top the rice with the egg or tofu, sprinkle over the vegetables, and drizzle soy sauce to taste.",
			},
		},
	},
}

var recipeFallback = Recipe{
	Title:       "One-Pan Local Veggie Toast",
	Description: "A flexible, low-skill meal you can make almost anywhere with just a pan and toaster.",
	Ingredients: []string{
		"Good bread or rolls",
		"Local cheese or spread",
		"2-3 local vegetables (tomato, peppers, greens, etc.)",
		"Olive oil or butter",
		"Salt and pepper",
	},
	Steps: []string{
		"Toast the bread or warm it in a pan until lightly crisp.",
		"Slice the vegetables into bite-sized pieces.",
		"Gently saute the vegetables in a little oil or butter until just soft; season with salt and pepper.",
		"Spread cheese on the warm bread and pile the cooked vegetables on top.",
	},
}

// RecipeFor returns a simple local recipe for the destination.
func RecipeFor(destination string) Recipe {
	norm := strings.ToLower(destination)
	for _, entry := range recipeTable {
		if strings.Contains(norm, entry.keyword) {
			return entry.recipe
		}
	}
	return recipeFallback
}

// PackingList builds the suggested packing items for a trip, keyed by the
// destination, travel style, and departure season.
func PackingList(trip domain.Trip) []domain.PackingItem {
	destination := strings.ToLower(trip.Destination)

	items := []domain.PackingItem{
		{Category: "Essentials", Label: "Passport / ID"},
		{Category: "Essentials", Label: "Phone + charger"},
		{Category: "Essentials", Label: "Wallet + cards"},
		{Category: "Essentials", Label: "Medications"},
	}

	if strings.Contains(destination, "seattle") || strings.Contains(destination, "rain") {
		items = append(items, domain.PackingItem{Category: "Weather", Label: "Light raincoat or waterproof jacket"})
	}

	switch trip.StartDate.Month() {
	case time.December, time.January, time.February:
		items = append(items, domain.PackingItem{Category: "Clothing", Label: "Warm layers and a hat"})
	case time.June, time.July, time.August:
		items = append(items, domain.PackingItem{Category: "Clothing", Label: "Lightweight clothing and sunscreen"})
	}

	if trip.TravelStyle == domain.StyleFoodie {
		items = append(items,
			domain.PackingItem{Category: "Foodie Tools", Label: "Reusable tote bag for markets"},
			domain.PackingItem{Category: "Foodie Tools", Label: "Small notebook for food notes"},
		)
	}

	if strings.Contains(destination, "beach") || strings.Contains(destination, "island") {
		items = append(items,
			domain.PackingItem{Category: "Activities", Label: "Swimsuit"},
			domain.PackingItem{Category: "Activities", Label: "Flip-flops"},
			domain.PackingItem{Category: "Activities", Label: "Beach towel"},
		)
	}

	return items
}
