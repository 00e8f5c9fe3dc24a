// Package suggest generates destination- and style-keyed content for trips:
// day checklists, slot text, foodie highlights, recipes, and packing lists.
// Everything here is a data-driven lookup with a generic fallback; the only
// network code is the optional Google Places client in places.go.
package suggest

import (
	"fmt"
	"strings"

	"github.com/khartman/trip-planner/internal/domain"
)

// Checklist holds suggested names per checklist category for one destination.
type Checklist struct {
	Places      []string
	Restaurants []string
	Hotels      []string
}

// Empty reports whether no category has any entries.
func (c Checklist) Empty() bool {
	return len(c.Places) == 0 && len(c.Restaurants) == 0 && len(c.Hotels) == 0
}

// destinationEntry is one row in the keyword table. Entries match when the
// normalized destination contains the keyword. Strings may contain one %s
// verb, filled with the destination as typed by the user.
type destinationEntry struct {
	keyword   string
	checklist Checklist
}

// checklistTable maps destination keywords to curated suggestions.
// Order matters: the first matching keyword wins.
var checklistTable = []destinationEntry{
	{
		keyword: "charleston",
		checklist: Checklist{
			Places: []string{
				"Rainbow Row & historic downtown walk",
				"Waterfront Park & Pineapple Fountain",
			},
			Restaurants: []string{
				"Husk (modern Southern)",
				"Fleet Landing Restaurant & Bar (waterfront seafood)",
			},
			Hotels: []string{
				"The Dewberry Charleston",
				"Emeline",
			},
		},
	},
	{
		keyword: "tokyo",
		checklist: Checklist{
			Places: []string{
				"Senso-ji Temple in Asakusa",
				"Meiji Shrine & Harajuku walk",
				"Shibuya Crossing evening stroll",
			},
			Restaurants: []string{
				"Ichiran Ramen (solo ramen booths)",
				"Gyukatsu Motomura (beef cutlet)",
			},
			Hotels: []string{
				"Hotel Niwa Tokyo",
				"Shinjuku Granbell Hotel",
			},
		},
	},
}

// checklistFallback is used when no keyword matches.
var checklistFallback = Checklist{
	Places: []string{
		"Old town or historic center in %s",
		"City park or viewpoint in %s",
	},
	Restaurants: []string{
		"Highly rated casual restaurant near your stay in %s",
		"Bakery or cafe popular with locals in %s",
	},
	Hotels: []string{
		"Mid-range hotel close to transit in %s",
		"Guesthouse or small inn with good reviews in %s",
	},
}

// OfflineChecklist returns the static suggestion set for a destination.
func OfflineChecklist(destination string) Checklist {
	norm := strings.ToLower(destination)
	for _, entry := range checklistTable {
		if strings.Contains(norm, entry.keyword) {
			return entry.checklist
		}
	}
	return Checklist{
		Places:      renderAll(checklistFallback.Places, destination),
		Restaurants: renderAll(checklistFallback.Restaurants, destination),
		Hotels:      renderAll(checklistFallback.Hotels, destination),
	}
}

// DayPlan holds generated slot descriptions applied to every day of a trip.
type DayPlan struct {
	Morning   string
	Afternoon string
	Evening   string
}

// dayPlanTable maps travel styles to slot templates; %s is the destination.
var dayPlanTable = map[domain.TravelStyle]DayPlan{
	domain.StyleFoodie: {
		Morning:   "Start your day at a local cafe in %s.",
		Afternoon: "Take a walking food tour and sample street food in %s.",
		Evening:   "Dinner at a neighborhood restaurant known for regional specialties in %s.",
	},
	domain.StyleBudget: {
		Morning:   "Explore a free park, garden, or public space in %s.",
		Afternoon: "Visit a low-cost museum or market and people-watch in %s.",
		Evening:   "Find a casual, affordable spot for dinner and stroll the city center in %s.",
	},
	domain.StyleFamily: {
		Morning:   "Family-friendly attraction or playground in %s.",
		Afternoon: "Interactive museum, zoo, or aquarium suited for kids in %s.",
		Evening:   "Relaxed dinner and early evening walk through a safe, lively area in %s.",
	},
	domain.StyleLuxury: {
		Morning:   "Slow breakfast at a high-end cafe or in-hotel dining in %s.",
		Afternoon: "Spa treatment or private guided tour around %s.",
		Evening:   "Tasting-menu dinner or rooftop bar experience in %s.",
	},
	domain.StyleFlexible: {
		Morning:   "Walk through a central neighborhood in %s.",
		Afternoon: "Visit one landmark or museum that interests you in %s.",
		Evening:   "Try a recommended local restaurant and explore nearby streets in %s.",
	},
}

// PlanForStyle returns the generated slot text for a destination and style.
func PlanForStyle(destination string, style domain.TravelStyle) DayPlan {
	plan, ok := dayPlanTable[style]
	if !ok {
		plan = dayPlanTable[domain.StyleFlexible]
	}
	return DayPlan{
		Morning:   render(plan.Morning, destination),
		Afternoon: render(plan.Afternoon, destination),
		Evening:   render(plan.Evening, destination),
	}
}

func render(template, destination string) string {
	if !strings.Contains(template, "%s") {
		return template
	}
	return fmt.Sprintf(template, destination)
}

func renderAll(templates []string, destination string) []string {
	out := make([]string, len(templates))
	for i, t := range templates {
		out[i] = render(t, destination)
	}
	return out
}
