package model

import "strings"

// Category is the shelf a book belongs to.
type Category string

const (
	// CategoryTeen is the young-adult shelf.
	CategoryTeen Category = "Teen"
	// CategoryAdventure is the adventure shelf.
	CategoryAdventure Category = "Adventure"
	// CategoryAI is the artificial intelligence shelf.
	CategoryAI Category = "AI"
	// CategoryGeography is the geography shelf.
	CategoryGeography Category = "Geography"
)

// Categories lists the valid categories in display order.
var Categories = []Category{
	CategoryTeen,
	CategoryAdventure,
	CategoryAI,
	CategoryGeography,
}

// ParseCategory returns the canonical category matching raw, ignoring case.
func ParseCategory(raw string) (Category, bool) {
	for _, c := range Categories {
		if strings.EqualFold(string(c), raw) {
			return c, true
		}
	}
	return "", false
}

// CategoryNames returns the canonical names joined for prompts and errors,
// e.g. "Teen, Adventure, AI, Geography".
func CategoryNames() string {
	names := make([]string, len(Categories))
	for i, c := range Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func (c Category) String() string {
	return string(c)
}
