package entity

// SeedCategories devuelve las categorías iniciales con IDs fijos 1..3.
func SeedCategories() []Category {
	return []Category{
		{ID: 1, Name: strPtr("Adidas")},
		{ID: 2, Name: strPtr("Nike")},
		{ID: 3, Name: strPtr("Puma")},
	}
}

// SeedProductItems devuelve los artículos iniciales con IDs fijos 1..6.
func SeedProductItems() []ProductItem {
	return []ProductItem{
		{ID: 1, CategoryID: 1, Title: strPtr("Classic 21"), Colour: strPtr("White")},
		{ID: 2, CategoryID: 1, Title: strPtr("Retro 95"), Colour: strPtr("White")},
		{ID: 3, CategoryID: 2, Title: strPtr("Air"), Colour: strPtr("White")},
		{ID: 4, CategoryID: 2, Title: strPtr("FootB"), Colour: strPtr("Black")},
		{ID: 5, CategoryID: 3, Title: strPtr("Run 101"), Colour: strPtr("Black")},
		{ID: 6, CategoryID: 3, Title: strPtr("Pulman 7"), Colour: strPtr("White")},
	}
}

func strPtr(s string) *string { return &s }
