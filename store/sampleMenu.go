package store

import (
	"go-hotel-ordering/models"

	"github.com/shopspring/decimal"
)

// SampleMenu is the catalog a new session starts with.
func SampleMenu() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:          "1",
			Name:        "Butter Chicken",
			Description: "Tender chicken cooked in a rich, creamy tomato sauce with butter and spices",
			Price:       decimal.NewFromInt(350),
			Category:    "Main Course",
			Image:       "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398?w=800&auto=format&fit=crop&q=60",
		},
		{
			ID:          "2",
			Name:        "Paneer Tikka Masala",
			Description: "Grilled cottage cheese cubes in a spiced tomato gravy",
			Price:       decimal.NewFromInt(300),
			Category:    "Main Course",
			Image:       "https://images.unsplash.com/photo-1567188040759-fb8a883dc6d8?w=800&auto=format&fit=crop&q=60",
		},
		{
			ID:          "3",
			Name:        "Masala Dosa",
			Description: "Crispy rice pancake filled with spiced potato, served with sambar and chutney",
			Price:       decimal.NewFromInt(180),
			Category:    "Breakfast",
			Image:       "https://images.unsplash.com/photo-1589301760014-d929f3979dbc?w=800&auto=format&fit=crop&q=60",
		},
		{
			ID:          "4",
			Name:        "Gulab Jamun",
			Description: "Deep-fried milk solids soaked in rose flavored sugar syrup",
			Price:       decimal.NewFromInt(120),
			Category:    "Dessert",
			Image:       "https://images.unsplash.com/photo-1601303516477-408fa5a8a271?w=800&auto=format&fit=crop&q=60",
		},
		{
			ID:          "5",
			Name:        "Biryani",
			Description: "Fragrant basmati rice cooked with aromatic spices and your choice of meat or vegetables",
			Price:       decimal.NewFromInt(280),
			Category:    "Main Course",
			Image:       "https://images.unsplash.com/photo-1589302168068-964664d93dc0?w=800&auto=format&fit=crop&q=60",
		},
		{
			ID:          "6",
			Name:        "Samosa",
			Description: "Crispy pastry filled with spiced potatoes and peas, served with mint chutney",
			Price:       decimal.NewFromInt(80),
			Category:    "Starter",
			Image:       "https://images.unsplash.com/photo-1601050690597-df0568f70950?w=800&auto=format&fit=crop&q=60",
		},
	}
}
