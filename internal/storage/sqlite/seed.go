package sqlite

import (
	"context"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
	"github.com/Avisha2803/resort-booking-agent/pkg/log"
)

// menuSeed is the full restaurant menu shipped with the resort.
var menuSeed = []core.MenuItem{
	// Breakfast
	{Name: "Masala Dosa", Description: "Crispy dosa with spiced potato filling", Price: 120, Category: "Breakfast"},
	{Name: "Plain Idli", Description: "Steamed rice cakes with chutney", Price: 80, Category: "Breakfast"},
	{Name: "Medu Vada", Description: "Fried lentil doughnuts", Price: 90, Category: "Breakfast"},
	{Name: "Upma", Description: "Semolina cooked with vegetables", Price: 100, Category: "Breakfast"},
	{Name: "Poha", Description: "Flattened rice with peanuts", Price: 100, Category: "Breakfast"},
	{Name: "Aloo Paratha", Description: "Stuffed paratha with curd", Price: 130, Category: "Breakfast"},
	{Name: "Paneer Paratha", Description: "Paneer stuffed paratha", Price: 150, Category: "Breakfast"},
	{Name: "Puri Bhaji", Description: "Fried bread with potato curry", Price: 140, Category: "Breakfast"},
	{Name: "Omelette", Description: "Indian-style omelette", Price: 90, Category: "Breakfast"},
	{Name: "Boiled Eggs", Description: "Two boiled eggs", Price: 70, Category: "Breakfast"},

	// Veg starters
	{Name: "Paneer Tikka", Description: "Grilled cottage cheese with spices", Price: 240, Category: "Veg Starter"},
	{Name: "Veg Manchurian", Description: "Vegetable balls in spicy sauce", Price: 200, Category: "Veg Starter"},
	{Name: "Crispy Corn", Description: "Fried corn kernels with pepper", Price: 180, Category: "Veg Starter"},
	{Name: "Spring Roll", Description: "Crispy vegetable rolls", Price: 160, Category: "Veg Starter"},
	{Name: "Hara Bhara Kabab", Description: "Spinach and potato patties", Price: 220, Category: "Veg Starter"},

	// Non-veg starters
	{Name: "Chicken Tikka", Description: "Tandoori grilled chicken chunks", Price: 320, Category: "Non-Veg Starter"},
	{Name: "Chilli Chicken", Description: "Spicy fried chicken with bell peppers", Price: 300, Category: "Non-Veg Starter"},
	{Name: "Fish Fry", Description: "Crispy fried fish fillet", Price: 350, Category: "Non-Veg Starter"},
	{Name: "Mutton Seekh Kabab", Description: "Minced mutton skewers", Price: 380, Category: "Non-Veg Starter"},
	{Name: "Chicken Lollipop", Description: "Crispy chicken wings", Price: 340, Category: "Non-Veg Starter"},

	// Veg main course
	{Name: "Paneer Butter Masala", Description: "Cottage cheese in rich tomato gravy", Price: 300, Category: "Veg Main Course"},
	{Name: "Dal Makhani", Description: "Creamy black lentils slow cooked", Price: 250, Category: "Veg Main Course"},
	{Name: "Veg Biryani", Description: "Aromatic rice with mixed vegetables", Price: 280, Category: "Veg Main Course"},
	{Name: "Palak Paneer", Description: "Paneer in spinach gravy", Price: 290, Category: "Veg Main Course"},
	{Name: "Chana Masala", Description: "Chickpeas in spicy gravy", Price: 220, Category: "Veg Main Course"},
	{Name: "Malai Kofta", Description: "Cottage cheese balls in creamy sauce", Price: 320, Category: "Veg Main Course"},
	{Name: "Veg Korma", Description: "Mixed vegetables in cashew gravy", Price: 270, Category: "Veg Main Course"},

	// Non-veg main course
	{Name: "Butter Chicken", Description: "Chicken in creamy tomato sauce", Price: 380, Category: "Non-Veg Main Course"},
	{Name: "Mutton Rogan Josh", Description: "Kashmiri style mutton curry", Price: 450, Category: "Non-Veg Main Course"},
	{Name: "Chicken Biryani", Description: "Fragrant rice layered with spiced chicken", Price: 350, Category: "Non-Veg Main Course"},
	{Name: "Fish Curry", Description: "Fish cooked in spicy coconut gravy", Price: 340, Category: "Non-Veg Main Course"},
	{Name: "Chicken Curry", Description: "Traditional chicken curry", Price: 320, Category: "Non-Veg Main Course"},
	{Name: "Mutton Biryani", Description: "Aromatic rice with tender mutton", Price: 420, Category: "Non-Veg Main Course"},
	{Name: "Prawn Masala", Description: "Prawns in spicy masala gravy", Price: 390, Category: "Non-Veg Main Course"},

	// Breads
	{Name: "Tandoori Roti", Description: "Whole wheat flatbread cooked in clay oven", Price: 40, Category: "Breads"},
	{Name: "Butter Naan", Description: "Soft leavened bread topped with butter", Price: 60, Category: "Breads"},
	{Name: "Garlic Naan", Description: "Naan infused with fresh garlic", Price: 70, Category: "Breads"},
	{Name: "Cheese Kulcha", Description: "Stuffed bread with cheese filling", Price: 90, Category: "Breads"},
	{Name: "Lachha Paratha", Description: "Layered whole wheat bread", Price: 65, Category: "Breads"},
	{Name: "Roomali Roti", Description: "Thin handkerchief bread", Price: 50, Category: "Breads"},
	{Name: "Missi Roti", Description: "Gram flour bread with spices", Price: 55, Category: "Breads"},

	// Desserts
	{Name: "Gulab Jamun", Description: "Fried milk dumplings in sugar syrup", Price: 120, Category: "Desserts"},
	{Name: "Rasmalai", Description: "Soft paneer patties in sweetened milk", Price: 150, Category: "Desserts"},
	{Name: "Vanilla Ice Cream", Description: "Classic vanilla scoop", Price: 100, Category: "Desserts"},
	{Name: "Chocolate Brownie", Description: "Warm brownie with chocolate sauce", Price: 180, Category: "Desserts"},
	{Name: "Rasgulla", Description: "Spongy cottage cheese balls in syrup", Price: 110, Category: "Desserts"},
	{Name: "Kheer", Description: "Rice pudding with nuts", Price: 130, Category: "Desserts"},
	{Name: "Mango Ice Cream", Description: "Seasonal mango flavor", Price: 120, Category: "Desserts"},

	// Drinks
	{Name: "Mineral Water", Description: "1L bottled water", Price: 30, Category: "Drinks"},
	{Name: "Fresh Lime Soda", Description: "Refreshing lime drink (Sweet/Salted)", Price: 80, Category: "Drinks"},
	{Name: "Sweet Lassi", Description: "Traditional yogurt drink", Price: 90, Category: "Drinks"},
	{Name: "Masala Chai", Description: "Indian spiced tea", Price: 40, Category: "Drinks"},
	{Name: "Cold Coffee", Description: "Chilled coffee with vanilla ice cream", Price: 120, Category: "Drinks"},
	{Name: "Soft Drink", Description: "Coke/Sprite/Fanta (300ml)", Price: 50, Category: "Drinks"},
	{Name: "Fresh Juice", Description: "Orange/Mosambi/Watermelon", Price: 100, Category: "Drinks"},
	{Name: "Buttermilk", Description: "Spiced buttermilk", Price: 60, Category: "Drinks"},

	// Miscellaneous
	{Name: "Green Salad", Description: "Sliced cucumber, tomato, carrot, onion", Price: 80, Category: "Miscellaneous"},
	{Name: "Masala Papad", Description: "Roasted papad topped with spicy salad", Price: 50, Category: "Miscellaneous"},
	{Name: "Boondi Raita", Description: "Yogurt with fried gram flour pearls", Price: 90, Category: "Miscellaneous"},
	{Name: "Plain Curd", Description: "Fresh plain yogurt", Price: 60, Category: "Miscellaneous"},
	{Name: "Pickle", Description: "Assorted Indian pickle", Price: 20, Category: "Miscellaneous"},
	{Name: "Chutney", Description: "Coconut/Mint/Tomato chutney", Price: 30, Category: "Miscellaneous"},
	{Name: "Papad", Description: "Plain roasted papad", Price: 40, Category: "Miscellaneous"},
}

// SeedMenu inserts the built-in menu, skipping items that already exist by
// exact name. Returns (added, skipped).
func (r *MenuRepo) SeedMenu(ctx context.Context) (int, int, error) {
	logger := log.FromCtx(ctx)

	var added, skipped int
	for _, item := range menuSeed {
		exists, err := r.exists(ctx, item.Name)
		if err != nil {
			return added, skipped, err
		}
		if exists {
			skipped++
			continue
		}
		if err := r.Insert(ctx, item); err != nil {
			return added, skipped, err
		}
		added++
	}

	logger.Info().Int("added", added).Int("skipped", skipped).Msg("menu seed finished")
	return added, skipped, nil
}
