package service

import "MuscleTracker/internal/model"

// defaultCatalog — стартовый каталог продуктов нового пользователя.
// Значения макросов — граммы на указанную порцию.
var defaultCatalog = []struct {
	name, category, unit string
	protein, carbs, fat  float64
}{
	// Grains & Carbs
	{"Matta rice", "Grains & Carbs", "100g cooked", 7, 78, 0.8},
	{"Whole wheat roti", "Grains & Carbs", "1 roti (~50g)", 6, 35, 0.6},
	{"Oats (plain)", "Grains & Carbs", "40g dry", 5.2, 25, 2},

	// Cooked Dishes
	{"Soya biriyani", "Cooked Dishes", "1 cup (~200g)", 18, 45, 8},
	{"Paneer biriyani", "Cooked Dishes", "1 cup (~200g)", 20, 42, 12},
	{"Egg curry", "Cooked Dishes", "1 serving (~150g)", 12, 5, 10},
	{"Potato curry", "Cooked Dishes", "1 serving (~150g)", 3, 28, 7},
	{"Cabbage curry", "Cooked Dishes", "1 serving (~150g)", 4, 15, 4},
	{"Green gram curry", "Cooked Dishes", "1 cup (~200g)", 14, 30, 2},

	// Breakfast Foods (but can be used in any meal)
	{"Dosa", "Common Foods", "1 dosa (~80g)", 3, 22, 3},
	{"Appam (Kerala)", "Common Foods", "1 appam (~70g)", 2, 20, 1},
	{"Chutney (coconut)", "Common Foods", "2 tbsp (~40g)", 1, 3, 4},
	{"Chapathi", "Common Foods", "1 piece (~50g)", 6, 35, 0.6},
	{"Poori", "Common Foods", "1 piece (~30g)", 2, 15, 5},

	// Proteins
	{"Egg", "Proteins", "1 piece", 6, 0.3, 5},
	{"Soya chunks", "Proteins", "50g", 35, 10, 1},
	{"Toor/Moong dal", "Proteins", "100g cooked", 9, 20, 0.8},
	{"Chicken (skinless)", "Proteins", "100g cooked", 27, 0, 2},
	{"Peanuts", "Proteins", "30g handful", 7, 3, 20},
	{"Curd (low-fat)", "Dairy", "100g", 3, 4, 1},

	// Vegetables
	{"Onion", "Vegetables", "100g", 1, 9, 0},
	{"Tomato", "Vegetables", "100g", 0.5, 3.5, 0},
	{"Cucumber", "Vegetables", "100g", 0.4, 1.6, 0},
	{"Carrot", "Vegetables", "100g", 0.8, 6, 0},
	{"Beans/Cabbage/Spinach", "Vegetables", "100g", 2.5, 6, 0},

	// Fruits
	{"Banana", "Fruits", "1 medium (~100g)", 1, 23, 0.3},
	{"Papaya", "Fruits", "1 cup (~150g)", 0.8, 16, 0},
	{"Orange/Mosambi", "Fruits", "1 piece (~150g)", 0.9, 12, 0.1},
	{"Guava", "Fruits", "1 medium (~100g)", 2.5, 14, 0.2},
	{"Apple", "Fruits", "1 medium (~100g)", 0.3, 14, 0.2},
	{"Grapes", "Fruits", "100g", 0.6, 17, 0.2},

	// Beverages
	{"Coffee (with milk)", "Beverages", "1 cup (~150ml)", 2, 5, 2},
	{"Tea (with milk)", "Beverages", "1 cup (~150ml)", 1.5, 4, 1.5},
	{"Lemon juice (no salt)", "Beverages", "1 glass (~200ml)", 0.2, 2, 0},
	{"Lemon honey water", "Beverages", "1 glass (~200ml)", 0.2, 12, 0},

	// Fats & Misc
	{"Coconut/Sunflower oil", "Fats & Oils", "1 tbsp (~15ml)", 0, 0, 13.5},
	{"Honey/Jaggery", "Sweeteners", "1 tbsp (~20g)", 0, 16, 0},
	{"Peanut butter", "Fats & Oils", "1 tbsp (~15g)", 4, 3, 8},
}

// DefaultFoods возвращает свежие записи стартового каталога
// с посчитанными калориями. Каждый вызов — новый срез.
func DefaultFoods() []model.Food {
	foods := make([]model.Food, 0, len(defaultCatalog))
	for _, d := range defaultCatalog {
		foods = append(foods, model.Food{
			Name:     d.name,
			Category: d.category,
			Unit:     d.unit,
			Protein:  d.protein,
			Carbs:    d.carbs,
			Fat:      d.fat,
			Calories: Calories(d.protein, d.carbs, d.fat),
		})
	}
	return foods
}
