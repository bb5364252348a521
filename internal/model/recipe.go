package model

// Category is a named grouping of recipes with a representative
// thumbnail. The display name doubles as the filter key.
type Category struct {
	ID        int    `json:"id"`
	Category  string `json:"category"`
	Thumbnail string `json:"thumbnail"`
}

// Recipe mirrors the keto-diet API wire format: flat indexed
// ingredient/measurement/direction columns rather than arrays, with
// null for unused slots. Recipes are immutable once fetched.
type Recipe struct {
	ID       int      `json:"id"`
	Recipe   string   `json:"recipe"`
	Category Category `json:"category"`

	PrepTimeInMinutes int     `json:"prep_time_in_minutes"`
	PrepTimeNote      *string `json:"prep_time_note"`
	CookTimeInMinutes int     `json:"cook_time_in_minutes"`
	CookTimeNote      *string `json:"cook_time_note"`
	Difficulty        string  `json:"difficulty"`
	Serving           int     `json:"serving"`

	Calories             float64 `json:"calories"`
	FatInGrams           float64 `json:"fat_in_grams"`
	CarbohydratesInGrams float64 `json:"carbohydrates_in_grams"`
	ProteinInGrams       float64 `json:"protein_in_grams"`

	Measurement1  *float64 `json:"measurement_1"`
	Measurement2  *float64 `json:"measurement_2"`
	Measurement3  *float64 `json:"measurement_3"`
	Measurement4  *float64 `json:"measurement_4"`
	Measurement5  *float64 `json:"measurement_5"`
	Measurement6  *float64 `json:"measurement_6"`
	Measurement7  *float64 `json:"measurement_7"`
	Measurement8  *float64 `json:"measurement_8"`
	Measurement9  *float64 `json:"measurement_9"`
	Measurement10 *float64 `json:"measurement_10"`

	Ingredient1  *string `json:"ingredient_1"`
	Ingredient2  *string `json:"ingredient_2"`
	Ingredient3  *string `json:"ingredient_3"`
	Ingredient4  *string `json:"ingredient_4"`
	Ingredient5  *string `json:"ingredient_5"`
	Ingredient6  *string `json:"ingredient_6"`
	Ingredient7  *string `json:"ingredient_7"`
	Ingredient8  *string `json:"ingredient_8"`
	Ingredient9  *string `json:"ingredient_9"`
	Ingredient10 *string `json:"ingredient_10"`

	DirectionsStep1  *string `json:"directions_step_1"`
	DirectionsStep2  *string `json:"directions_step_2"`
	DirectionsStep3  *string `json:"directions_step_3"`
	DirectionsStep4  *string `json:"directions_step_4"`
	DirectionsStep5  *string `json:"directions_step_5"`
	DirectionsStep6  *string `json:"directions_step_6"`
	DirectionsStep7  *string `json:"directions_step_7"`
	DirectionsStep8  *string `json:"directions_step_8"`
	DirectionsStep9  *string `json:"directions_step_9"`
	DirectionsStep10 *string `json:"directions_step_10"`

	Image string `json:"image"`
}

// IngredientMeasurement is one populated ingredient slot.
type IngredientMeasurement struct {
	Ingredient  string   `json:"ingredient"`
	Measurement *float64 `json:"measurement"`
}

// Ingredients collects the populated ingredient/measurement pairs in
// slot order, skipping empty slots.
func (r *Recipe) Ingredients() []IngredientMeasurement {
	ingredients := []*string{
		r.Ingredient1, r.Ingredient2, r.Ingredient3, r.Ingredient4, r.Ingredient5,
		r.Ingredient6, r.Ingredient7, r.Ingredient8, r.Ingredient9, r.Ingredient10,
	}
	measurements := []*float64{
		r.Measurement1, r.Measurement2, r.Measurement3, r.Measurement4, r.Measurement5,
		r.Measurement6, r.Measurement7, r.Measurement8, r.Measurement9, r.Measurement10,
	}

	var out []IngredientMeasurement
	for i := range ingredients {
		if ingredients[i] == nil || *ingredients[i] == "" {
			continue
		}
		out = append(out, IngredientMeasurement{
			Ingredient:  *ingredients[i],
			Measurement: measurements[i],
		})
	}
	return out
}

// Directions collects the populated direction steps in order.
func (r *Recipe) Directions() []string {
	steps := []*string{
		r.DirectionsStep1, r.DirectionsStep2, r.DirectionsStep3, r.DirectionsStep4, r.DirectionsStep5,
		r.DirectionsStep6, r.DirectionsStep7, r.DirectionsStep8, r.DirectionsStep9, r.DirectionsStep10,
	}

	var out []string
	for _, s := range steps {
		if s == nil || *s == "" {
			continue
		}
		out = append(out, *s)
	}
	return out
}
