package services

import "strings"

// DefaultCalories is the fallback estimate for foods the table doesn't
// know, and for images the model recognized nothing in.
const DefaultCalories = 250

// Per-serving calorie estimates for the labels the food model commonly
// returns. Read-only after init; safe to share across requests.
var calorieTable = map[string]int{
	"apple":     95,
	"banana":    105,
	"bread":     80,
	"burger":    500,
	"chicken":   335,
	"egg":       78,
	"fish":      230,
	"ice cream": 270,
	"pasta":     350,
	"pizza":     300,
	"rice":      200,
	"salad":     150,
	"sandwich":  400,
	"soup":      170,
	"steak":     450,
	"sushi":     255,
}

// LookupCalories is total: a label missing from the table degrades to
// DefaultCalories rather than erroring.
func LookupCalories(name string) int {
	if kcal, ok := calorieTable[name]; ok {
		return kcal
	}
	return DefaultCalories
}

// CalorieEstimate is the single (food, calories) result derived from a
// ranked concept list.
type CalorieEstimate struct {
	FoodName string `json:"food_name"`
	Calories int    `json:"calories"`
}

// EstimateCalories reduces a ranked concept list to one estimate. The
// first concept wins — the vendor already ranks by confidence, and ties
// resolve to whichever came first. An empty list means "no estimate
// possible" and yields the unknown/default pair; this is a defined
// result, not an error.
func EstimateCalories(concepts []FoodConcept) CalorieEstimate {
	if len(concepts) == 0 {
		return CalorieEstimate{FoodName: "unknown", Calories: DefaultCalories}
	}
	name := strings.ToLower(concepts[0].Name)
	return CalorieEstimate{FoodName: name, Calories: LookupCalories(name)}
}
