package openfoodfacts

// Product is the subset of an Open Food Facts record this tool consumes.
// One Product is returned per lookup; absence of a match is reported as
// ErrNotFound, never as a partial Product.
type Product struct {
	Code           string     `json:"code"`
	ProductName    string     `json:"product_name"`
	Brands         string     `json:"brands"`
	Categories     string     `json:"categories"`
	Quantity       string     `json:"quantity"`
	ServingSize    string     `json:"serving_size"`
	Nutriments     Nutriments `json:"nutriments"`
	NutritionGrade string     `json:"nutrition_grades"`
}

// Nutriments holds the per-100g nutrient values published by Open Food Facts.
type Nutriments struct {
	EnergyKcal    float64 `json:"energy-kcal_100g"`
	EnergyKJ      float64 `json:"energy-kj_100g"`
	Fat           float64 `json:"fat_100g"`
	SaturatedFat  float64 `json:"saturated-fat_100g"`
	Carbohydrates float64 `json:"carbohydrates_100g"`
	Sugars        float64 `json:"sugars_100g"`
	Fiber         float64 `json:"fiber_100g"`
	Proteins      float64 `json:"proteins_100g"`
	Salt          float64 `json:"salt_100g"`
	Sodium        float64 `json:"sodium_100g"`
}
