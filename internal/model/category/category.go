package category

// Category is a static browse category shown by the frontend.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Seed provides the fixed category list, in display order.
func Seed() []Category {
	return []Category{
		{ID: 1, Name: "Business", Slug: "business"},
		{ID: 2, Name: "Marketing", Slug: "marketing"},
		{ID: 3, Name: "Sales", Slug: "sales"},
		{ID: 4, Name: "Customer Support", Slug: "customer-support"},
		{ID: 5, Name: "Education", Slug: "education"},
		{ID: 6, Name: "Language Learning", Slug: "language-learning"},
		{ID: 7, Name: "Writing", Slug: "writing"},
		{ID: 8, Name: "Translation", Slug: "translation"},
		{ID: 9, Name: "Programming", Slug: "programming"},
		{ID: 10, Name: "Data Analysis", Slug: "data-analysis"},
		{ID: 11, Name: "Design", Slug: "design"},
		{ID: 12, Name: "Health & Wellness", Slug: "health-wellness"},
		{ID: 13, Name: "Finance", Slug: "finance"},
		{ID: 14, Name: "Legal", Slug: "legal"},
		{ID: 15, Name: "Human Resources", Slug: "human-resources"},
		{ID: 16, Name: "Travel", Slug: "travel"},
		{ID: 17, Name: "Entertainment", Slug: "entertainment"},
	}
}
