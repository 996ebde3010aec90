package product

type Product struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Stock    int     `json:"stock"`
	Category string  `json:"category"`
}

type CreateProductParams struct {
	Name     string
	Price    float64
	Category string
	Stock    int
	ImageURL string
}

type ListOptions struct {
	Search   string
	Category string
}
