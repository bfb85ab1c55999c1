package structs

type Product struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	ArabicName        *string    `json:"arabicName,omitempty"`
	Description       *string    `json:"description,omitempty"`
	ArabicDescription *string    `json:"arabicDescription,omitempty"`
	Price             float64    `json:"price"`
	IsActive          bool       `json:"is_active"`
	Image1            *string    `json:"image1,omitempty"`
	MerchantImage     *string    `json:"merchant_image,omitempty"`
	Modifiers         []Modifier `json:"modifiers,omitempty"`
	Calories          *float64   `json:"calories,omitempty"`
	PreparationTime   *float64   `json:"preparationTime,omitempty"`
}

type Modifier struct {
	Name       string           `json:"name"`
	ArabicName *string          `json:"arabicName,omitempty"`
	Options    []ModifierOption `json:"options,omitempty"`
}

type ModifierOption struct {
	Name       string  `json:"name"`
	ArabicName *string `json:"arabicName,omitempty"`
	Price      float64 `json:"price"`
}

// ProductQuery is the parameter tuple of one product fetch.
type ProductQuery struct {
	BrandReference   string
	BranchID         int64
	CategoryID       *int64
	PageNo           int
	PageSize         int
	IncludeModifiers bool
}
