package structs

type Category struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	ArabicName *string `json:"arabicName"`
	SortOrder  int64   `json:"sortOrder"`
}
