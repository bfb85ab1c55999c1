package structs

// Envelope is the ordering API's response wrapper.
type Envelope[T any] struct {
	IsError bool   `json:"isError"`
	Message string `json:"message"`
	Data    []T    `json:"data"`
}
