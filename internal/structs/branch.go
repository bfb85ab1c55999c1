package structs

type Branch struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	ArabicName    *string `json:"arabicName"`
	Address       string  `json:"address"`
	ArabicAddress *string `json:"arabicAddress"`
	OpeningTime   string  `json:"opening_time"`
	ClosingTime   string  `json:"closing_time"`
	Is24Hours     bool    `json:"is24Hours"`
	Active        bool    `json:"active"`
	Image         *string `json:"image"`
}
