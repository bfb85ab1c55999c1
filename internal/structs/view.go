package structs

type ViewState string

const (
	StateNoBranchSelected ViewState = "no_branch_selected"
	StateBranchSelected   ViewState = "branch_selected"
	StateBranchNotFound   ViewState = "branch_not_found"
)

type SectionStatus string

const (
	SectionIdle    SectionStatus = "idle"
	SectionLoading SectionStatus = "loading"
	SectionReady   SectionStatus = "ready"
	SectionEmpty   SectionStatus = "empty"
	SectionError   SectionStatus = "error"
)

// Section is the independent load state of one part of the page.
type Section struct {
	Status  SectionStatus `json:"status"`
	Message string        `json:"message,omitempty"`
}

type MenuView struct {
	State      ViewState      `json:"state"`
	Lang       string         `json:"lang"`
	Dir        string         `json:"dir"`
	URL        string         `json:"url"`
	Theme      Theme          `json:"theme"`
	Header     Header         `json:"header"`
	Branches   *BranchList    `json:"branches,omitempty"`
	Categories *CategoryNav   `json:"categories,omitempty"`
	Products   *ProductGrid   `json:"products,omitempty"`
	Detail     *ProductDetail `json:"detail,omitempty"`
	NotFound   *Notice        `json:"not_found,omitempty"`
}

type Header struct {
	Title          string         `json:"title"`
	Subtitle       string         `json:"subtitle,omitempty"`
	Logo           string         `json:"logo,omitempty"`
	Image          *string        `json:"image,omitempty"`
	LanguageToggle LanguageToggle `json:"language_toggle"`
	AllergensImage string         `json:"allergens_image"`
	CanGoBack      bool           `json:"can_go_back"`
	BackURL        string         `json:"back_url,omitempty"`
}

type LanguageToggle struct {
	Lang  string `json:"lang"`
	Label string `json:"label"`
}

type Notice struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	LinkURL string `json:"link_url"`
}

type BranchList struct {
	Section
	Title      string       `json:"title"`
	Subtitle   string       `json:"subtitle"`
	Items      []BranchCard `json:"items"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	TotalPages int          `json:"total_pages"`
	Total      int          `json:"total"`
	HasPrev    bool         `json:"has_prev"`
	HasNext    bool         `json:"has_next"`
}

type BranchCard struct {
	ID      int64   `json:"id"`
	Slug    string  `json:"slug"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Hours   string  `json:"hours"`
	Image   *string `json:"image,omitempty"`
	MenuURL string  `json:"menu_url"`
	QRURL   string  `json:"qr_url"`
}

type CategoryNav struct {
	Section
	Tabs []CategoryTab `json:"tabs"`
}

type CategoryTab struct {
	ID       *int64 `json:"id"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

type ProductGrid struct {
	Section
	Items []ProductCard `json:"items"`
}

type ProductCard struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	PriceLabel  string  `json:"price_label"`
	Image       *string `json:"image,omitempty"`
	Initial     string  `json:"initial"`
}

type ProductDetail struct {
	ID                int64          `json:"id"`
	Name              string         `json:"name"`
	Description       string         `json:"description,omitempty"`
	Image             *string        `json:"image,omitempty"`
	Price             float64        `json:"price"`
	PriceLabel        string         `json:"price_label"`
	Available         bool           `json:"available"`
	AvailabilityLabel string         `json:"availability_label"`
	Calories          string         `json:"calories,omitempty"`
	PreparationTime   string         `json:"preparation_time,omitempty"`
	ModifiersTitle    string         `json:"modifiers_title,omitempty"`
	Modifiers         []ModifierView `json:"modifiers,omitempty"`
}

type ModifierView struct {
	Name    string   `json:"name"`
	Options []string `json:"options,omitempty"`
}
