package structs

type Theme struct {
	Primary   string `json:"primary" mapstructure:"primary"`
	Secondary string `json:"secondary" mapstructure:"secondary"`
	Accent    string `json:"accent" mapstructure:"accent"`
}

type BranchSettings struct {
	ID                  int64 `json:"id" mapstructure:"id"`
	AllowBackNavigation *bool `json:"allow_back_navigation" mapstructure:"allow_back_navigation"`
}

type Brand struct {
	Slug      string           `json:"slug" mapstructure:"slug"`
	Name      string           `json:"name" mapstructure:"name"`
	NameAr    string           `json:"name_ar" mapstructure:"name_ar"`
	Reference string           `json:"reference" mapstructure:"reference"`
	Logo      string           `json:"logo" mapstructure:"logo"`
	Theme     Theme            `json:"theme" mapstructure:"theme"`
	Default   bool             `json:"default" mapstructure:"default"`
	Branches  []BranchSettings `json:"branches" mapstructure:"branches"`
}
