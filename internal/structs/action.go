package structs

type ActionType string

const (
	ActionSelectBranch   ActionType = "select_branch"
	ActionSelectCategory ActionType = "select_category"
	ActionOpenProduct    ActionType = "open_product"
	ActionCloseProduct   ActionType = "close_product"
	ActionBack           ActionType = "back"
	ActionNextPage       ActionType = "next_page"
	ActionPrevPage       ActionType = "prev_page"
	ActionSetPage        ActionType = "set_page"
	ActionGoToPage       ActionType = "go_to_page"
	ActionSetLanguage    ActionType = "set_language"
)

// MenuAction is one user interaction applied to an open menu session.
// ID is the branch, category or product id depending on Type. A nil ID on
// select_category selects all categories.
type MenuAction struct {
	Type ActionType `json:"type" binding:"required"`
	ID   *int64     `json:"id"`
	Page int        `json:"page"`
	Lang string     `json:"lang"`
}
