package menu

import (
	"context"
	"fmt"

	"qrmenu/internal/structs"
	"qrmenu/pkg/utils"
)

// Apply runs one user interaction against the view. Unknown actions and
// missing arguments end in ErrBadRequest.
func (v *View) Apply(ctx context.Context, a structs.MenuAction) error {
	switch a.Type {
	case structs.ActionSelectBranch:
		if a.ID == nil {
			return fmt.Errorf("%w: branch id is required", structs.ErrBadRequest)
		}
		_, err := v.SelectBranch(ctx, *a.ID)
		return err
	case structs.ActionSelectCategory:
		return v.SelectCategory(ctx, a.ID)
	case structs.ActionOpenProduct:
		if a.ID == nil {
			return fmt.Errorf("%w: product id is required", structs.ErrBadRequest)
		}
		return v.OpenProduct(*a.ID)
	case structs.ActionCloseProduct:
		v.CloseProduct()
	case structs.ActionBack:
		_, err := v.BackToBranches()
		return err
	case structs.ActionNextPage:
		v.NextPage()
	case structs.ActionPrevPage:
		v.PrevPage()
	case structs.ActionSetPage:
		if a.Page < 1 {
			return fmt.Errorf("%w: page must be positive", structs.ErrBadRequest)
		}
		v.SetPage(a.Page)
	case structs.ActionGoToPage:
		v.GoToPage(a.Page)
	case structs.ActionSetLanguage:
		lang, ok := utils.ParseLang(a.Lang)
		if !ok {
			return fmt.Errorf("%w: unsupported language %q", structs.ErrBadRequest, a.Lang)
		}
		v.SetLanguage(lang)
	default:
		return fmt.Errorf("%w: unknown action %q", structs.ErrBadRequest, a.Type)
	}
	return nil
}
