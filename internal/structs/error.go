package structs

import "errors"

var (
	ErrBadRequest             = errors.New("bad request")
	ErrNotFound               = errors.New("not found")
	ErrBrandNotFound          = errors.New("brand not found")
	ErrBranchNotFound         = errors.New("branch not found")
	ErrProductNotFound        = errors.New("product not found")
	ErrMissingBrandReference  = errors.New("brandReference is required")
	ErrBackNavigationDisabled = errors.New("back navigation disabled for branch")
	ErrNoBranchSelected       = errors.New("no branch selected")
	ErrUpstream               = errors.New("upstream error")
	ErrSuperseded             = errors.New("request superseded by a newer one")
)
