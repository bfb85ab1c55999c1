package menu

import (
	"context"
	"errors"
	"sync"

	"qrmenu/internal/branch"
	"qrmenu/internal/category"
	"qrmenu/internal/product"
	"qrmenu/internal/structs"
	"qrmenu/internal/texts"
	"qrmenu/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	slotBranches   = "branches"
	slotCategories = "categories"
	slotProducts   = "products"
)

// View is the menu page state machine. Branches, categories and products
// load independently and each section keeps its own status.
type View struct {
	svc   *service
	coord *Coordinator
	paths Paths

	mu    sync.Mutex
	brand structs.Brand
	lang  utils.Lang
	state structs.ViewState
	url   string

	branches      []structs.Branch
	branchSection structs.Section
	pager         *utils.Paginator

	branch   *structs.Branch
	category *int64

	categories      []structs.Category
	categorySection structs.Section

	products       []structs.Product
	productSection structs.Section

	detail *structs.Product
}

// Location is the part of the view state carried by the page URL.
type Location struct {
	Slug     string
	Category *int64
	Product  *int64
	Page     int
}

// Load fetches the branch list and, when slug is set, resolves it and loads
// that branch's menu. An unknown slug ends in the BranchNotFound state.
func (v *View) Load(ctx context.Context, slug string) error {
	return v.Restore(ctx, Location{Slug: slug})
}

// Restore rebuilds the view from a URL location. The category filter is
// applied before the first product fetch.
func (v *View) Restore(ctx context.Context, loc Location) error {
	if err := v.loadBranches(ctx); err != nil {
		return err
	}
	if loc.Page > 0 {
		v.GoToPage(loc.Page)
	}
	if loc.Slug == "" {
		return nil
	}

	v.mu.Lock()
	if v.branchSection.Status == structs.SectionError {
		v.mu.Unlock()
		return nil
	}
	b, err := branch.Resolve(v.branches, loc.Slug)
	if err != nil {
		v.state = structs.StateBranchNotFound
		v.mu.Unlock()
		return err
	}
	v.enterBranch(b)
	v.category = loc.Category
	v.mu.Unlock()

	if err = v.loadBranchContent(ctx); err != nil {
		return err
	}
	if loc.Product == nil {
		return nil
	}

	// a failed product fetch leaves nothing to open, the section shows the error
	v.mu.Lock()
	failed := v.productSection.Status == structs.SectionError
	v.mu.Unlock()
	if failed {
		return nil
	}
	return v.OpenProduct(*loc.Product)
}

// SelectBranch switches to branch id, resets the category filter to All and
// returns the branch's canonical URL.
func (v *View) SelectBranch(ctx context.Context, id int64) (string, error) {
	v.mu.Lock()
	b, err := branch.Find(v.branches, id)
	if err != nil {
		v.mu.Unlock()
		return "", err
	}
	v.enterBranch(b)
	url := v.url
	v.mu.Unlock()

	return url, v.loadBranchContent(ctx)
}

// SelectCategory refetches products for id, nil meaning all categories.
// The open product detail and the branch stay untouched.
func (v *View) SelectCategory(ctx context.Context, id *int64) error {
	v.mu.Lock()
	if v.branch == nil {
		v.mu.Unlock()
		return structs.ErrNoBranchSelected
	}
	v.category = id
	v.mu.Unlock()

	return v.loadProducts(ctx)
}

func (v *View) OpenProduct(id int64) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.branch == nil {
		return structs.ErrNoBranchSelected
	}
	p, err := product.Find(v.products, id)
	if err != nil {
		return err
	}
	v.detail = &p
	return nil
}

func (v *View) CloseProduct() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.detail = nil
}

// BackToBranches clears the branch and category selection and returns the
// branch list URL.
func (v *View) BackToBranches() (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.branch != nil && !v.svc.brands.AllowBackNavigation(v.brand, v.branch.ID) {
		return "", structs.ErrBackNavigationDisabled
	}

	v.coord.Cancel(slotCategories)
	v.coord.Cancel(slotProducts)

	v.state = structs.StateNoBranchSelected
	v.branch = nil
	v.category = nil
	v.detail = nil
	v.categories = nil
	v.products = nil
	v.categorySection = structs.Section{Status: structs.SectionIdle}
	v.productSection = structs.Section{Status: structs.SectionIdle}
	v.url = v.paths.Menu()
	return v.url, nil
}

func (v *View) NextPage() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pager.Next(len(v.branches))
}

func (v *View) PrevPage() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pager.Prev()
}

// SetPage selects a page as is. A page past the end renders no branches.
func (v *View) SetPage(page int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pager.SetPage(page)
}

// GoToPage selects page clamped to the pages that exist.
func (v *View) GoToPage(page int) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pager.Goto(page, len(v.branches))
}

func (v *View) SetLanguage(lang utils.Lang) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.lang = lang
}

func (v *View) Lang() utils.Lang {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lang
}

func (v *View) State() structs.ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// enterBranch must be called with mu held.
func (v *View) enterBranch(b structs.Branch) {
	v.state = structs.StateBranchSelected
	v.branch = &b
	v.category = nil
	v.detail = nil
	v.url = v.paths.Branch(branch.Slug(b))
}

// current reports whether key still matches the selected branch. Must be
// called with mu held.
func (v *View) current(key Key) bool {
	return v.branch != nil && v.branch.ID == key.Branch
}

func (v *View) loadBranches(ctx context.Context) error {
	v.mu.Lock()
	v.branchSection = structs.Section{Status: structs.SectionLoading}
	ref := v.brand.Reference
	v.mu.Unlock()

	ctx, t := v.coord.Start(ctx, slotBranches, Key{Brand: ref})
	branches, err := v.svc.branch.List(ctx, ref)
	if v.coord.Finish(t) != nil {
		return nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if err != nil {
		if errors.Is(err, structs.ErrMissingBrandReference) {
			return err
		}
		v.branches = nil
		v.branchSection = structs.Section{Status: structs.SectionError, Message: texts.ErrorLoadBranches}
		return nil
	}

	v.branches = branches
	if len(branches) == 0 {
		v.branchSection = structs.Section{Status: structs.SectionEmpty, Message: texts.NoBranches}
	} else {
		v.branchSection = structs.Section{Status: structs.SectionReady}
	}
	return nil
}

// loadBranchContent fetches categories and products of the selected branch
// concurrently.
func (v *View) loadBranchContent(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return v.loadCategories(ctx) })
	g.Go(func() error { return v.loadProducts(ctx) })
	return g.Wait()
}

func (v *View) loadCategories(ctx context.Context) error {
	v.mu.Lock()
	if v.branch == nil {
		v.mu.Unlock()
		return nil
	}
	key := Key{Brand: v.brand.Reference, Branch: v.branch.ID}
	v.categorySection = structs.Section{Status: structs.SectionLoading}
	v.mu.Unlock()

	ctx, t := v.coord.Start(ctx, slotCategories, key)
	cats, err := v.svc.category.List(ctx, key.Brand, key.Branch)
	if v.coord.Finish(t) != nil {
		v.svc.logger.Debug(ctx, "dropped stale categories", zap.String("key", t.Key().String()))
		return nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.current(key) {
		return nil
	}
	if err != nil {
		v.categories = nil
		v.categorySection = structs.Section{Status: structs.SectionError, Message: texts.ErrorLoadCategories}
		return nil
	}
	v.categories = cats
	v.categorySection = structs.Section{Status: structs.SectionReady}
	return nil
}

func (v *View) loadProducts(ctx context.Context) error {
	v.mu.Lock()
	if v.branch == nil {
		v.mu.Unlock()
		return nil
	}
	key := Key{Brand: v.brand.Reference, Branch: v.branch.ID, Category: v.category}
	v.productSection = structs.Section{Status: structs.SectionLoading}
	v.mu.Unlock()

	ctx, t := v.coord.Start(ctx, slotProducts, key)
	products, err := v.svc.product.List(ctx, key.Brand, key.Branch, key.Category)
	if v.coord.Finish(t) != nil {
		v.svc.logger.Debug(ctx, "dropped stale products", zap.String("key", t.Key().String()))
		return nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.current(key) {
		return nil
	}
	if err != nil {
		v.products = nil
		v.productSection = structs.Section{Status: structs.SectionError, Message: texts.ErrorLoadProducts}
		return nil
	}

	v.products = product.Active(products)
	if len(v.products) == 0 {
		v.productSection = structs.Section{Status: structs.SectionEmpty, Message: texts.NoProducts}
	} else {
		v.productSection = structs.Section{Status: structs.SectionReady}
	}
	return nil
}

// Snapshot renders the current state in the view's language.
func (v *View) Snapshot() structs.MenuView {
	v.mu.Lock()
	defer v.mu.Unlock()

	lang := v.lang
	out := structs.MenuView{
		State:  v.state,
		Lang:   string(lang),
		Dir:    lang.Dir(),
		URL:    v.url,
		Theme:  v.brand.Theme,
		Header: v.header(),
	}

	switch v.state {
	case structs.StateNoBranchSelected:
		out.Branches = v.branchList()
	case structs.StateBranchNotFound:
		out.NotFound = &structs.Notice{
			Title:   texts.Get(lang, texts.BranchNotFound),
			Message: texts.Get(lang, texts.BranchNotFoundHint),
			LinkURL: v.paths.Menu(),
		}
	case structs.StateBranchSelected:
		out.Categories = v.categoryNav()
		out.Products = v.productGrid()
		if v.detail != nil {
			d := product.Detail(lang, v.svc.imageBase, *v.detail)
			out.Detail = &d
		}
	}
	return out
}

func (v *View) header() structs.Header {
	lang := v.lang
	other := lang.Other()
	h := structs.Header{
		Title: utils.Localize(lang, v.brand.Name, &v.brand.NameAr),
		Logo:  v.brand.Logo,
		LanguageToggle: structs.LanguageToggle{
			Lang:  string(other),
			Label: texts.Get(other, texts.LanguageToggleLabel),
		},
		AllergensImage: AllergensImage,
	}
	if v.branch != nil {
		h.Subtitle = utils.Localize(lang, v.branch.Name, v.branch.ArabicName)
		h.Image = utils.NormalizeImageURL(v.svc.imageBase, v.branch.Image)
		if v.svc.brands.AllowBackNavigation(v.brand, v.branch.ID) {
			h.CanGoBack = true
			h.BackURL = v.paths.Menu()
		}
	}
	return h
}

func (v *View) section(s structs.Section) structs.Section {
	if s.Message != "" {
		s.Message = texts.Get(v.lang, s.Message)
	}
	return s
}

func (v *View) branchList() *structs.BranchList {
	lang := v.lang
	total := len(v.branches)
	pages := v.pager.TotalPages(total)
	page := v.pager.Page()

	list := &structs.BranchList{
		Section:    v.section(v.branchSection),
		Title:      texts.Get(lang, texts.OurBranches),
		Subtitle:   texts.Get(lang, texts.SelectBranch),
		Items:      []structs.BranchCard{},
		Page:       page,
		PageSize:   v.pager.PageSize(),
		TotalPages: pages,
		Total:      total,
		HasPrev:    page > 1,
		HasNext:    page < pages,
	}
	if list.Status == structs.SectionError {
		list.Message += ". " + texts.Get(lang, texts.TryAgainLater)
	}

	for _, b := range utils.PageOf(v.pager, v.branches) {
		slug := branch.Slug(b)
		list.Items = append(list.Items, structs.BranchCard{
			ID:      b.ID,
			Slug:    slug,
			Name:    utils.Localize(lang, b.Name, b.ArabicName),
			Address: utils.Localize(lang, b.Address, b.ArabicAddress),
			Hours:   branch.Hours(b, texts.Get(lang, texts.Hours24)),
			Image:   utils.NormalizeImageURL(v.svc.imageBase, b.Image),
			MenuURL: v.paths.Branch(slug),
			QRURL:   v.paths.QR(slug),
		})
	}
	return list
}

func (v *View) categoryNav() *structs.CategoryNav {
	nav := &structs.CategoryNav{Section: v.section(v.categorySection)}
	ordered := category.Order(v.lang, v.categories)
	nav.Tabs = category.Tabs(v.lang, ordered, v.category, texts.Get(v.lang, texts.All))
	return nav
}

func (v *View) productGrid() *structs.ProductGrid {
	return &structs.ProductGrid{
		Section: v.section(v.productSection),
		Items:   product.Cards(v.lang, v.svc.imageBase, v.products),
	}
}
