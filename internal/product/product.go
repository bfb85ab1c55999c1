package product

import (
	"context"
	"errors"
	"strconv"
	"unicode/utf8"

	"qrmenu/internal/structs"
	"qrmenu/internal/texts"
	"qrmenu/internal/upstream"
	"qrmenu/pkg/logger"
	"qrmenu/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	Module = fx.Provide(New)
)

type (
	Params struct {
		fx.In
		Upstream upstream.Service
		Logger   logger.Logger
	}

	Service interface {
		List(ctx context.Context, brandReference string, branchID int64, categoryID *int64) ([]structs.Product, error)
	}

	service struct {
		upstream upstream.Service
		logger   logger.Logger
	}
)

func New(p Params) Service {
	return &service{
		upstream: p.Upstream,
		logger:   p.Logger,
	}
}

// List fetches every product of a branch, optionally filtered by category.
// Modifiers are requested only for a category scoped fetch.
func (s service) List(ctx context.Context, brandReference string, branchID int64, categoryID *int64) ([]structs.Product, error) {
	resp, err := s.upstream.GetProducts(ctx, Query(brandReference, branchID, categoryID))
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.logger.Error(ctx, "->upstream.GetProducts", zap.Int64("branch", branchID), zap.Error(err))
		}
		return nil, err
	}
	return resp, nil
}

func Query(brandReference string, branchID int64, categoryID *int64) structs.ProductQuery {
	return structs.ProductQuery{
		BrandReference:   brandReference,
		BranchID:         branchID,
		CategoryID:       categoryID,
		PageNo:           upstream.DefaultPageNo,
		PageSize:         upstream.DefaultPageSize,
		IncludeModifiers: categoryID != nil,
	}
}

// Active keeps only active products, in fetch order.
func Active(products []structs.Product) []structs.Product {
	out := make([]structs.Product, 0, len(products))
	for _, p := range products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

func Find(products []structs.Product, id int64) (structs.Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return structs.Product{}, structs.ErrProductNotFound
}

// Image picks the merchant image over image1 and resolves it against base.
func Image(base string, p structs.Product) *string {
	return utils.NormalizeImageURL(base, utils.FirstNonEmpty(p.MerchantImage, p.Image1))
}

func Name(lang utils.Lang, p structs.Product) string {
	return utils.Localize(lang, p.Title, p.ArabicName)
}

func Description(lang utils.Lang, p structs.Product) string {
	primary := ""
	if p.Description != nil {
		primary = *p.Description
	}
	return utils.Localize(lang, primary, p.ArabicDescription)
}

func Card(lang utils.Lang, imageBase string, p structs.Product) structs.ProductCard {
	name := Name(lang, p)
	initial := "P"
	if r, _ := utf8.DecodeRuneInString(name); r != utf8.RuneError {
		initial = string(r)
	}
	return structs.ProductCard{
		ID:          p.ID,
		Name:        name,
		Description: Description(lang, p),
		Price:       p.Price,
		PriceLabel:  utils.FormatPrice(p.Price),
		Image:       Image(imageBase, p),
		Initial:     initial,
	}
}

func Cards(lang utils.Lang, imageBase string, products []structs.Product) []structs.ProductCard {
	out := make([]structs.ProductCard, 0, len(products))
	for _, p := range products {
		out = append(out, Card(lang, imageBase, p))
	}
	return out
}

func Detail(lang utils.Lang, imageBase string, p structs.Product) structs.ProductDetail {
	d := structs.ProductDetail{
		ID:          p.ID,
		Name:        Name(lang, p),
		Description: Description(lang, p),
		Image:       Image(imageBase, p),
		Price:       p.Price,
		PriceLabel:  utils.FormatPrice(p.Price),
		Available:   p.IsActive,
	}

	if p.IsActive {
		d.AvailabilityLabel = texts.Get(lang, texts.Available)
	} else {
		d.AvailabilityLabel = texts.Get(lang, texts.Unavailable)
	}
	if p.Calories != nil && *p.Calories > 0 {
		d.Calories = formatNumber(*p.Calories) + " " + texts.Get(lang, texts.Calories)
	}
	if p.PreparationTime != nil && *p.PreparationTime > 0 {
		d.PreparationTime = formatNumber(*p.PreparationTime) + " " + texts.Get(lang, texts.Minutes)
	}

	if len(p.Modifiers) > 0 {
		d.ModifiersTitle = texts.Get(lang, texts.Customizations)
		for _, m := range p.Modifiers {
			mv := structs.ModifierView{Name: utils.Localize(lang, m.Name, m.ArabicName)}
			for _, o := range m.Options {
				label := utils.Localize(lang, o.Name, o.ArabicName)
				if o.Price > 0 {
					label += " (+" + formatNumber(o.Price) + ")"
				}
				mv.Options = append(mv.Options, label)
			}
			d.Modifiers = append(d.Modifiers, mv)
		}
	}
	return d
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
