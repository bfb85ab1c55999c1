package category

import (
	"context"
	"errors"
	"sort"

	"qrmenu/internal/structs"
	"qrmenu/internal/upstream"
	"qrmenu/pkg/logger"
	"qrmenu/pkg/utils"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
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
		List(ctx context.Context, brandReference string, branchID int64) ([]structs.Category, error)
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

func (s service) List(ctx context.Context, brandReference string, branchID int64) ([]structs.Category, error) {
	resp, err := s.upstream.GetCategories(ctx, brandReference, &branchID)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.logger.Error(ctx, "->upstream.GetCategories", zap.Int64("branch", branchID), zap.Error(err))
		}
		return nil, err
	}
	return resp, nil
}

// Label is the category name in lang.
func Label(lang utils.Lang, c structs.Category) string {
	return utils.Localize(lang, c.Name, c.ArabicName)
}

// Order puts categories with a positive sort order first, ascending, then the
// unordered ones alphabetically by their label in lang.
func Order(lang utils.Lang, categories []structs.Category) []structs.Category {
	var ordered, unordered []structs.Category
	for _, c := range categories {
		if c.SortOrder > 0 {
			ordered = append(ordered, c)
		} else {
			unordered = append(unordered, c)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SortOrder < ordered[j].SortOrder
	})

	col := collate.New(lang.Tag())
	sort.SliceStable(unordered, func(i, j int) bool {
		return col.CompareString(Label(lang, unordered[i]), Label(lang, unordered[j])) < 0
	})

	return append(ordered, unordered...)
}

// Tabs prepends the synthetic "All" tab (nil id) to the ordered categories.
func Tabs(lang utils.Lang, ordered []structs.Category, selected *int64, allLabel string) []structs.CategoryTab {
	tabs := make([]structs.CategoryTab, 0, len(ordered)+1)
	tabs = append(tabs, structs.CategoryTab{Label: allLabel, Selected: selected == nil})
	for _, c := range ordered {
		id := c.ID
		tabs = append(tabs, structs.CategoryTab{
			ID:       &id,
			Label:    Label(lang, c),
			Selected: selected != nil && *selected == c.ID,
		})
	}
	return tabs
}
