package branch

import (
	"context"
	"errors"

	"qrmenu/internal/structs"
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
		List(ctx context.Context, brandReference string) ([]structs.Branch, error)
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

// List returns the active branches of a brand in upstream order.
func (s service) List(ctx context.Context, brandReference string) ([]structs.Branch, error) {
	branches, err := s.upstream.GetBranches(ctx, brandReference)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			s.logger.Error(ctx, "->upstream.GetBranches", zap.String("brand", brandReference), zap.Error(err))
		}
		return nil, err
	}
	return Active(branches), nil
}

func Active(branches []structs.Branch) []structs.Branch {
	out := make([]structs.Branch, 0, len(branches))
	for _, b := range branches {
		if b.Active {
			out = append(out, b)
		}
	}
	return out
}

func Slug(b structs.Branch) string {
	return utils.Slug(b.Name, b.ID)
}

// Resolve finds the branch a URL slug points at by regenerating every slug.
// Slugs from before ids were always appended still resolve when unambiguous.
func Resolve(branches []structs.Branch, slug string) (structs.Branch, error) {
	if slug == "" {
		return structs.Branch{}, structs.ErrBranchNotFound
	}
	for _, b := range branches {
		if Slug(b) == slug {
			return b, nil
		}
	}

	var (
		match structs.Branch
		found int
	)
	for _, b := range branches {
		if utils.LegacySlug(b.Name, b.ID) == slug {
			match = b
			found++
		}
	}
	if found == 1 {
		return match, nil
	}
	return structs.Branch{}, structs.ErrBranchNotFound
}

// Find returns the branch with id.
func Find(branches []structs.Branch, id int64) (structs.Branch, error) {
	for _, b := range branches {
		if b.ID == id {
			return b, nil
		}
	}
	return structs.Branch{}, structs.ErrBranchNotFound
}

// Hours is the opening hours line of a branch card.
func Hours(b structs.Branch, label24h string) string {
	if b.Is24Hours {
		return label24h
	}
	if b.OpeningTime == "" && b.ClosingTime == "" {
		return ""
	}
	return b.OpeningTime + " - " + b.ClosingTime
}
