package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"qrmenu/internal/structs"
	"qrmenu/pkg/cache"
	"qrmenu/pkg/config"
	"qrmenu/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	Module = fx.Provide(New)
)

type Endpoint string

const (
	Branches   Endpoint = "branches"
	Categories Endpoint = "categories"
	Products   Endpoint = "products"
)

const (
	DefaultPageNo   = 1
	DefaultPageSize = 1000

	maxBodyBytes = 10 << 20
)

// StatusError is returned when the ordering API answers with a non-2xx status.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API responded with status: %d", e.Status)
}

func (e *StatusError) Unwrap() error { return structs.ErrUpstream }

type (
	Doer interface {
		Do(req *http.Request) (*http.Response, error)
	}

	Params struct {
		fx.In
		Logger logger.Logger
		Config config.IConfig
		Cache  cache.ICache
	}

	Service interface {
		GetBranches(ctx context.Context, brandReference string) ([]structs.Branch, error)
		GetCategories(ctx context.Context, brandReference string, branchID *int64) ([]structs.Category, error)
		GetProducts(ctx context.Context, q structs.ProductQuery) ([]structs.Product, error)
		Forward(ctx context.Context, ep Endpoint, query url.Values) (status int, body []byte, err error)
	}

	service struct {
		logger logger.Logger
		doer   Doer
		urls   map[Endpoint]string
		cache  cache.ICache
		ttl    time.Duration
		group  singleflight.Group
	}
)

func New(p Params) Service {
	return &service{
		logger: p.Logger,
		doer:   &http.Client{Timeout: p.Config.GetDuration("upstream.timeout")},
		urls: map[Endpoint]string{
			Branches:   p.Config.GetString("upstream.branches_url"),
			Categories: p.Config.GetString("upstream.categories_url"),
			Products:   p.Config.GetString("upstream.products_url"),
		},
		cache: p.Cache,
		ttl:   p.Config.GetDuration("cache.ttl"),
	}
}

func (s *service) GetBranches(ctx context.Context, brandReference string) ([]structs.Branch, error) {
	if brandReference == "" {
		return nil, structs.ErrMissingBrandReference
	}
	q := url.Values{}
	q.Set("brandReference", brandReference)
	return fetch[structs.Branch](ctx, s, Branches, q)
}

func (s *service) GetCategories(ctx context.Context, brandReference string, branchID *int64) ([]structs.Category, error) {
	if brandReference == "" {
		return nil, structs.ErrMissingBrandReference
	}
	q := url.Values{}
	q.Set("brandReference", brandReference)
	if branchID != nil {
		q.Set("branchId", strconv.FormatInt(*branchID, 10))
	}
	return fetch[structs.Category](ctx, s, Categories, q)
}

func (s *service) GetProducts(ctx context.Context, req structs.ProductQuery) ([]structs.Product, error) {
	if req.BrandReference == "" {
		return nil, structs.ErrMissingBrandReference
	}
	return fetch[structs.Product](ctx, s, Products, ProductValues(req))
}

// ProductValues encodes a product query the way the ordering API expects it.
func ProductValues(req structs.ProductQuery) url.Values {
	pageNo, pageSize := req.PageNo, req.PageSize
	if pageNo <= 0 {
		pageNo = DefaultPageNo
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	q := url.Values{}
	q.Set("pageNo", strconv.Itoa(pageNo))
	q.Set("pageSize", strconv.Itoa(pageSize))
	q.Set("brandReference", req.BrandReference)
	if req.CategoryID != nil {
		q.Set("categoryId", strconv.FormatInt(*req.CategoryID, 10))
	}
	if req.IncludeModifiers {
		q.Set("includeModifiers", "true")
	}
	if req.BranchID > 0 {
		q.Set("branchId", strconv.FormatInt(req.BranchID, 10))
	}
	return q
}

func (s *service) Forward(ctx context.Context, ep Endpoint, query url.Values) (int, []byte, error) {
	base, ok := s.urls[ep]
	if !ok || base == "" {
		return 0, nil, fmt.Errorf("no upstream url for %q", ep)
	}

	apiURL := base
	if enc := query.Encode(); enc != "" {
		apiURL += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")

	s.logger.Debug(ctx, "upstream request", zap.String("url", apiURL))

	ctx, capture := s.logger.ContextWithCapture(ctx, "upstream."+string(ep))
	resp, err := s.doer.Do(req)
	if err != nil {
		capture(zap.String("url", apiURL), zap.Error(err))
		s.logger.Error(ctx, "upstream request failed", zap.String("url", apiURL), zap.Error(err))
		return 0, nil, err
	}
	capture(zap.String("url", apiURL), zap.Int("status", resp.StatusCode))
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read upstream body: %w", err)
	}

	s.logger.Debug(ctx, "upstream response", zap.String("url", apiURL), zap.Int("status", resp.StatusCode))
	return resp.StatusCode, body, nil
}

// fetch issues one GET per parameter tuple. Concurrent callers with the same
// tuple share the request. Decoded responses are kept only when cache.ttl is
// positive.
func fetch[T any](ctx context.Context, s *service, ep Endpoint, q url.Values) ([]T, error) {
	key := string(ep) + "?" + q.Encode()

	var out []T
	if s.cache != nil && s.ttl > 0 {
		hit, err := s.cache.GetObj(ctx, key, &out)
		if err != nil {
			s.logger.Warn(ctx, "err on cache.GetObj", zap.String("key", key), zap.Error(err))
		}
		if hit {
			return out, nil
		}
	}

	do := func() (interface{}, error) {
		status, body, err := s.Forward(ctx, ep, q)
		if err != nil {
			return nil, err
		}
		if status < 200 || status >= 300 {
			return nil, &StatusError{Status: status, Body: string(body)}
		}
		return body, nil
	}

	v, err, shared := s.group.Do(key, do)
	if err != nil && shared && errors.Is(err, context.Canceled) && ctx.Err() == nil {
		// the caller that owned the shared request went away, not this one
		v, err, _ = s.group.Do(key, do)
	}
	if err != nil {
		return nil, err
	}

	var env structs.Envelope[T]
	if err := json.Unmarshal(v.([]byte), &env); err != nil {
		s.logger.Error(ctx, "failed to unmarshal upstream response", zap.String("endpoint", string(ep)), zap.Error(err))
		return nil, fmt.Errorf("%w: decode %s: %v", structs.ErrUpstream, ep, err)
	}
	if env.IsError {
		return nil, fmt.Errorf("%w: %s", structs.ErrUpstream, env.Message)
	}

	out = env.Data
	if out == nil {
		out = []T{}
	}

	if s.cache != nil && s.ttl > 0 {
		if err := s.cache.SaveObj(ctx, key, out, s.ttl); err != nil {
			s.logger.Warn(ctx, "err on cache.SaveObj", zap.String("key", key), zap.Error(err))
		}
	}
	return out, nil
}
