package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"qrmenu/internal/structs"
	"qrmenu/pkg/cache"
	"qrmenu/pkg/config"
	"qrmenu/pkg/logger"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, ttl time.Duration, h http.HandlerFunc) Service {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	v := viper.New()
	v.Set("upstream.branches_url", srv.URL+"/api/branch/all")
	v.Set("upstream.categories_url", srv.URL+"/api/category/getCategoryList")
	v.Set("upstream.products_url", srv.URL+"/api/products/getAllProducts")
	v.Set("upstream.timeout", 5*time.Second)
	v.Set("cache.ttl", ttl)

	lg := logger.New("error")
	return New(Params{Logger: lg, Config: config.FromViper(v), Cache: cache.NewMemory(lg)})
}

func TestGetBranches(t *testing.T) {
	s := newTestService(t, 0, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/branch/all", r.URL.Path)
		assert.Equal(t, "ST890761281", r.URL.Query().Get("brandReference"))
		_, _ = w.Write([]byte(`{"isError":false,"message":"ok","data":[
			{"id":30,"name":"Main Branch","arabicName":"الفرع الرئيسي","address":"King Rd","opening_time":"08:00","closing_time":"23:00","is24Hours":false,"active":true,"image":null},
			{"id":31,"name":"Old Branch","active":false}
		]}`))
	})

	branches, err := s.GetBranches(context.Background(), "ST890761281")
	require.NoError(t, err)
	require.Len(t, branches, 2)
	assert.Equal(t, int64(30), branches[0].ID)
	assert.Equal(t, "الفرع الرئيسي", *branches[0].ArabicName)
	assert.Nil(t, branches[0].Image)
	assert.False(t, branches[1].Active)
}

func TestGetBranchesMissingReference(t *testing.T) {
	s := newTestService(t, 0, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called")
	})
	_, err := s.GetBranches(context.Background(), "")
	assert.ErrorIs(t, err, structs.ErrMissingBrandReference)
}

func TestGetCategoriesPassesBranch(t *testing.T) {
	s := newTestService(t, 0, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "30", r.URL.Query().Get("branchId"))
		_, _ = w.Write([]byte(`{"isError":false,"data":[{"id":1,"name":"Hot Drinks","sortOrder":2}]}`))
	})

	branchID := int64(30)
	cats, err := s.GetCategories(context.Background(), "ST1", &branchID)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, int64(2), cats[0].SortOrder)
}

func TestGetProductsQuery(t *testing.T) {
	s := newTestService(t, 0, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("pageNo"))
		assert.Equal(t, "1000", q.Get("pageSize"))
		assert.Equal(t, "ST1", q.Get("brandReference"))
		assert.Equal(t, "4", q.Get("categoryId"))
		assert.Equal(t, "true", q.Get("includeModifiers"))
		assert.Equal(t, "30", q.Get("branchId"))
		_, _ = w.Write([]byte(`{"isError":false,"data":[{"id":1,"title":"Latte","price":18.5,"is_active":true,
			"modifiers":[{"name":"Milk","options":[{"name":"Oat","price":2}]}]}]}`))
	})

	cat := int64(4)
	products, err := s.GetProducts(context.Background(), structs.ProductQuery{
		BrandReference:   "ST1",
		BranchID:         30,
		CategoryID:       &cat,
		IncludeModifiers: true,
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Oat", products[0].Modifiers[0].Options[0].Name)
}

func TestProductValuesWithoutCategory(t *testing.T) {
	q := ProductValues(structs.ProductQuery{BrandReference: "ST1", BranchID: 30})
	assert.Empty(t, q.Get("categoryId"))
	assert.Empty(t, q.Get("includeModifiers"))
	assert.Equal(t, "30", q.Get("branchId"))
}

func TestNon2xxIsStatusError(t *testing.T) {
	s := newTestService(t, 0, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := s.GetBranches(context.Background(), "ST1")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.Status)
	assert.ErrorIs(t, err, structs.ErrUpstream)
	assert.Equal(t, "API responded with status: 502", err.Error())
}

func TestEnvelopeIsError(t *testing.T) {
	s := newTestService(t, 0, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"isError":true,"message":"brand disabled","data":null}`))
	})

	_, err := s.GetBranches(context.Background(), "ST1")
	assert.ErrorIs(t, err, structs.ErrUpstream)
	assert.Contains(t, err.Error(), "brand disabled")
}

func TestInvalidJSON(t *testing.T) {
	s := newTestService(t, 0, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	})

	_, err := s.GetBranches(context.Background(), "ST1")
	assert.ErrorIs(t, err, structs.ErrUpstream)
}

func TestCacheByParameterTuple(t *testing.T) {
	var calls atomic.Int32
	s := newTestService(t, time.Minute, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"isError":false,"data":[{"id":1,"name":"A"}]}`))
	})

	ctx := context.Background()
	b30, b31 := int64(30), int64(31)
	_, err := s.GetCategories(ctx, "ST1", &b30)
	require.NoError(t, err)
	_, err = s.GetCategories(ctx, "ST1", &b30)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())

	_, err = s.GetCategories(ctx, "ST1", &b31)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}

func TestConcurrentIdenticalRequestsShareOneCall(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	s := newTestService(t, 0, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		_, _ = w.Write([]byte(`{"isError":false,"data":[]}`))
	})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			branches, err := s.GetBranches(context.Background(), "ST1")
			assert.NoError(t, err)
			assert.NotNil(t, branches)
		}()
	}

	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestForwardRelaysStatusAndBody(t *testing.T) {
	s := newTestService(t, 0, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "x", r.URL.Query().Get("brandReference"))
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"a":1}`))
	})

	status, body, err := s.Forward(context.Background(), Branches, url.Values{"brandReference": {"x"}})
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, status)
	assert.JSONEq(t, `{"a":1}`, string(body))
}

func TestDefaultConfigFetchesFreshEachTime(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the second answer marks the branch inactive
		if calls.Add(1) == 1 {
			_, _ = w.Write([]byte(`{"isError":false,"data":[{"id":30,"name":"Main","active":true}]}`))
			return
		}
		_, _ = w.Write([]byte(`{"isError":false,"data":[{"id":30,"name":"Main","active":false}]}`))
	}))
	t.Cleanup(srv.Close)
	t.Setenv("UPSTREAM_BRANCHES_URL", srv.URL+"/api/branch/all")

	lg := logger.New("error")
	s := New(Params{Logger: lg, Config: config.NewConfig(), Cache: cache.NewMemory(lg)})

	ctx := context.Background()
	first, err := s.GetBranches(ctx, "ST1")
	require.NoError(t, err)
	second, err := s.GetBranches(ctx, "ST1")
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
	assert.True(t, first[0].Active)
	assert.False(t, second[0].Active)
}
