package category

import (
	"context"
	"testing"

	"qrmenu/internal/structs"
	"qrmenu/internal/upstream"
	"qrmenu/pkg/logger"
	"qrmenu/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ar(s string) *string { return &s }

func ids(cs []structs.Category) []int64 {
	out := make([]int64, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestOrder(t *testing.T) {
	in := []structs.Category{
		{ID: 1, Name: "B", SortOrder: 0},
		{ID: 2, Name: "Second", SortOrder: 2},
		{ID: 3, Name: "First", SortOrder: 1},
		{ID: 4, Name: "A", SortOrder: 0},
	}

	assert.Equal(t, []int64{3, 2, 4, 1}, ids(Order(utils.EN, in)))
	assert.Equal(t, int64(1), in[0].ID, "input must not be reordered")
}

func TestOrderUsesLocalizedLabel(t *testing.T) {
	in := []structs.Category{
		{ID: 1, Name: "Desserts", ArabicName: ar("حلويات")},
		{ID: 2, Name: "Drinks", ArabicName: ar("مشروبات")},
		{ID: 3, Name: "Breakfast", ArabicName: ar("فطور")},
	}

	assert.Equal(t, []int64{3, 1, 2}, ids(Order(utils.EN, in)))
	// ح < ف < م in Arabic collation
	assert.Equal(t, []int64{1, 3, 2}, ids(Order(utils.AR, in)))
}

func TestOrderCaseInsensitiveCollation(t *testing.T) {
	in := []structs.Category{
		{ID: 1, Name: "banana"},
		{ID: 2, Name: "Apple"},
		{ID: 3, Name: "cherry"},
	}
	assert.Equal(t, []int64{2, 1, 3}, ids(Order(utils.EN, in)))
}

func TestTabs(t *testing.T) {
	ordered := []structs.Category{{ID: 3, Name: "Food", ArabicName: ar("الطعام")}, {ID: 1, Name: "Drinks"}}

	tabs := Tabs(utils.AR, ordered, nil, "الكل")
	require.Len(t, tabs, 3)
	assert.Nil(t, tabs[0].ID)
	assert.True(t, tabs[0].Selected)
	assert.Equal(t, "الطعام", tabs[1].Label)
	assert.Equal(t, "Drinks", tabs[2].Label)

	sel := int64(1)
	tabs = Tabs(utils.EN, ordered, &sel, "All")
	assert.False(t, tabs[0].Selected)
	assert.True(t, tabs[2].Selected)
}

type upstreamMock struct {
	mock.Mock
	upstream.Service
}

func (m *upstreamMock) GetCategories(ctx context.Context, ref string, branchID *int64) ([]structs.Category, error) {
	args := m.Called(ctx, ref, *branchID)
	cs, _ := args.Get(0).([]structs.Category)
	return cs, args.Error(1)
}

func TestList(t *testing.T) {
	m := &upstreamMock{}
	m.On("GetCategories", mock.Anything, "ST1", int64(30)).Return([]structs.Category{{ID: 1}}, nil).Once()

	s := New(Params{Upstream: m, Logger: logger.New("error")})
	got, err := s.List(context.Background(), "ST1", 30)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	m.AssertExpectations(t)
}
