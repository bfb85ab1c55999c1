package menu

import (
	"context"
	"testing"

	"qrmenu/internal/structs"
	"qrmenu/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func int64Ptr(n int64) *int64 { return &n }

func TestApplyPaging(t *testing.T) {
	f := newFixture(t)
	f.branch.On("List", mock.Anything, ref).Return(nthBranches(14), nil)

	ctx := context.Background()
	v := f.open(utils.EN)
	require.NoError(t, v.Load(ctx, ""))

	require.NoError(t, v.Apply(ctx, structs.MenuAction{Type: structs.ActionNextPage}))
	require.NoError(t, v.Apply(ctx, structs.MenuAction{Type: structs.ActionNextPage}))
	require.NoError(t, v.Apply(ctx, structs.MenuAction{Type: structs.ActionNextPage}))
	assert.Equal(t, 3, v.Snapshot().Branches.Page)

	require.NoError(t, v.Apply(ctx, structs.MenuAction{Type: structs.ActionPrevPage}))
	assert.Equal(t, 2, v.Snapshot().Branches.Page)

	require.NoError(t, v.Apply(ctx, structs.MenuAction{Type: structs.ActionGoToPage, Page: 9}))
	assert.Equal(t, 3, v.Snapshot().Branches.Page)

	require.NoError(t, v.Apply(ctx, structs.MenuAction{Type: structs.ActionSetPage, Page: 1}))
	assert.Equal(t, 1, v.Snapshot().Branches.Page)

	err := v.Apply(ctx, structs.MenuAction{Type: structs.ActionSetPage})
	assert.ErrorIs(t, err, structs.ErrBadRequest)
}

func TestApplyBranchFlow(t *testing.T) {
	f := newFixture(t)
	f.branch.On("List", mock.Anything, ref).Return(nthBranches(2), nil)
	f.category.On("List", mock.Anything, ref, mock.Anything).Return([]structs.Category{{ID: 4, Name: "Hot"}}, nil)
	f.product.On("List", mock.Anything, ref, mock.Anything, mock.Anything).
		Return([]structs.Product{{ID: 9, Title: "Tea", IsActive: true}}, nil)

	ctx := context.Background()
	v := f.open(utils.EN)
	require.NoError(t, v.Load(ctx, ""))

	require.NoError(t, v.Apply(ctx, structs.MenuAction{Type: structs.ActionSelectBranch, ID: int64Ptr(2)}))
	assert.Equal(t, "/menu/branch-b-2", v.Snapshot().URL)

	require.NoError(t, v.Apply(ctx, structs.MenuAction{Type: structs.ActionSelectCategory, ID: int64Ptr(4)}))
	require.NoError(t, v.Apply(ctx, structs.MenuAction{Type: structs.ActionOpenProduct, ID: int64Ptr(9)}))
	assert.NotNil(t, v.Snapshot().Detail)

	require.NoError(t, v.Apply(ctx, structs.MenuAction{Type: structs.ActionCloseProduct}))
	assert.Nil(t, v.Snapshot().Detail)

	require.NoError(t, v.Apply(ctx, structs.MenuAction{Type: structs.ActionSetLanguage, Lang: "AR"}))
	assert.Equal(t, utils.AR, v.Lang())

	require.NoError(t, v.Apply(ctx, structs.MenuAction{Type: structs.ActionBack}))
	s := v.Snapshot()
	assert.Equal(t, structs.StateNoBranchSelected, s.State)
	assert.Equal(t, "/menu", s.URL)
}

func TestApplyRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	v := f.open(utils.EN)

	cases := []structs.MenuAction{
		{Type: structs.ActionSelectBranch},
		{Type: structs.ActionOpenProduct},
		{Type: structs.ActionSetLanguage, Lang: "fr"},
		{Type: "dance"},
	}
	for _, a := range cases {
		assert.ErrorIs(t, v.Apply(ctx, a), structs.ErrBadRequest, string(a.Type))
	}
	assert.ErrorIs(t, v.Apply(ctx, structs.MenuAction{Type: structs.ActionSelectCategory}), structs.ErrNoBranchSelected)
}
