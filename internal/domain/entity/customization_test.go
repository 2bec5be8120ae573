package entity

import (
	"testing"

	domainerrors "smartfit/internal/domain/errors"
	"smartfit/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeColor() BodyColor {
	return BodyColor{
		Images:     ColorImages{Main: "m.png", Front: "f.png", Side: "s.png", Back: "b.png"},
		DeepARFile: "effect.deepar",
	}
}

func TestBodyColor_Completeness(t *testing.T) {
	assert.Equal(t, ColorCompleteness{Complete: true}, completeColor().Completeness())

	tests := []struct {
		name    string
		mutate  func(*BodyColor)
		missing string
	}{
		{"main", func(c *BodyColor) { c.Images.Main = "" }, AssetMain},
		{"front", func(c *BodyColor) { c.Images.Front = "" }, AssetFront},
		{"side", func(c *BodyColor) { c.Images.Side = "" }, AssetSide},
		{"back", func(c *BodyColor) { c.Images.Back = "" }, AssetBack},
		{"deepar", func(c *BodyColor) { c.DeepARFile = "" }, AssetDeepAR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := completeColor()
			tt.mutate(&color)

			got := color.Completeness()
			assert.False(t, got.Complete)
			assert.Equal(t, []string{tt.missing}, got.Missing)
		})
	}

	empty := BodyColor{}.Completeness()
	assert.False(t, empty.Complete)
	assert.Len(t, empty.Missing, 5)
}

func TestFindBaseModel(t *testing.T) {
	model, ok := FindBaseModel(ModelRunner)
	require.True(t, ok)
	assert.Equal(t, ModelRunner, model.ID)

	_, ok = FindBaseModel("sandal")
	assert.False(t, ok)
	assert.Len(t, BaseModels(), 3)
}

func TestCustomSelections_ComponentPrices(t *testing.T) {
	s := &CustomSelections{
		Laces:   &ComponentSelection{ID: "waxed", Price: 150},
		Outsole: &ComponentSelection{ID: "gum", Price: 300},
	}

	assert.ElementsMatch(t, []float64{150, 300}, s.ComponentPrices())
	assert.Empty(t, (&CustomSelections{}).ComponentPrices())
}

func TestEmployee_MatchesDefaultCredentials(t *testing.T) {
	temp := "p1"
	def := &Employee{Email: "a@x.com", TempPassword: &temp, IsDefaultAccount: true}
	activated := &Employee{Email: "a@x.com", TempPassword: &temp, IsDefaultAccount: false}

	assert.True(t, def.MatchesDefaultCredentials("a@x.com", "p1"))
	assert.False(t, def.MatchesDefaultCredentials("a@x.com", "p2"))
	assert.False(t, def.MatchesDefaultCredentials("b@x.com", "p1"))
	assert.False(t, activated.MatchesDefaultCredentials("a@x.com", "p1"))
}

func TestEmployee_Activated(t *testing.T) {
	temp := "p1"
	def := &Employee{ID: "emp-1", ShopID: "shop-1", Email: "a@x.com", TempPassword: &temp, IsDefaultAccount: true, CreatedAt: 10}

	got := def.Activated("uid-9", "real@x.com", 99)

	assert.Equal(t, "uid-9", got.ID)
	assert.Equal(t, "uid-9", got.UID)
	assert.Equal(t, "real@x.com", got.Email)
	assert.Equal(t, EmployeeStatusActive, got.Status)
	assert.False(t, got.IsDefaultAccount)
	assert.Nil(t, got.TempPassword)
	assert.Equal(t, int64(10), got.CreatedAt)
	assert.Equal(t, int64(99), got.ActivatedAt)
	assert.Equal(t, "emp-1", def.ID, "source record is not mutated")
}

func TestShop_Lifecycle(t *testing.T) {
	shop := &Shop{Status: ShopStatusPending}

	assert.True(t, errors.Is(shop.Reject("  ", 1), domainerrors.ErrRejectionReasonRequired))
	require.NoError(t, shop.Reject("blurry permit", 1))
	assert.Equal(t, ShopStatusRejected, shop.Status)
	assert.Equal(t, "blurry permit", shop.RejectionReason)

	assert.True(t, errors.Is(shop.Approve(2), domainerrors.ErrInvalidTransition))

	require.NoError(t, shop.Reapply(3))
	assert.Equal(t, ShopStatusPending, shop.Status)
	assert.Empty(t, shop.RejectionReason)

	require.NoError(t, shop.Approve(4))
	assert.Equal(t, ShopStatusApproved, shop.Status)
	assert.Equal(t, int64(4), shop.DateProcessed)
}
