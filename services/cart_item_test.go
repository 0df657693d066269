package services

import (
	"context"
	"math"
	"testing"

	"github.com/junaidrashid-git/shop-api/apperr"
	"github.com/junaidrashid-git/shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemMergesQuantities(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pen := seedItem(t, f.db, "Pen", "2.50", 100)

	cart, err := f.carts.InitializeNewCart(ctx)
	require.NoError(t, err)

	quantities := []int{1, 3, 2, 4}
	for _, q := range quantities {
		_, err := f.lines.AddItemToCart(ctx, cart.ID, ItemRef{ID: pen.ID}, q)
		require.NoError(t, err)
	}

	got, err := f.carts.GetCart(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 10, got.Items[0].Quantity)
	assert.True(t, got.Items[0].TotalPrice.Equal(dec("25.00")))
	assert.True(t, got.TotalAmount.Equal(dec("25.00")))
	assert.Equal(t, uint(len(quantities)), got.Version)
}

func TestAddItemKeepsSnapshotPrice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pen := seedItem(t, f.db, "Pen", "2.00", 100)

	cart, err := f.lines.AddItemAndInitialize(ctx, nil, ItemRef{ID: pen.ID}, 1)
	require.NoError(t, err)

	require.NoError(t, f.db.Model(&models.Item{}).Where("id = ?", pen.ID).Update("price", dec("3.00")).Error)

	got, err := f.lines.AddItemToCart(ctx, cart.ID, ItemRef{ID: pen.ID}, 1)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.True(t, got.Items[0].UnitPrice.Equal(dec("2")))
	assert.True(t, got.TotalAmount.Equal(dec("4")))
}

func TestAddItemInvalidQuantityLeavesCartUnchanged(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pen := seedItem(t, f.db, "Pen", "1.00", 10)

	cart, err := f.lines.AddItemAndInitialize(ctx, nil, ItemRef{ID: pen.ID}, 2)
	require.NoError(t, err)

	for _, q := range []int{0, -3} {
		_, err := f.lines.AddItemToCart(ctx, cart.ID, ItemRef{ID: pen.ID}, q)
		assert.ErrorIs(t, err, apperr.InvalidArgument)
	}

	got, err := f.carts.GetCart(ctx, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.True(t, got.TotalAmount.Equal(dec("2")))
	assert.Equal(t, cart.Version, got.Version)
}

func TestAddItemErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	seedItem(t, f.db, "Draft", "", 10)

	cart, err := f.carts.InitializeNewCart(ctx)
	require.NoError(t, err)

	_, err = f.lines.AddItemToCart(ctx, cart.ID, ItemRef{Name: "Missing"}, 1)
	assert.ErrorIs(t, err, apperr.NotFound)

	_, err = f.lines.AddItemToCart(ctx, cart.ID, ItemRef{Name: "Draft"}, 1)
	assert.ErrorIs(t, err, apperr.InvalidState)

	_, err = f.lines.AddItemToCart(ctx, 999, ItemRef{Name: "Draft"}, 1)
	assert.ErrorIs(t, err, apperr.NotFound)

	_, err = f.lines.AddItemToCart(ctx, cart.ID, ItemRef{}, 1)
	assert.ErrorIs(t, err, apperr.InvalidArgument)
}

func TestAddItemByNamePicksLowestID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	first := seedItem(t, f.db, "Mug", "4.00", 10)
	seedItem(t, f.db, "Mug", "6.00", 10)

	cart, err := f.lines.AddItemAndInitialize(ctx, nil, ItemRef{Name: "Mug"}, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, first.ID, cart.Items[0].ItemID)
}

func TestAddItemAndInitializeDiscardsCartOnFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.lines.AddItemAndInitialize(ctx, nil, ItemRef{Name: "Ghost"}, 1)
	assert.ErrorIs(t, err, apperr.NotFound)

	var carts int64
	require.NoError(t, f.db.Model(&models.Cart{}).Count(&carts).Error)
	assert.Zero(t, carts)

	_, err = f.lines.AddItemAndInitialize(ctx, nil, ItemRef{Name: "Ghost"}, 0)
	assert.ErrorIs(t, err, apperr.InvalidArgument)
}

func TestAddItemAndInitializeExistingCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pen := seedItem(t, f.db, "Pen", "1.00", 10)

	cart, err := f.carts.InitializeNewCart(ctx)
	require.NoError(t, err)

	got, err := f.lines.AddItemAndInitialize(ctx, &cart.ID, ItemRef{ID: pen.ID}, 3)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, got.ID)
	assert.True(t, got.TotalAmount.Equal(dec("3")))
}

func TestRemoveItemFromCart(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	a := seedItem(t, f.db, "A", "10.00", 10)
	seedItem(t, f.db, "B", "5.00", 10)
	seedItem(t, f.db, "C", "1.00", 10)

	cart, err := f.lines.AddItemAndInitialize(ctx, nil, ItemRef{ID: a.ID}, 2)
	require.NoError(t, err)
	_, err = f.lines.AddItemToCart(ctx, cart.ID, ItemRef{Name: "B"}, 1)
	require.NoError(t, err)

	_, err = f.lines.RemoveItemFromCart(ctx, cart.ID, ItemRef{Name: "C"})
	assert.ErrorIs(t, err, apperr.NotFound)
	assert.Equal(t, "Item not found in cart", apperr.Message(err))

	got, err := f.lines.RemoveItemFromCart(ctx, cart.ID, ItemRef{Name: "A"})
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "B", got.Items[0].Item.Name)
	assert.True(t, got.TotalAmount.Equal(dec("5")))

	_, err = f.lines.RemoveItemFromCart(ctx, 404, ItemRef{Name: "B"})
	assert.ErrorIs(t, err, apperr.NotFound)
}

func TestUpdateItemQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pen := seedItem(t, f.db, "Pen", "2.00", 10)
	seedItem(t, f.db, "Ink", "7.00", 10)

	cart, err := f.lines.AddItemAndInitialize(ctx, nil, ItemRef{ID: pen.ID}, 1)
	require.NoError(t, err)

	// the price is re-read on update
	require.NoError(t, f.db.Model(&models.Item{}).Where("id = ?", pen.ID).Update("price", dec("3.00")).Error)

	got, err := f.lines.UpdateItemQuantity(ctx, cart.ID, ItemRef{Name: "Pen"}, 4)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 4, got.Items[0].Quantity)
	assert.True(t, got.Items[0].UnitPrice.Equal(dec("3")))
	assert.True(t, got.TotalAmount.Equal(dec("12")))

	_, err = f.lines.UpdateItemQuantity(ctx, cart.ID, ItemRef{Name: "Ink"}, 2)
	assert.ErrorIs(t, err, apperr.NotFound)

	_, err = f.lines.UpdateItemQuantity(ctx, cart.ID, ItemRef{ID: pen.ID}, 0)
	assert.ErrorIs(t, err, apperr.InvalidArgument)
}

func TestAddItemRejectsOversizedQuantity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pen := seedItem(t, f.db, "Pen", "1.00", 10)

	cart, err := f.lines.AddItemAndInitialize(ctx, nil, ItemRef{ID: pen.ID}, MaxLineQuantity)
	require.NoError(t, err)

	// merging one more would push the line past the cap
	_, err = f.lines.AddItemToCart(ctx, cart.ID, ItemRef{ID: pen.ID}, 1)
	assert.ErrorIs(t, err, apperr.InvalidArgument)

	_, err = f.lines.AddItemToCart(ctx, cart.ID, ItemRef{ID: pen.ID}, math.MaxInt)
	assert.ErrorIs(t, err, apperr.InvalidArgument)

	_, err = f.lines.UpdateItemQuantity(ctx, cart.ID, ItemRef{ID: pen.ID}, MaxLineQuantity+1)
	assert.ErrorIs(t, err, apperr.InvalidArgument)

	got, err := f.carts.GetCart(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, MaxLineQuantity, got.Items[0].Quantity)
	assert.True(t, got.TotalAmount.Equal(dec("10000")), got.TotalAmount.String())
	assert.Equal(t, cart.Version, got.Version)
}
