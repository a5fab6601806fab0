package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortes-labs/storefront/internal/transport"
)

func TestCartService_Add_MergesSameProduct(t *testing.T) {
	t.Parallel()

	rp := newTestRepo(t)
	svc := &CartService{Repo: rp}
	ctx := context.Background()

	mug := createTestProduct(t, rp, "Mug", 10, 50)

	_, err := svc.Add(ctx, "alice", mug.ID, 1)
	require.NoError(t, err)

	summary, err := svc.Add(ctx, "alice", mug.ID, 2)
	require.NoError(t, err)

	require.Len(t, summary.Items, 1)
	assert.Equal(t, 3, summary.Items[0].Quantity)
	assert.Equal(t, mug.ID, summary.Items[0].ProductID)
	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, 30.0, summary.TotalAmount)
}

func TestCartService_Add_Validation(t *testing.T) {
	t.Parallel()

	rp := newTestRepo(t)
	svc := &CartService{Repo: rp}
	ctx := context.Background()

	mug := createTestProduct(t, rp, "Mug", 10, 50)

	tests := []struct {
		name     string
		owner    string
		quantity int
	}{
		{name: "empty owner", owner: "", quantity: 1},
		{name: "zero quantity", owner: "alice", quantity: 0},
		{name: "negative quantity", owner: "alice", quantity: -2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := svc.Add(ctx, tt.owner, mug.ID, tt.quantity)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCartService_Add_UnknownProduct(t *testing.T) {
	t.Parallel()

	svc := &CartService{Repo: newTestRepo(t)}

	res, err := svc.Add(context.Background(), "alice", 9999, 1)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartService_Add_SnapshotsPriceAndName(t *testing.T) {
	t.Parallel()

	rp := newTestRepo(t)
	cartSvc := &CartService{Repo: rp}
	prodSvc := &ProductService{Repo: rp}
	ctx := context.Background()

	mug := createTestProduct(t, rp, "Mug", 10, 50)

	summary, err := cartSvc.Add(ctx, "alice", mug.ID, 2)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)

	// a later catalog edit must not change what the customer saw
	_, err = prodSvc.Patch(ctx, mug.ID, transport.PatchProductRequest{
		Name:  strPtr("Deluxe Mug"),
		Price: floatPtr(99.99),
	})
	require.NoError(t, err)

	summary, err = cartSvc.Summary(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "Mug", summary.Items[0].ProductName)
	assert.Equal(t, 10.0, summary.Items[0].UnitPrice)
	assert.Equal(t, 20.0, summary.TotalAmount)
}

func TestCartService_SetQuantity(t *testing.T) {
	t.Parallel()

	rp := newTestRepo(t)
	svc := &CartService{Repo: rp}
	ctx := context.Background()

	mug := createTestProduct(t, rp, "Mug", 10, 50)

	summary, err := svc.Add(ctx, "alice", mug.ID, 1)
	require.NoError(t, err)
	itemID := summary.Items[0].ID

	summary, err = svc.SetQuantity(ctx, "alice", itemID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, summary.Items[0].Quantity)
	assert.Equal(t, 50.0, summary.TotalAmount)
}

func TestCartService_SetQuantity_Rejected(t *testing.T) {
	t.Parallel()

	rp := newTestRepo(t)
	svc := &CartService{Repo: rp}
	ctx := context.Background()

	mug := createTestProduct(t, rp, "Mug", 10, 50)

	summary, err := svc.Add(ctx, "alice", mug.ID, 2)
	require.NoError(t, err)
	itemID := summary.Items[0].ID

	for _, q := range []int{0, -1} {
		res, err := svc.SetQuantity(ctx, "alice", itemID, q)
		require.Error(t, err)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrValidation)
	}

	// quantity untouched after the rejected updates
	summary, err = svc.Summary(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Items[0].Quantity)
}

func TestCartService_SetQuantity_UnknownItem(t *testing.T) {
	t.Parallel()

	svc := &CartService{Repo: newTestRepo(t)}

	res, err := svc.SetQuantity(context.Background(), "alice", uuid.New(), 3)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartService_Remove(t *testing.T) {
	t.Parallel()

	rp := newTestRepo(t)
	svc := &CartService{Repo: rp}
	ctx := context.Background()

	mug := createTestProduct(t, rp, "Mug", 10, 50)
	plushie := createTestProduct(t, rp, "Plushie", 25, 20)

	_, err := svc.Add(ctx, "alice", mug.ID, 2)
	require.NoError(t, err)
	summary, err := svc.Add(ctx, "alice", plushie.ID, 1)
	require.NoError(t, err)
	require.Len(t, summary.Items, 2)

	removed, err := svc.Remove(ctx, "alice", summary.Items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, mug.ID, removed.Removed.ProductID)
	require.Len(t, removed.Summary.Items, 1)
	assert.Equal(t, plushie.ID, removed.Summary.Items[0].ProductID)
	assert.Equal(t, 25.0, removed.Summary.TotalAmount)
}

func TestCartService_Remove_UnknownItem(t *testing.T) {
	t.Parallel()

	svc := &CartService{Repo: newTestRepo(t)}

	res, err := svc.Remove(context.Background(), "alice", uuid.New())
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartService_Clear_Idempotent(t *testing.T) {
	t.Parallel()

	rp := newTestRepo(t)
	svc := &CartService{Repo: rp}
	ctx := context.Background()

	mug := createTestProduct(t, rp, "Mug", 10, 50)
	_, err := svc.Add(ctx, "alice", mug.ID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "alice"))
	require.NoError(t, svc.Clear(ctx, "alice"))

	summary, err := svc.Summary(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
	assert.Zero(t, summary.TotalItems)
	assert.Zero(t, summary.TotalAmount)
}

func TestCartService_Summary_IsolatedPerOwner(t *testing.T) {
	t.Parallel()

	rp := newTestRepo(t)
	svc := &CartService{Repo: rp}
	ctx := context.Background()

	mug := createTestProduct(t, rp, "Mug", 10, 50)

	_, err := svc.Add(ctx, "alice", mug.ID, 2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "bob", mug.ID, 5)
	require.NoError(t, err)

	alice, err := svc.Summary(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, alice.TotalItems)

	bob, err := svc.Summary(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 5, bob.TotalItems)
}
