package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortes-labs/storefront/internal/transport"
)

func TestAccountService_Addresses_DefaultInvariant(t *testing.T) {
	t.Parallel()

	svc := &AccountService{Repo: newTestRepo(t)}
	ctx := context.Background()

	first, err := svc.CreateAddress(ctx, "alice", transport.CreateAddressRequest{
		Street: "1 Main St", City: "Springfield", Country: "US", IsDefault: true,
	})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := svc.CreateAddress(ctx, "alice", transport.CreateAddressRequest{
		Street: "2 Oak Ave", City: "Springfield", Country: "US", IsDefault: true,
	})
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	addrs, err := svc.ListAddresses(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, addrs, 2)

	defaults := 0
	for _, a := range addrs {
		if a.IsDefault {
			defaults++
			assert.Equal(t, second.ID, a.ID)
		}
	}
	assert.Equal(t, 1, defaults)

	// flipping the default back clears the other flag
	_, err = svc.SetDefaultAddress(ctx, "alice", first.ID)
	require.NoError(t, err)

	addrs, err = svc.ListAddresses(ctx, "alice")
	require.NoError(t, err)
	defaults = 0
	for _, a := range addrs {
		if a.IsDefault {
			defaults++
			assert.Equal(t, first.ID, a.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestAccountService_CreateAddress_Validation(t *testing.T) {
	t.Parallel()

	svc := &AccountService{Repo: newTestRepo(t)}
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.CreateAddressRequest
	}{
		{name: "missing street", req: transport.CreateAddressRequest{City: "Springfield", Country: "US"}},
		{name: "missing city", req: transport.CreateAddressRequest{Street: "1 Main St", Country: "US"}},
		{name: "missing country", req: transport.CreateAddressRequest{Street: "1 Main St", City: "Springfield"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := svc.CreateAddress(ctx, "alice", tt.req)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAccountService_DeleteAddress(t *testing.T) {
	t.Parallel()

	svc := &AccountService{Repo: newTestRepo(t)}
	ctx := context.Background()

	addr, err := svc.CreateAddress(ctx, "alice", transport.CreateAddressRequest{
		Street: "1 Main St", City: "Springfield", Country: "US",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAddress(ctx, "alice", addr.ID))

	err = svc.DeleteAddress(ctx, "alice", addr.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	addrs, err := svc.ListAddresses(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, addrs)
}

func TestAccountService_DeleteAddress_WrongOwner(t *testing.T) {
	t.Parallel()

	svc := &AccountService{Repo: newTestRepo(t)}
	ctx := context.Background()

	addr, err := svc.CreateAddress(ctx, "alice", transport.CreateAddressRequest{
		Street: "1 Main St", City: "Springfield", Country: "US",
	})
	require.NoError(t, err)

	err = svc.DeleteAddress(ctx, "bob", addr.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAccountService_PaymentMethods_DefaultInvariant(t *testing.T) {
	t.Parallel()

	svc := &AccountService{Repo: newTestRepo(t)}
	ctx := context.Background()

	card, err := svc.CreatePaymentMethod(ctx, "alice", transport.CreatePaymentMethodRequest{
		Label: "personal visa", Kind: "card", IsDefault: true,
	})
	require.NoError(t, err)

	paypal, err := svc.CreatePaymentMethod(ctx, "alice", transport.CreatePaymentMethodRequest{
		Label: "paypal", Kind: "wallet", IsDefault: true,
	})
	require.NoError(t, err)

	methods, err := svc.ListPaymentMethods(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, methods, 2)

	defaults := 0
	for _, m := range methods {
		if m.IsDefault {
			defaults++
			assert.Equal(t, paypal.ID, m.ID)
		}
	}
	assert.Equal(t, 1, defaults)

	_, err = svc.SetDefaultPaymentMethod(ctx, "alice", card.ID)
	require.NoError(t, err)

	methods, err = svc.ListPaymentMethods(ctx, "alice")
	require.NoError(t, err)
	defaults = 0
	for _, m := range methods {
		if m.IsDefault {
			defaults++
			assert.Equal(t, card.ID, m.ID)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestAccountService_CreatePaymentMethod_Validation(t *testing.T) {
	t.Parallel()

	svc := &AccountService{Repo: newTestRepo(t)}
	ctx := context.Background()

	res, err := svc.CreatePaymentMethod(ctx, "alice", transport.CreatePaymentMethodRequest{Kind: "card"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrValidation)

	res, err = svc.CreatePaymentMethod(ctx, "alice", transport.CreatePaymentMethodRequest{Label: "visa"})
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrValidation)
}
