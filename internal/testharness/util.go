package testharness

import (
	"fmt"
	"reflect"

	"github.com/h4ks-com/ewallet/internal/models"
	"github.com/h4ks-com/ewallet/internal/repository"
	"github.com/stretchr/testify/require"
)

// GetLastInserted loads the newest row of dest's table into dest.
func (c *Case) GetLastInserted(dest any) {
	t := c.t
	t.Helper()

	found, err := repository.FindLatest(c.DB, dest)
	require.NoError(t, err)
	require.True(t, found, "no %T inserted", dest)
}

// GetTestUser reloads the fixture user.
func (c *Case) GetTestUser() *models.User {
	t := c.t
	t.Helper()

	user, err := repository.NewUserRepository(c.DB).FindByProviderUserID(ProviderUserID)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

// PrimaryWallet returns the fixture user's primary wallet.
func (c *Case) PrimaryWallet() *models.Wallet {
	t := c.t
	t.Helper()

	wallet, err := c.Services.Wallets.GetOrCreatePrimaryForUser(c.User)
	require.NoError(t, err)
	return wallet
}

// AccountWallet returns the fixture account's primary wallet.
func (c *Case) AccountWallet() *models.Wallet {
	t := c.t
	t.Helper()

	wallet, err := c.Services.Wallets.GetOrCreatePrimaryForAccount(c.Account)
	require.NoError(t, err)
	return wallet
}

// StringifyKeys returns v with every map key converted to a string, at any
// depth. Maps become map[string]any and slices become []any.
func StringifyKeys(v any) any {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = StringifyKeys(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return v
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = StringifyKeys(rv.Index(i).Interface())
		}
		return out
	default:
		return v
	}
}
