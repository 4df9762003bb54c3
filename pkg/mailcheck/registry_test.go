package mailcheck_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veriphi/mailcheck/pkg/mailcheck"
)

func TestRegistry(t *testing.T) {
	t.Run("register and resolve", func(t *testing.T) {
		reg := mailcheck.NewRegistry()
		require.NoError(t, reg.Register("naive", mailcheck.NewNaiveValidator()))
		require.NoError(t, reg.Register("address", mailcheck.NewAddressValidator()))

		v, err := reg.Get("naive")
		require.NoError(t, err)
		assert.True(t, v.IsValid("myemail@mail.com"))
		assert.False(t, v.IsValid("invalid@mail"))

		assert.True(t, reg.Has("address"))
		assert.False(t, reg.Has("missing"))
		assert.Equal(t, 2, reg.Len())
	})

	t.Run("names are sorted", func(t *testing.T) {
		reg := mailcheck.NewRegistry()
		require.NoError(t, reg.Register("zeta", mailcheck.NewNaiveValidator()))
		require.NoError(t, reg.Register("alpha", mailcheck.NewAddressValidator()))
		require.NoError(t, reg.Register("mid", mailcheck.NewPlaygroundValidator()))

		assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.Names())
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		reg := mailcheck.NewRegistry()
		require.NoError(t, reg.Register("naive", mailcheck.NewNaiveValidator()))

		err := reg.Register("naive", mailcheck.NewAddressValidator())
		require.ErrorIs(t, err, mailcheck.ErrDuplicateValidator)
		assert.Equal(t, 1, reg.Len())
	})

	t.Run("non-conforming candidate rejected at registration", func(t *testing.T) {
		reg := mailcheck.NewRegistry()

		err := reg.Register("legacy", legacyEmailChecker{})
		require.ErrorIs(t, err, mailcheck.ErrContractViolation)
		assert.False(t, reg.Has("legacy"))
	})

	t.Run("unknown name", func(t *testing.T) {
		reg := mailcheck.NewRegistry()

		v, err := reg.Get("missing")
		require.ErrorIs(t, err, mailcheck.ErrUnknownValidator)
		assert.Nil(t, v)
	})

	t.Run("evaluate runs all registered validators", func(t *testing.T) {
		reg := mailcheck.NewRegistry()
		require.NoError(t, reg.Register("naive", mailcheck.NewNaiveValidator()))
		require.NoError(t, reg.Register("address", mailcheck.NewAddressValidator()))

		results := reg.Evaluate("myemail@mail.com")
		assert.Equal(t, map[string]bool{"naive": true, "address": true}, results)

		results = reg.Evaluate("user@example.org")
		assert.False(t, results["naive"])
		assert.True(t, results["address"])
	})

	t.Run("concurrent access", func(t *testing.T) {
		reg := mailcheck.NewRegistry()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			i := i
			wg.Add(1)
			go func() {
				defer wg.Done()
				name := fmt.Sprintf("validator-%d", i)
				assert.NoError(t, reg.Register(name, mailcheck.NewNaiveValidator()))
				assert.True(t, reg.Has(name))
			}()
		}
		wg.Wait()

		assert.Equal(t, 20, reg.Len())
	})
}
