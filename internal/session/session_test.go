package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/govipola/storefront/internal/domain"
	"github.com/govipola/storefront/internal/service"
)

func testRegistry() *Registry {
	roles := RoleResolverFunc(func(token string) (Role, bool) {
		if token == "bad" {
			return "", false
		}
		return RoleUser, true
	})
	return NewRegistry(roles, func() *service.CheckoutService {
		return service.NewCheckoutService(nil, nil, service.NewReconciliationJournal(), zap.NewNop())
	})
}

func TestRegistry_AttachCreatesSessionOnce(t *testing.T) {
	registry := testRegistry()

	first, err := registry.Attach("tok-1")
	require.NoError(t, err)
	require.NotNil(t, first.Cart)
	require.NotNil(t, first.Checkout)
	assert.Equal(t, RoleUser, first.Role)

	again, err := registry.Attach("tok-1")
	require.NoError(t, err)
	assert.Same(t, first, again)
}

func TestRegistry_SessionsDoNotShareCarts(t *testing.T) {
	registry := testRegistry()

	a, err := registry.Attach("tok-a")
	require.NoError(t, err)
	b, err := registry.Attach("tok-b")
	require.NoError(t, err)

	assert.NotSame(t, a.Cart, b.Cart)
	assert.NotSame(t, a.Checkout, b.Checkout)
}

func TestRegistry_RejectsUnknownToken(t *testing.T) {
	registry := testRegistry()

	_, err := registry.Attach("bad")
	assert.ErrorIs(t, err, ErrUnknownSession)
}

func TestSession_CartViewMirrorsCart(t *testing.T) {
	registry := testRegistry()
	sess, err := registry.Attach("tok-1")
	require.NoError(t, err)

	require.NoError(t, sess.Cart.AddItem(domain.Product{ID: "p1", Name: "Tomatoes", Price: 500}, 2))

	view := sess.CartView()
	snapshot := view.Snapshot()
	require.Len(t, snapshot.Lines, 1)
	assert.Equal(t, 1000.0, snapshot.Total)

	view.Clear()
	assert.True(t, sess.Cart.IsEmpty())
}

func TestSession_CartViewSerializesWithCartLock(t *testing.T) {
	registry := testRegistry()
	sess, err := registry.Attach("tok-1")
	require.NoError(t, err)
	require.NoError(t, sess.Cart.AddItem(domain.Product{ID: "p1", Price: 500}, 1))

	view := sess.CartView()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			view.Snapshot()
			view.Clear()
		}
	}()
	for i := 0; i < 100; i++ {
		sess.Lock()
		_ = sess.Cart.AddItem(domain.Product{ID: "p2", Price: 100}, 1)
		sess.Unlock()
	}
	<-done
}
