package session

import (
	"errors"
	"sync"

	"github.com/govipola/storefront/internal/domain"
	"github.com/govipola/storefront/internal/service"
)

// ErrUnknownSession is returned when the session provider does not recognize
// a token.
var ErrUnknownSession = errors.New("unknown session token")

// Role is the acting role the session provider resolved for a token
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// RoleResolver is the narrow interface onto the authentication layer, which
// is outside this service. It maps an opaque session token to a role.
type RoleResolver interface {
	Resolve(token string) (Role, bool)
}

// RoleResolverFunc adapts a function to the RoleResolver interface
type RoleResolverFunc func(token string) (Role, bool)

func (f RoleResolverFunc) Resolve(token string) (Role, bool) {
	return f(token)
}

// Session owns one user's cart and checkout workflow. The cart lives only as
// long as the process; there is no durable cart storage. All cart access goes
// through Lock/Unlock so the aggregate keeps its single-writer discipline
// under a concurrent HTTP host.
type Session struct {
	ID       string
	Role     Role
	Cart     *domain.Cart
	Checkout *service.CheckoutService

	mu sync.Mutex
}

func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// CartView returns the cart behind the session lock. The checkout workflow
// snapshots and clears the cart through it, so workflow access serializes
// with the cart handlers instead of racing them.
func (s *Session) CartView() service.Cart {
	return sessionCart{sess: s}
}

type sessionCart struct {
	sess *Session
}

func (c sessionCart) Snapshot() domain.CartSnapshot {
	c.sess.mu.Lock()
	defer c.sess.mu.Unlock()
	return c.sess.Cart.Snapshot()
}

func (c sessionCart) Clear() {
	c.sess.mu.Lock()
	defer c.sess.mu.Unlock()
	c.sess.Cart.Clear()
}

// Registry hands out sessions keyed by token, creating the cart and checkout
// workflow on first use. Carts are per session, never shared.
type Registry struct {
	roles       RoleResolver
	newCheckout func() *service.CheckoutService

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates a session registry. newCheckout constructs the checkout
// workflow for a fresh session, so the registry stays ignorant of the
// workflow's collaborators.
func NewRegistry(roles RoleResolver, newCheckout func() *service.CheckoutService) *Registry {
	return &Registry{
		roles:       roles,
		newCheckout: newCheckout,
		sessions:    make(map[string]*Session),
	}
}

// Attach resolves the token's session, creating it on first use
func (r *Registry) Attach(token string) (*Session, error) {
	role, ok := r.roles.Resolve(token)
	if !ok {
		return nil, ErrUnknownSession
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if sess, exists := r.sessions[token]; exists {
		return sess, nil
	}
	sess := &Session{
		ID:       token,
		Role:     role,
		Cart:     domain.NewCart(),
		Checkout: r.newCheckout(),
	}
	r.sessions[token] = sess
	return sess, nil
}
