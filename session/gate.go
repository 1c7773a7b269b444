// Package session exposes the current identity and gates cart, wishlist and
// checkout mutations on it.
package session

import (
	"context"
	"errors"
	"sync"
)

// ErrUnauthenticated is returned when a gated operation is attempted without
// an identity. Callers surface it as a login prompt, not a crash.
var ErrUnauthenticated = errors.New("authentication required")

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

type Identity struct {
	ID    string
	Email string
	Name  string
	Role  Role
}

// Gate resolves exactly once from Unknown to Authenticated or Anonymous.
// While Unknown, gated calls block rather than defaulting to Anonymous, so
// neither state leaks prematurely. Logout returns a resolved gate to
// Anonymous.
type Gate struct {
	mu       sync.RWMutex
	identity *Identity
	resolved chan struct{}
	once     sync.Once
}

func NewGate() *Gate {
	return &Gate{resolved: make(chan struct{})}
}

// Resolved builds a gate already attached to id, for request-scoped use where
// the identity is known up front (e.g. decoded from a session token).
func Resolved(id Identity) *Gate {
	g := NewGate()
	g.Attach(id)
	return g
}

// Anonymous builds a gate resolved with no identity.
func Anonymous() *Gate {
	g := NewGate()
	g.AttachAnonymous()
	return g
}

// Attach resolves the gate with an authenticated identity.
func (g *Gate) Attach(id Identity) {
	g.mu.Lock()
	g.identity = &id
	g.mu.Unlock()
	g.once.Do(func() { close(g.resolved) })
}

// AttachAnonymous resolves the gate with no identity.
func (g *Gate) AttachAnonymous() {
	g.mu.Lock()
	g.identity = nil
	g.mu.Unlock()
	g.once.Do(func() { close(g.resolved) })
}

// Logout drops the identity. The gate stays resolved.
func (g *Gate) Logout() {
	g.AttachAnonymous()
}

// CurrentIdentity blocks until the gate resolves, then returns the identity
// or nil for an anonymous session.
func (g *Gate) CurrentIdentity(ctx context.Context) (*Identity, error) {
	select {
	case <-g.resolved:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.identity == nil {
		return nil, nil
	}
	id := *g.identity
	return &id, nil
}

// RequireAuthenticated blocks until resolution and fails with
// ErrUnauthenticated for anonymous sessions.
func (g *Gate) RequireAuthenticated(ctx context.Context) (Identity, error) {
	id, err := g.CurrentIdentity(ctx)
	if err != nil {
		return Identity{}, err
	}
	if id == nil {
		return Identity{}, ErrUnauthenticated
	}
	return *id, nil
}

func HasRole(id Identity, role Role) bool {
	return id.Role == role
}
