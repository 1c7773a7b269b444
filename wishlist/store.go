// Package wishlist keeps a deduplicated set of product ids per identity,
// cached locally and synchronized best-effort with the remote profile. The
// local set is the source of truth for the current session.
package wishlist

import (
	"context"
	"log"
	"sort"
	"sync"
)

// ProfileStore is the remote side of the wishlist: the identity's profile
// record.
type ProfileStore interface {
	Wishlist(ctx context.Context, userID string) ([]string, error)
	SaveWishlist(ctx context.Context, userID string, ids []string) error
}

type Store struct {
	mu     sync.Mutex
	userID string
	ids    map[string]struct{}
	remote ProfileStore
}

func NewStore(remote ProfileStore) *Store {
	return &Store{ids: make(map[string]struct{}), remote: remote}
}

// Attach reconciles the local set with the identity's remote profile on
// login. The merge is a union: entries are never lost, only added. The merged
// result becomes authoritative and is written back when it differs from the
// remote set.
func (s *Store) Attach(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID

	remote, err := s.remote.Wishlist(ctx, userID)
	if err != nil {
		return err
	}
	merged, changed := Reconcile(s.sortedLocked(), remote)
	s.ids = make(map[string]struct{}, len(merged))
	for _, id := range merged {
		s.ids[id] = struct{}{}
	}
	if changed {
		if err := s.remote.SaveWishlist(ctx, userID, merged); err != nil {
			log.Printf("wishlist: failed to sync merged set for %s: %v", userID, err)
		}
	}
	return nil
}

// Reconcile merges local and remote by union. changed reports whether the
// merged set differs from remote and needs a write-back.
func Reconcile(local, remote []string) (merged []string, changed bool) {
	set := make(map[string]struct{}, len(local)+len(remote))
	for _, id := range remote {
		set[id] = struct{}{}
	}
	for _, id := range local {
		if _, ok := set[id]; !ok {
			changed = true
		}
		set[id] = struct{}{}
	}
	merged = make([]string, 0, len(set))
	for id := range set {
		merged = append(merged, id)
	}
	sort.Strings(merged)
	return merged, changed
}

// Add inserts id into the set. Idempotent.
func (s *Store) Add(ctx context.Context, id string) {
	s.mu.Lock()
	if _, ok := s.ids[id]; ok {
		s.mu.Unlock()
		return
	}
	s.ids[id] = struct{}{}
	s.syncLocked(ctx)
	s.mu.Unlock()
}

// Remove deletes id from the set. Idempotent.
func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	if _, ok := s.ids[id]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.ids, id)
	s.syncLocked(ctx)
	s.mu.Unlock()
}

// Toggle flips membership and reports the new state.
func (s *Store) Toggle(ctx context.Context, id string) bool {
	if s.Contains(id) {
		s.Remove(ctx, id)
		return false
	}
	s.Add(ctx, id)
	return true
}

func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// IDs returns the set in sorted order.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedLocked()
}

func (s *Store) sortedLocked() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// syncLocked pushes the local set to the remote profile. Failures are logged
// and do not roll back the local mutation.
func (s *Store) syncLocked(ctx context.Context) {
	if s.userID == "" {
		return
	}
	ids := s.sortedLocked()
	if err := s.remote.SaveWishlist(ctx, s.userID, ids); err != nil {
		log.Printf("wishlist: failed to sync for %s: %v", s.userID, err)
	}
}
