package wishlist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfiles struct {
	remote   map[string][]string
	loadErr  error
	saveErr  error
	saves    int
	lastSave []string
}

func (f *fakeProfiles) Wishlist(_ context.Context, userID string) ([]string, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.remote[userID], nil
}

func (f *fakeProfiles) SaveWishlist(_ context.Context, userID string, ids []string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.lastSave = ids
	if f.remote == nil {
		f.remote = make(map[string][]string)
	}
	f.remote[userID] = ids
	return nil
}

func TestReconcile_Union(t *testing.T) {
	tests := []struct {
		name        string
		local       []string
		remote      []string
		want        []string
		wantChanged bool
	}{
		{"overlap", []string{"a", "b"}, []string{"b", "c"}, []string{"a", "b", "c"}, true},
		{"local empty", nil, []string{"x", "y"}, []string{"x", "y"}, false},
		{"remote empty", []string{"x"}, nil, []string{"x"}, true},
		{"identical", []string{"a", "b"}, []string{"b", "a"}, []string{"a", "b"}, false},
		{"both empty", nil, nil, []string{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, changed := Reconcile(tt.local, tt.remote)
			assert.Equal(t, tt.want, merged)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestAttach_MergesAndWritesBack(t *testing.T) {
	profiles := &fakeProfiles{remote: map[string][]string{"u1": {"b", "c"}}}
	s := NewStore(profiles)
	s.Add(context.Background(), "a")
	s.Add(context.Background(), "b")

	require.NoError(t, s.Attach(context.Background(), "u1"))

	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())
	assert.Equal(t, []string{"a", "b", "c"}, profiles.remote["u1"])
}

func TestAttach_NoWriteBackWhenRemoteIsSuperset(t *testing.T) {
	profiles := &fakeProfiles{remote: map[string][]string{"u1": {"a", "b"}}}
	s := NewStore(profiles)
	s.Add(context.Background(), "a")

	require.NoError(t, s.Attach(context.Background(), "u1"))

	assert.Equal(t, []string{"a", "b"}, s.IDs())
	assert.Zero(t, profiles.saves, "identical merge must not rewrite the profile")
}

func TestAttach_LoadFailure(t *testing.T) {
	profiles := &fakeProfiles{loadErr: errors.New("profile unavailable")}
	s := NewStore(profiles)
	s.Add(context.Background(), "a")

	err := s.Attach(context.Background(), "u1")
	require.Error(t, err)
	assert.Equal(t, []string{"a"}, s.IDs(), "local set survives a failed attach")
}

func TestMutations_SyncFailureIsNonFatal(t *testing.T) {
	profiles := &fakeProfiles{remote: map[string][]string{"u1": nil}}
	s := NewStore(profiles)
	require.NoError(t, s.Attach(context.Background(), "u1"))

	profiles.saveErr = errors.New("profile unavailable")
	s.Add(context.Background(), "a")

	// Local mutation holds even though the remote write failed.
	assert.True(t, s.Contains("a"))
}

func TestToggle(t *testing.T) {
	s := NewStore(&fakeProfiles{})

	assert.True(t, s.Toggle(context.Background(), "p1"))
	assert.True(t, s.Contains("p1"))
	assert.False(t, s.Toggle(context.Background(), "p1"))
	assert.False(t, s.Contains("p1"))
}

func TestAddRemove_Idempotent(t *testing.T) {
	profiles := &fakeProfiles{remote: map[string][]string{"u1": nil}}
	s := NewStore(profiles)
	require.NoError(t, s.Attach(context.Background(), "u1"))

	s.Add(context.Background(), "p1")
	saves := profiles.saves
	s.Add(context.Background(), "p1")
	assert.Equal(t, saves, profiles.saves, "duplicate add must not trigger a sync")

	s.Remove(context.Background(), "p1")
	saves = profiles.saves
	s.Remove(context.Background(), "p1")
	assert.Equal(t, saves, profiles.saves)
}
