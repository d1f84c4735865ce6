package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveThenFindByID(t *testing.T) {
	repo := NewRepository()
	u := NewUser(7, "bob", "bob@example.com")
	repo.Save(u)

	got, ok := repo.FindByID(7)
	require.True(t, ok)
	assert.Same(t, u, got, "lookup must return the stored instance")
}

func TestFindByIDAbsent(t *testing.T) {
	repo := NewRepository()
	got, ok := repo.FindByID(99)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestSaveOverwritesSameID(t *testing.T) {
	repo := NewRepository()
	repo.Save(NewUser(1, "first", "first@example.com"))
	second := NewUser(1, "second", "second@example.com")
	repo.Save(second)

	require.Equal(t, 1, repo.Count())
	got, ok := repo.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, "second", got.Username)
	assert.Equal(t, "second@example.com", got.Email)
}

func TestCountCollapsesDuplicateIDs(t *testing.T) {
	repo := NewRepository()
	repo.Save(NewUser(1, "a", "a@x.com"))
	repo.Save(NewUser(2, "b", "b@x.com"))
	repo.Save(NewUser(1, "c", "c@x.com"))
	assert.Equal(t, 2, repo.Count())
}

func TestFindByUsername(t *testing.T) {
	repo := NewRepository()
	repo.Save(NewUser(1, "alice", "alice@example.com"))
	repo.Save(NewUser(2, "bob", "bob@example.com"))

	got, ok := repo.FindByUsername("bob")
	require.True(t, ok)
	assert.Equal(t, int64(2), got.ID)

	_, ok = repo.FindByUsername("carol")
	assert.False(t, ok)
}

func TestFindByUsernameEmptyStore(t *testing.T) {
	repo := NewRepository()
	got, ok := repo.FindByUsername("anyone")
	assert.False(t, ok)
	assert.Nil(t, got)
}
