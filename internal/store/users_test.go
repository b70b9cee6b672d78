package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersCreateAndGet(t *testing.T) {
	s := newTestStore(t)

	created := createTestUser(t, s, "runner", "runner@example.com")
	assert.NotEmpty(t, created.ID)

	fetched, err := s.Users.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Username, fetched.Username)
	assert.Equal(t, created.Email, fetched.Email)
	assert.Equal(t, created.PasswordHash, fetched.PasswordHash)

	byEmail, err := s.Users.GetByEmail("runner@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byUsername, err := s.Users.GetByUsername("runner")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byUsername.ID)
}

func TestUsersGetNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Users.GetByID("usr_missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Users.GetByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsersDuplicateEmailConflict(t *testing.T) {
	s := newTestStore(t)

	first := createTestUser(t, s, "u", "e@x.com")

	_, err := s.Users.Create("someone-else", "e@x.com", "other-hash")
	assert.ErrorIs(t, err, ErrConflict)

	// the store still contains exactly the first user under that email
	fetched, err := s.Users.GetByEmail("e@x.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, fetched.ID)
	assert.Equal(t, "u", fetched.Username)
}

func TestUsersUpdateOptionalFields(t *testing.T) {
	s := newTestStore(t)

	user := createTestUser(t, s, "before", "before@example.com")

	username := "after"
	updated, err := s.Users.Update(user.ID, UserUpdate{Username: &username})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Username)
	assert.Equal(t, "before@example.com", updated.Email)

	// no fields set leaves the record unchanged
	unchanged, err := s.Users.Update(user.ID, UserUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "after", unchanged.Username)
	assert.Equal(t, "before@example.com", unchanged.Email)
}

func TestUsersUpdateEmailConflict(t *testing.T) {
	s := newTestStore(t)

	createTestUser(t, s, "a", "a@example.com")
	b := createTestUser(t, s, "b", "b@example.com")

	email := "a@example.com"
	_, err := s.Users.Update(b.ID, UserUpdate{Email: &email})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUsersUpdateNotFound(t *testing.T) {
	s := newTestStore(t)

	username := "ghost"
	_, err := s.Users.Update("usr_missing", UserUpdate{Username: &username})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUsersDeleteCascadesMemberships(t *testing.T) {
	s := newTestStore(t)

	owner := createTestUser(t, s, "owner", "owner@example.com")
	plan := createTestPlan(t, s, owner)

	require.NoError(t, s.Users.Delete(owner.ID))

	_, err := s.Users.GetByID(owner.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Memberships.GetTier(owner.ID, plan.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// the plan itself survives
	_, err = s.Plans.Get(plan.ID)
	assert.NoError(t, err)
}

func TestUsersDeletePreservesRuns(t *testing.T) {
	s := newTestStore(t)

	owner := createTestUser(t, s, "owner", "owner@example.com")
	plan := createTestPlan(t, s, owner)
	event := createTestEvent(t, s, plan)

	run, err := s.Runs.Create(event.ID, owner.ID, time.Now(), "completed")
	require.NoError(t, err)

	require.NoError(t, s.Users.Delete(owner.ID))

	// run survives with the user reference cleared
	kept, err := s.Runs.Get(run.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.UserID)
	assert.Equal(t, "completed", kept.Status)
}

func TestUsersDeleteNotFound(t *testing.T) {
	s := newTestStore(t)

	assert.ErrorIs(t, s.Users.Delete("usr_missing"), ErrNotFound)
}
