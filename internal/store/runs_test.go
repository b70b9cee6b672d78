package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunsCreateMissingReferences(t *testing.T) {
	s := newTestStore(t)

	owner := createTestUser(t, s, "owner", "owner@example.com")
	plan := createTestPlan(t, s, owner)
	event := createTestEvent(t, s, plan)

	_, err := s.Runs.Create("evt_missing", owner.ID, time.Now(), "completed")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Runs.Create(event.ID, "usr_missing", time.Now(), "completed")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunsCreateAndGet(t *testing.T) {
	s := newTestStore(t)

	owner := createTestUser(t, s, "owner", "owner@example.com")
	plan := createTestPlan(t, s, owner)
	event := createTestEvent(t, s, plan)

	run, err := s.Runs.Create(event.ID, owner.ID, time.Now(), "completed")
	require.NoError(t, err)

	fetched, err := s.Runs.Get(run.ID)
	require.NoError(t, err)
	assert.Equal(t, event.ID, fetched.EventID)
	require.NotNil(t, fetched.UserID)
	assert.Equal(t, owner.ID, *fetched.UserID)
	assert.Equal(t, "completed", fetched.Status)

	_, err = s.Runs.Get("run_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunsUpdate(t *testing.T) {
	s := newTestStore(t)

	owner := createTestUser(t, s, "owner", "owner@example.com")
	plan := createTestPlan(t, s, owner)
	event := createTestEvent(t, s, plan)

	run, err := s.Runs.Create(event.ID, owner.ID, time.Now(), "missed")
	require.NoError(t, err)

	updated, err := s.Runs.Update(run.ID, time.Now().AddDate(0, 0, 1), "completed")
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)

	_, err = s.Runs.Update("run_missing", time.Now(), "completed")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRunsDelete(t *testing.T) {
	s := newTestStore(t)

	owner := createTestUser(t, s, "owner", "owner@example.com")
	plan := createTestPlan(t, s, owner)
	event := createTestEvent(t, s, plan)

	run, err := s.Runs.Create(event.ID, owner.ID, time.Now(), "completed")
	require.NoError(t, err)

	require.NoError(t, s.Runs.Delete(run.ID))

	_, err = s.Runs.Get(run.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Runs.Delete(run.ID), ErrNotFound)
}
