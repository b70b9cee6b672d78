package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventsCreateMissingPlan(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Events.Create("Week1", time.Now(), 5, "km", "plan_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventsCreateAndGet(t *testing.T) {
	s := newTestStore(t)

	owner := createTestUser(t, s, "owner", "owner@example.com")
	plan := createTestPlan(t, s, owner)
	event := createTestEvent(t, s, plan)

	fetched, err := s.Events.Get(event.ID)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, fetched.PlanID)
	assert.Equal(t, "Week1", fetched.Name)
	assert.Equal(t, 5.0, fetched.Distance)

	_, err = s.Events.Get("evt_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventsUpdate(t *testing.T) {
	s := newTestStore(t)

	owner := createTestUser(t, s, "owner", "owner@example.com")
	plan := createTestPlan(t, s, owner)
	event := createTestEvent(t, s, plan)

	updated, err := s.Events.Update(event.ID, "Week2", time.Now().AddDate(0, 0, 14), 10, "km")
	require.NoError(t, err)
	assert.Equal(t, "Week2", updated.Name)
	assert.Equal(t, 10.0, updated.Distance)
	assert.Equal(t, plan.ID, updated.PlanID)

	_, err = s.Events.Update("evt_missing", "x", time.Now(), 1, "km")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventsListRuns(t *testing.T) {
	s := newTestStore(t)

	owner := createTestUser(t, s, "owner", "owner@example.com")
	plan := createTestPlan(t, s, owner)
	event := createTestEvent(t, s, plan)

	// an event with zero runs yields an empty list, not an error
	runs, err := s.Events.ListRuns(event.ID)
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = s.Runs.Create(event.ID, owner.ID, time.Now(), "completed")
	require.NoError(t, err)
	_, err = s.Runs.Create(event.ID, owner.ID, time.Now(), "missed")
	require.NoError(t, err)

	runs, err = s.Events.ListRuns(event.ID)
	require.NoError(t, err)
	assert.Len(t, runs, 2)

	_, err = s.Events.ListRuns("evt_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventsDeleteCascadesRuns(t *testing.T) {
	s := newTestStore(t)

	owner := createTestUser(t, s, "owner", "owner@example.com")
	plan := createTestPlan(t, s, owner)
	event := createTestEvent(t, s, plan)

	run, err := s.Runs.Create(event.ID, owner.ID, time.Now(), "completed")
	require.NoError(t, err)

	require.NoError(t, s.Events.Delete(event.ID))

	_, err = s.Events.Get(event.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Runs.Get(run.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// the parent plan survives
	_, err = s.Plans.Get(plan.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, s.Events.Delete(event.ID), ErrNotFound)
}
