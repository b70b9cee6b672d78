package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trainlog-dev/trainlog/internal/models"
)

func TestMembershipsAddDuplicateConflict(t *testing.T) {
	s := newTestStore(t)

	owner := createTestUser(t, s, "owner", "owner@example.com")
	member := createTestUser(t, s, "member", "member@example.com")
	plan := createTestPlan(t, s, owner)

	_, err := s.Memberships.Add(member.ID, plan.ID, models.TierParticipant)
	require.NoError(t, err)

	_, err = s.Memberships.Add(member.ID, plan.ID, models.TierAdmin)
	assert.ErrorIs(t, err, ErrConflict)

	// the original tier is untouched
	tier, err := s.Memberships.GetTier(member.ID, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TierParticipant, tier)
}

func TestMembershipsAddMissingReferences(t *testing.T) {
	s := newTestStore(t)

	owner := createTestUser(t, s, "owner", "owner@example.com")
	plan := createTestPlan(t, s, owner)

	_, err := s.Memberships.Add("usr_missing", plan.ID, models.TierParticipant)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Memberships.Add(owner.ID, "plan_missing", models.TierParticipant)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMembershipsRemove(t *testing.T) {
	s := newTestStore(t)

	owner := createTestUser(t, s, "owner", "owner@example.com")
	member := createTestUser(t, s, "member", "member@example.com")
	plan := createTestPlan(t, s, owner)

	_, err := s.Memberships.Add(member.ID, plan.ID, models.TierParticipant)
	require.NoError(t, err)

	require.NoError(t, s.Memberships.Remove(member.ID, plan.ID))

	_, err = s.Memberships.GetTier(member.ID, plan.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.Memberships.Remove(member.ID, plan.ID), ErrNotFound)
}

func TestMembershipsListMembers(t *testing.T) {
	s := newTestStore(t)

	owner := createTestUser(t, s, "owner", "owner@example.com")
	member := createTestUser(t, s, "member", "member@example.com")
	plan := createTestPlan(t, s, owner)

	_, err := s.Memberships.Add(member.ID, plan.ID, models.TierAdmin)
	require.NoError(t, err)

	members, err := s.Memberships.ListMembers(plan.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)

	tiers := make(map[string]models.Tier, len(members))
	for _, m := range members {
		tiers[m.User.ID] = m.Tier
	}
	assert.Equal(t, models.TierOwner, tiers[owner.ID])
	assert.Equal(t, models.TierAdmin, tiers[member.ID])

	_, err = s.Memberships.ListMembers("plan_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMembershipsListPlans(t *testing.T) {
	s := newTestStore(t)

	owner := createTestUser(t, s, "owner", "owner@example.com")
	other := createTestUser(t, s, "other", "other@example.com")

	first := createTestPlan(t, s, owner)
	second := createTestPlan(t, s, owner)

	plans, err := s.Memberships.ListPlans(owner.ID)
	require.NoError(t, err)
	require.Len(t, plans, 2)

	ids := []string{plans[0].ID, plans[1].ID}
	assert.Contains(t, ids, first.ID)
	assert.Contains(t, ids, second.ID)

	// a user with no memberships gets an empty list, not an error
	none, err := s.Memberships.ListPlans(other.ID)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = s.Memberships.ListPlans("usr_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMembershipsHasAtLeast(t *testing.T) {
	s := newTestStore(t)

	owner := createTestUser(t, s, "owner", "owner@example.com")
	admin := createTestUser(t, s, "admin", "admin@example.com")
	participant := createTestUser(t, s, "participant", "participant@example.com")
	outsider := createTestUser(t, s, "outsider", "outsider@example.com")
	plan := createTestPlan(t, s, owner)

	_, err := s.Memberships.Add(admin.ID, plan.ID, models.TierAdmin)
	require.NoError(t, err)
	_, err = s.Memberships.Add(participant.ID, plan.ID, models.TierParticipant)
	require.NoError(t, err)

	cases := []struct {
		name     string
		userID   string
		required models.Tier
		want     bool
	}{
		{"owner meets owner", owner.ID, models.TierOwner, true},
		{"owner meets participant", owner.ID, models.TierParticipant, true},
		{"admin meets admin", admin.ID, models.TierAdmin, true},
		{"admin below owner", admin.ID, models.TierOwner, false},
		{"participant meets participant", participant.ID, models.TierParticipant, true},
		{"participant below admin", participant.ID, models.TierAdmin, false},
		{"non-member fails", outsider.ID, models.TierParticipant, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := s.Memberships.HasAtLeast(tc.userID, plan.ID, tc.required)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
