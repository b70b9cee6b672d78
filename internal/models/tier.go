package models

// Tier is the permission level of a plan membership.
type Tier string

const (
	TierOwner       Tier = "OWNER"
	TierAdmin       Tier = "ADMIN"
	TierParticipant Tier = "PARTICIPANT"
)

var tierRank = map[Tier]int{
	TierOwner:       3,
	TierAdmin:       2,
	TierParticipant: 1,
}

func (t Tier) Valid() bool {
	_, ok := tierRank[t]
	return ok
}

// AtLeast reports whether t carries at least the privilege of required.
func (t Tier) AtLeast(required Tier) bool {
	return tierRank[t] >= tierRank[required]
}
