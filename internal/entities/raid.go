// Package entities provides core data structures for raid-gold-api.
package entities

// Tier is the difficulty a character runs a raid at
type Tier string

// Difficulty tiers
const (
	TierNormal Tier = "normal"
	TierHard   Tier = "hard"
)

// Valid reports whether the tier is one of the known difficulties
func (t Tier) Valid() bool {
	return t == TierNormal || t == TierHard
}

// String returns the string representation of the tier
func (t Tier) String() string {
	return string(t)
}

// RaidDefinition is an entry of the raid catalog.
// A gold amount of zero means the tier is unavailable for that raid.
type RaidDefinition struct {
	ID         int32  `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	NormalGold int64  `json:"normal_gold" yaml:"normalGold"`
	HardGold   int64  `json:"hard_gold" yaml:"hardGold"`
}

// Reward returns the gold awarded at the given tier and whether the tier is available
func (r *RaidDefinition) Reward(tier Tier) (int64, bool) {
	switch tier {
	case TierNormal:
		return r.NormalGold, r.NormalGold > 0
	case TierHard:
		return r.HardGold, r.HardGold > 0
	default:
		return 0, false
	}
}

// Available reports whether the raid can be run at the given tier
func (r *RaidDefinition) Available(tier Tier) bool {
	_, ok := r.Reward(tier)
	return ok
}

// Selectable reports whether the raid offers any tier at all.
// Raids with no available tier are display-only.
func (r *RaidDefinition) Selectable() bool {
	return r.Available(TierNormal) || r.Available(TierHard)
}

// DefaultTier is the tier assigned when the raid is first selected
func (r *RaidDefinition) DefaultTier() Tier {
	if !r.Available(TierNormal) && r.Available(TierHard) {
		return TierHard
	}
	return TierNormal
}

// RaidCatalog indexes raid definitions by ID
type RaidCatalog map[int32]*RaidDefinition

// NewRaidCatalog builds a catalog index from a list of definitions.
// Later duplicates replace earlier ones.
func NewRaidCatalog(raids []*RaidDefinition) RaidCatalog {
	catalog := make(RaidCatalog, len(raids))
	for _, raid := range raids {
		if raid == nil {
			continue
		}
		catalog[raid.ID] = raid
	}
	return catalog
}

// Lookup returns the raid with the given ID, if present
func (c RaidCatalog) Lookup(id int32) (*RaidDefinition, bool) {
	raid, ok := c[id]
	return raid, ok
}
