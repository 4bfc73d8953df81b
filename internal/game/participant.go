package game

// Team labels used for win/loss attribution in team modes. Free-for-all
// and interactive duels leave the label empty.
const (
	TeamOne = "Team 1"
	TeamTwo = "Team 2"
)

// Participant is the mutable runtime entity derived from a Character for
// the duration of a single battle. It is owned exclusively by the battle
// that created it and never shared across concurrent battles.
type Participant struct {
	Character   Character `json:"character"`
	Team        string    `json:"team,omitempty"`
	CurrentHP   int       `json:"current_hp"`
	MaxHP       int       `json:"max_hp"`
	DamageDealt int       `json:"damage_dealt"`
	DamageTaken int       `json:"damage_taken"`
	HealingDone int       `json:"healing_done"`
}

// NewParticipant snapshots a character into a fresh battle participant
// with full HP and zeroed accumulators.
func NewParticipant(c Character, team string) *Participant {
	return &Participant{
		Character: c,
		Team:      team,
		CurrentHP: c.Stats.HP,
		MaxHP:     c.Stats.HP,
	}
}

// Alive reports whether the participant can still act.
func (p *Participant) Alive() bool { return p.CurrentHP > 0 }

// Name returns the underlying character's display name.
func (p *Participant) Name() string { return p.Character.Name }

// ApplyDamage subtracts dmg from the participant's HP, clamping the stored
// value at 0 (several attackers may overkill in the same round). It
// returns the HP before and after the hit.
func (p *Participant) ApplyDamage(dmg int) (before, after int) {
	before = p.CurrentHP
	after = before - dmg
	if after < 0 {
		after = 0
	}
	p.CurrentHP = after
	return before, after
}

// FinalStats folds the participant's accumulators into a log-ready record.
func (p *Participant) FinalStats() CharacterStats {
	return CharacterStats{
		Name:        p.Character.Name,
		Team:        p.Team,
		DamageDealt: p.DamageDealt,
		DamageTaken: p.DamageTaken,
		HealingDone: p.HealingDone,
	}
}
