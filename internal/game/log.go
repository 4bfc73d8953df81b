package game

// EventType tags a battle log entry.
type EventType string

const (
	EventStart         EventType = "start"
	EventTurnStart     EventType = "turn_start"
	EventCharacterTurn EventType = "character_turn"
	EventSkipTurn      EventType = "skip_turn"
	EventNoSkill       EventType = "no_skill"
	EventUseSkill      EventType = "use_skill"
	EventDealDamage    EventType = "deal_damage"
	EventHPUpdate      EventType = "hp_update"
	EventDefeated      EventType = "defeated"
	EventEnd           EventType = "end"
)

// CharacterStats summarizes one participant's totals in an end entry.
type CharacterStats struct {
	Name        string `json:"name"`
	Team        string `json:"team,omitempty"`
	DamageDealt int    `json:"damage_dealt"`
	DamageTaken int    `json:"damage_taken"`
	HealingDone int    `json:"healing_done"`
}

// LogEntry is one step of a battle log. The log is append-only and is the
// sole externally visible record of how a battle unfolded. Numeric fields
// that are legitimately zero for their event (a fully resisted hit, a
// killing blow leaving 0 HP) are pointers so they still serialize while
// staying absent from unrelated events.
type LogEntry struct {
	Event            EventType        `json:"event"`
	Turn             int              `json:"turn,omitempty"`
	Character        string           `json:"character,omitempty"`
	Attacker         string           `json:"attacker,omitempty"`
	Defender         string           `json:"defender,omitempty"`
	Skill            string           `json:"skill,omitempty"`
	Effect           string           `json:"effect,omitempty"`
	DamageDealt      *int             `json:"damage_dealt,omitempty"`
	DefenderHPBefore *int             `json:"defender_hp_before,omitempty"`
	DefenderHPAfter  *int             `json:"defender_hp_after,omitempty"`
	HP               *int             `json:"hp,omitempty"`
	Result           string           `json:"result,omitempty"`
	CharacterStats   []CharacterStats `json:"character_stats,omitempty"`
	Message          string           `json:"message"`
}

// IntRef returns a pointer to v for optional numeric log fields.
func IntRef(v int) *int { return &v }
