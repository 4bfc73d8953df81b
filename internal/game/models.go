package game

import (
	"fmt"

	"gorm.io/gorm"
)

// Stats holds a character's baseline combat numbers. Attack power is kept
// per element to match the authoring tools' record shape; the damage
// formula itself reads damage from skills, not from here.
type Stats struct {
	HP     int        `json:"hp" gorm:"column:hp"`
	Attack ElementMap `json:"atk" gorm:"column:attack;serializer:json"`
}

// Character is the immutable input to a battle. Records are authored by
// external tools and seeded into the database; the engine only ever reads
// them. Skills and attributes keep their stored order, which is
// significant: resistance lookup is "first matching attribute wins".
type Character struct {
	gorm.Model
	Name       string      `json:"name"`
	Element    string      `json:"element"`
	Stats      Stats       `json:"stats" gorm:"embedded"`
	Skills     []Skill     `json:"skills"`
	Attributes []Attribute `json:"attributes"`
}

// Skill deals per-element damage when used. Effect is free descriptive
// text shown in the battle log.
type Skill struct {
	gorm.Model  `json:"-"`
	CharacterID uint       `json:"-"`
	Name        string     `json:"name"`
	Effect      string     `json:"effect"`
	Damage      ElementMap `json:"damage" gorm:"serializer:json"`
}

// Attribute grants per-element resistance. Negative resistance is a
// vulnerability and increases damage taken.
type Attribute struct {
	gorm.Model  `json:"-"`
	CharacterID uint       `json:"-"`
	Name        string     `json:"name"`
	Resistance  ElementMap `json:"resistance" gorm:"serializer:json"`
}

// Validate checks the completeness invariant the engine relies on. The
// engine rejects malformed records instead of patching them; normalization
// of missing element keys is an ingestion-time concern (see config).
func (c *Character) Validate() error {
	if c.ID == 0 {
		return fmt.Errorf("character %q: missing id", c.Name)
	}
	if c.Name == "" {
		return fmt.Errorf("character %d: missing name", c.ID)
	}
	if c.Stats.HP <= 0 {
		return fmt.Errorf("character %q: hp must be positive", c.Name)
	}
	if !c.Stats.Attack.Complete() {
		return fmt.Errorf("character %q: attack map is missing elements", c.Name)
	}
	for _, s := range c.Skills {
		if !s.Damage.Complete() {
			return fmt.Errorf("character %q: skill %q damage map is missing elements", c.Name, s.Name)
		}
	}
	for _, a := range c.Attributes {
		if !a.Resistance.Complete() {
			return fmt.Errorf("character %q: attribute %q resistance map is missing elements", c.Name, a.Name)
		}
	}
	return nil
}

// SkillByName returns the character's skill with the given name, or nil.
func (c *Character) SkillByName(name string) *Skill {
	for i := range c.Skills {
		if c.Skills[i].Name == name {
			return &c.Skills[i]
		}
	}
	return nil
}

// WinRate stores aggregate battle counters for one character. Records are
// created lazily on a character's first battle and never deleted by the
// engine.
type WinRate struct {
	gorm.Model   `json:"-"`
	CharacterID  uint `json:"-" gorm:"uniqueIndex"`
	TotalBattles int  `json:"total_battles"`
	Wins         int  `json:"wins"`
}

// BattleMode selects how participants are grouped.
type BattleMode string

const (
	ModeOneVsOne   BattleMode = "1v1"
	ModeTwoVsTwo   BattleMode = "2v2"
	ModeFreeForAll BattleMode = "free_for_all"
)

// TeamSize returns the number of characters per side, or 0 for modes
// without team grouping.
func (m BattleMode) TeamSize() int {
	switch m {
	case ModeOneVsOne:
		return 1
	case ModeTwoVsTwo:
		return 2
	default:
		return 0
	}
}

// Valid reports whether m is a known battle mode.
func (m BattleMode) Valid() bool {
	switch m {
	case ModeOneVsOne, ModeTwoVsTwo, ModeFreeForAll:
		return true
	}
	return false
}
