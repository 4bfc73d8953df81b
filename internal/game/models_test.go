package game

import (
	"testing"

	"gorm.io/gorm"
)

func TestElementMap_Normalized(t *testing.T) {
	m := ElementMap{Fire: 10, Water: -3}
	n := m.Normalized()
	if !n.Complete() {
		t.Fatalf("normalized map must define every element")
	}
	if n[Fire] != 10 || n[Water] != -3 || n[Mental] != 0 {
		t.Fatalf("normalization changed authored values: %v", n)
	}
	if m.Complete() {
		t.Fatalf("normalization must not mutate the receiver")
	}
}

func TestParticipant_ApplyDamageClampsAtZero(t *testing.T) {
	c := Character{
		Model: gorm.Model{ID: 1},
		Name:  "Ash",
		Stats: Stats{HP: 10, Attack: ElementMap{}.Normalized()},
	}
	p := NewParticipant(c, TeamOne)

	before, after := p.ApplyDamage(4)
	if before != 10 || after != 6 || p.CurrentHP != 6 {
		t.Fatalf("partial hit: before=%d after=%d hp=%d", before, after, p.CurrentHP)
	}

	before, after = p.ApplyDamage(100)
	if before != 6 || after != 0 || p.CurrentHP != 0 {
		t.Fatalf("overkill must clamp at 0: before=%d after=%d hp=%d", before, after, p.CurrentHP)
	}
	if p.Alive() {
		t.Fatalf("a participant at 0 HP is defeated")
	}
}

func TestCharacter_Validate(t *testing.T) {
	valid := Character{
		Model: gorm.Model{ID: 1},
		Name:  "Ash",
		Stats: Stats{HP: 10, Attack: ElementMap{}.Normalized()},
		Skills: []Skill{
			{Name: "Strike", Damage: ElementMap{Fire: 5}.Normalized()},
		},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid character rejected: %v", err)
	}

	noID := valid
	noID.ID = 0
	if err := noID.Validate(); err == nil {
		t.Fatalf("expected rejection for missing id")
	}

	incomplete := valid
	incomplete.Skills = []Skill{{Name: "Strike", Damage: ElementMap{Fire: 5}}}
	if err := incomplete.Validate(); err == nil {
		t.Fatalf("expected rejection for incomplete damage map")
	}
}

func TestSession_AliveOpponents(t *testing.T) {
	mk := func(id uint, name string, hp int) Participant {
		return *NewParticipant(Character{
			Model: gorm.Model{ID: id},
			Name:  name,
			Stats: Stats{HP: hp, Attack: ElementMap{}.Normalized()},
		}, "")
	}
	s := &BattleSession{Participants: []Participant{mk(1, "Ash", 10), mk(2, "Brier", 10)}}

	opps := s.AliveOpponents(1)
	if len(opps) != 1 || opps[0].Character.ID != 2 {
		t.Fatalf("expected sole opponent 2, got %v", opps)
	}

	s.Participants[1].ApplyDamage(10)
	if opps := s.AliveOpponents(1); len(opps) != 0 {
		t.Fatalf("defeated opponents must be excluded, got %v", opps)
	}
	if s.AliveCount() != 1 {
		t.Fatalf("expected one living participant, got %d", s.AliveCount())
	}
	if s.ParticipantByID(99) != nil {
		t.Fatalf("unknown id must return nil")
	}
}

func TestBattleMode(t *testing.T) {
	if ModeOneVsOne.TeamSize() != 1 || ModeTwoVsTwo.TeamSize() != 2 || ModeFreeForAll.TeamSize() != 0 {
		t.Fatalf("unexpected team sizes")
	}
	if !ModeFreeForAll.Valid() || BattleMode("3v3").Valid() {
		t.Fatalf("mode validity is wrong")
	}
}
