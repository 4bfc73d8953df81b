package service

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/shanewhatthesix/Fight-Card/internal/engine"
	"github.com/shanewhatthesix/Fight-Card/internal/game"
	"gorm.io/gorm"
)

type mockRepo struct {
	chars       []game.Character
	recordedIDs [][]uint
	recordedWin [][]uint
	recordErr   error
}

func (m *mockRepo) GetCharacters() ([]game.Character, error) {
	return m.chars, nil
}

func (m *mockRepo) GetCharacterByID(id uint) (*game.Character, error) {
	for i := range m.chars {
		if m.chars[i].ID == id {
			c := m.chars[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *mockRepo) GetCharactersByIDs(ids []uint) ([]game.Character, error) {
	var out []game.Character
	for _, id := range ids {
		if c, _ := m.GetCharacterByID(id); c != nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *mockRepo) RecordBattleResult(participantIDs, winnerIDs []uint) error {
	m.recordedIDs = append(m.recordedIDs, participantIDs)
	m.recordedWin = append(m.recordedWin, winnerIDs)
	return m.recordErr
}

func testChar(id uint, name string, hp, fireDamage int) game.Character {
	return game.Character{
		Model:   gorm.Model{ID: id},
		Name:    name,
		Element: "fire",
		Stats:   game.Stats{HP: hp, Attack: game.ElementMap{}.Normalized()},
		Skills: []game.Skill{{
			CharacterID: id,
			Name:        "Strike",
			Effect:      "a direct hit",
			Damage:      game.ElementMap{game.Fire: fireDamage}.Normalized(),
		}},
	}
}

func testRoster(n int) []game.Character {
	names := []string{"Ash", "Brier", "Cinder", "Dune", "Ember", "Flint"}
	out := make([]game.Character, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, testChar(uint(i+1), names[i%len(names)], 100, 10))
	}
	return out
}

func TestSelectTeams_ExplicitPreservesSlotOrder(t *testing.T) {
	repo := &mockRepo{chars: testRoster(4)}
	eng := engine.NewWithSource(rand.NewSource(1))

	t1, t2, err := SelectTeams(repo, eng, []uint{3, 1}, []uint{4, 2}, game.ModeTwoVsTwo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if t1[0].ID != 3 || t1[1].ID != 1 || t2[0].ID != 4 || t2[1].ID != 2 {
		t.Fatalf("slot order not preserved: %v %v", t1, t2)
	}
}

func TestSelectTeams_WrongTeamSize(t *testing.T) {
	repo := &mockRepo{chars: testRoster(4)}
	eng := engine.NewWithSource(rand.NewSource(1))

	_, _, err := SelectTeams(repo, eng, []uint{1, 2}, []uint{3, 4}, game.ModeOneVsOne)
	if !errors.Is(err, ErrWrongTeamSize) {
		t.Fatalf("expected ErrWrongTeamSize, got %v", err)
	}
}

func TestSelectTeams_UnknownCharacter(t *testing.T) {
	repo := &mockRepo{chars: testRoster(2)}
	eng := engine.NewWithSource(rand.NewSource(1))

	_, _, err := SelectTeams(repo, eng, []uint{1}, []uint{99}, game.ModeOneVsOne)
	if !errors.Is(err, ErrCharacterNotFound) {
		t.Fatalf("expected ErrCharacterNotFound, got %v", err)
	}
}

func TestSelectTeams_RandomDrawsDistinctCharacters(t *testing.T) {
	repo := &mockRepo{chars: testRoster(6)}
	eng := engine.NewWithSource(rand.NewSource(7))

	t1, t2, err := SelectTeams(repo, eng, nil, nil, game.ModeTwoVsTwo)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := map[uint]bool{}
	for _, c := range append(append([]game.Character{}, t1...), t2...) {
		if seen[c.ID] {
			t.Fatalf("character %d drawn twice", c.ID)
		}
		seen[c.ID] = true
	}
	if len(seen) != 4 {
		t.Fatalf("expected 4 distinct characters, got %d", len(seen))
	}
}

func TestSelectTeams_NotEnoughForRandomDraw(t *testing.T) {
	repo := &mockRepo{chars: testRoster(3)}
	eng := engine.NewWithSource(rand.NewSource(1))

	_, _, err := SelectTeams(repo, eng, nil, nil, game.ModeTwoVsTwo)
	if !errors.Is(err, ErrNotEnoughCharacters) {
		t.Fatalf("expected ErrNotEnoughCharacters, got %v", err)
	}
}

func TestSelectTeams_RejectsFreeForAll(t *testing.T) {
	repo := &mockRepo{chars: testRoster(4)}
	eng := engine.NewWithSource(rand.NewSource(1))

	_, _, err := SelectTeams(repo, eng, nil, nil, game.ModeFreeForAll)
	if !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
}

func TestSelectTeams_MalformedCharacterRejected(t *testing.T) {
	broken := testChar(1, "Ash", 100, 10)
	broken.Stats.Attack = game.ElementMap{game.Fire: 1}
	repo := &mockRepo{chars: []game.Character{broken, testChar(2, "Brier", 100, 10)}}
	eng := engine.NewWithSource(rand.NewSource(1))

	_, _, err := SelectTeams(repo, eng, []uint{1}, []uint{2}, game.ModeOneVsOne)
	if !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("expected ErrInvalidCharacter, got %v", err)
	}
}
