package service

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/shanewhatthesix/Fight-Card/internal/engine"
	"github.com/shanewhatthesix/Fight-Card/internal/game"
)

func TestRunBattle_OneVsOneRecordsLedgerOnce(t *testing.T) {
	repo := &mockRepo{chars: []game.Character{
		testChar(1, "Ash", 10, 10000),
		testChar(2, "Brier", 10, 0),
	}}
	eng := engine.NewWithSource(rand.NewSource(1))

	res, err := RunBattle(repo, eng, BattleRequest{
		Mode:     game.ModeOneVsOne,
		Team1IDs: []uint{1},
		Team2IDs: []uint{2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Result == "" || len(res.Steps) == 0 {
		t.Fatalf("expected a populated battle result")
	}
	if len(repo.recordedIDs) != 1 {
		t.Fatalf("ledger must be written exactly once, got %d writes", len(repo.recordedIDs))
	}
	if got := repo.recordedIDs[0]; len(got) != 2 {
		t.Fatalf("both participants must be recorded, got %v", got)
	}
}

func TestRunBattle_LedgerFailureDoesNotFailBattle(t *testing.T) {
	repo := &mockRepo{
		chars: []game.Character{
			testChar(1, "Ash", 10, 10000),
			testChar(2, "Brier", 10, 0),
		},
		recordErr: errors.New("disk full"),
	}
	eng := engine.NewWithSource(rand.NewSource(1))

	res, err := RunBattle(repo, eng, BattleRequest{
		Mode:     game.ModeOneVsOne,
		Team1IDs: []uint{1},
		Team2IDs: []uint{2},
	})
	if err != nil {
		t.Fatalf("a ledger write failure must not fail the battle: %v", err)
	}
	if res == nil || res.Result == "" {
		t.Fatalf("expected a battle result despite the ledger failure")
	}
}

func TestRunBattle_FreeForAllNeedsTwoCombatants(t *testing.T) {
	repo := &mockRepo{chars: []game.Character{testChar(1, "Ash", 10, 10)}}
	eng := engine.NewWithSource(rand.NewSource(1))

	_, err := RunBattle(repo, eng, BattleRequest{Mode: game.ModeFreeForAll})
	if !errors.Is(err, ErrNotEnoughCombatants) {
		t.Fatalf("expected ErrNotEnoughCombatants, got %v", err)
	}
}

func TestRunBattle_FreeForAllUsesWholeRoster(t *testing.T) {
	repo := &mockRepo{chars: []game.Character{
		testChar(1, "Ash", 20, 10000),
		testChar(2, "Brier", 20, 0),
		testChar(3, "Cinder", 20, 0),
	}}
	eng := engine.NewWithSource(rand.NewSource(2))

	_, err := RunBattle(repo, eng, BattleRequest{Mode: game.ModeFreeForAll})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.recordedIDs) != 1 || len(repo.recordedIDs[0]) != 3 {
		t.Fatalf("expected one ledger write covering all three combatants, got %v", repo.recordedIDs)
	}
}

func TestRunBattle_InvalidMode(t *testing.T) {
	repo := &mockRepo{chars: testRoster(2)}
	eng := engine.NewWithSource(rand.NewSource(1))

	_, err := RunBattle(repo, eng, BattleRequest{Mode: game.BattleMode("3v3")})
	if !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got %v", err)
	}
}
