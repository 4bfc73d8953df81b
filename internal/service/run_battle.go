package service

import (
	"fmt"

	"github.com/shanewhatthesix/Fight-Card/internal/engine"
	"github.com/shanewhatthesix/Fight-Card/internal/game"
	"github.com/shanewhatthesix/Fight-Card/internal/logging"
)

// BattleRequest selects the combatants for a one-shot battle. Empty id
// slices mean random selection for team modes; free-for-all always uses
// the full roster.
type BattleRequest struct {
	Mode     game.BattleMode
	Team1IDs []uint
	Team2IDs []uint
}

// BattleResult is the complete outcome of a simulated battle.
type BattleResult struct {
	Steps  []game.LogEntry `json:"steps"`
	Result string          `json:"result"`
}

// RunBattle simulates one battle to completion and records it on the
// win-rate ledger. A ledger write failure does not fail the battle; the
// result is already decided by then.
func RunBattle(repo BattleRepo, eng *engine.Engine, req BattleRequest) (*BattleResult, error) {
	var out *engine.Outcome

	switch req.Mode {
	case game.ModeOneVsOne, game.ModeTwoVsTwo:
		team1Chars, team2Chars, err := SelectTeams(repo, eng, req.Team1IDs, req.Team2IDs, req.Mode)
		if err != nil {
			return nil, err
		}
		team1 := make([]*game.Participant, len(team1Chars))
		for i := range team1Chars {
			team1[i] = game.NewParticipant(team1Chars[i], game.TeamOne)
		}
		team2 := make([]*game.Participant, len(team2Chars))
		for i := range team2Chars {
			team2[i] = game.NewParticipant(team2Chars[i], game.TeamTwo)
		}
		out = eng.Simulate(team1, team2, req.Mode)

	case game.ModeFreeForAll:
		chars, err := repo.GetCharacters()
		if err != nil {
			return nil, err
		}
		if len(chars) < 2 {
			return nil, fmt.Errorf("%w: have %d", ErrNotEnoughCombatants, len(chars))
		}
		all := make([]*game.Participant, 0, len(chars))
		for _, c := range chars {
			if err := c.Validate(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidCharacter, err)
			}
			all = append(all, game.NewParticipant(c, ""))
		}
		out = eng.SimulateFreeForAll(all)

	default:
		return nil, ErrInvalidMode
	}

	if err := repo.RecordBattleResult(out.ParticipantIDs, out.WinnerIDs); err != nil {
		logging.Warn("failed to record battle result", err, logging.Fields{
			"participants": len(out.ParticipantIDs),
			"winners":      len(out.WinnerIDs),
		})
	}

	return &BattleResult{Steps: out.Log, Result: out.Result}, nil
}
