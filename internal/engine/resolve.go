package engine

import (
	"fmt"
	"strings"

	"github.com/shanewhatthesix/Fight-Card/internal/game"
)

// Outcome is the complete result of one simulated battle. Persistence is
// the caller's job: the service layer records ParticipantIDs/WinnerIDs in
// the win-rate ledger exactly once per battle.
type Outcome struct {
	Log            []game.LogEntry
	Result         string
	ParticipantIDs []uint
	WinnerIDs      []uint
}

// Simulate runs a full team battle (1v1 or 2v2) to completion and returns
// the ordered log and result. Per round: the set of living participants is
// snapshotted and shuffled (re-randomized every round), then each acts in
// that order. An actor defeated earlier in the same round skips, an actor
// with no skills forfeits, and everyone else uses a random skill on a
// random living opponent. A side being emptied finishes the battle
// immediately, mid-round.
func (e *Engine) Simulate(team1, team2 []*game.Participant, mode game.BattleMode) *Outcome {
	all := append(append([]*game.Participant{}, team1...), team2...)
	log := []game.LogEntry{startEntry(team1, team2, mode)}

	turn := 1
battle:
	for anyAlive(team1) && anyAlive(team2) && turn <= MaxTurns {
		log = append(log, game.LogEntry{
			Event:   game.EventTurnStart,
			Turn:    turn,
			Message: fmt.Sprintf("--- Turn %d ---", turn),
		})

		actors := aliveOf(all)
		e.shuffle(len(actors), func(i, j int) { actors[i], actors[j] = actors[j], actors[i] })

		for _, attacker := range actors {
			if !attacker.Alive() {
				log = append(log, game.LogEntry{
					Event:     game.EventSkipTurn,
					Character: attacker.Name(),
					Message:   fmt.Sprintf("%q has been defeated and skips their turn.", attacker.Name()),
				})
				continue
			}

			log = append(log, game.LogEntry{
				Event:     game.EventCharacterTurn,
				Character: attacker.Name(),
				Message:   fmt.Sprintf("%q takes their turn.", attacker.Name()),
			})

			opponents := opposingTeam(attacker, team1, team2)
			living := aliveOf(opponents)
			if len(living) == 0 {
				break battle
			}

			if len(attacker.Character.Skills) == 0 {
				log = append(log, game.LogEntry{
					Event:     game.EventNoSkill,
					Character: attacker.Name(),
					Message:   fmt.Sprintf("%q has no skills and forfeits the turn.", attacker.Name()),
				})
				continue
			}

			skill := &attacker.Character.Skills[e.Intn(len(attacker.Character.Skills))]
			defender := living[e.Intn(len(living))]
			e.ResolveAttack(attacker, defender, skill, &log)

			if !defender.Alive() && !anyAlive(opponents) {
				// The last living enemy fell mid-round: finalize now.
				winners := team1
				if attacker.Team == game.TeamTwo {
					winners = team2
				}
				result := teamVictoryMessage(winners, mode)
				log = append(log, endEntry(result, all))
				return &Outcome{
					Log:            log,
					Result:         result,
					ParticipantIDs: participantIDs(all),
					WinnerIDs:      participantIDs(winners),
				}
			}
		}

		turn++
		if !anyAlive(team1) || !anyAlive(team2) {
			break
		}
	}

	// Turn limit reached, or the last defeat landed on the round's final
	// action: classify by which sides still have survivors.
	var result string
	var winners []*game.Participant
	switch {
	case anyAlive(team1) && anyAlive(team2):
		result = "The battle ends in a draw! (turn limit reached)"
	case anyAlive(team1):
		winners = team1
		result = teamVictoryMessage(team1, mode)
	case anyAlive(team2):
		winners = team2
		result = teamVictoryMessage(team2, mode)
	default:
		result = "The battle ends in a draw! (both teams were defeated)"
	}
	log = append(log, endEntry(result, all))
	return &Outcome{
		Log:            log,
		Result:         result,
		ParticipantIDs: participantIDs(all),
		WinnerIDs:      participantIDs(winners),
	}
}

func startEntry(team1, team2 []*game.Participant, mode game.BattleMode) game.LogEntry {
	if mode == game.ModeOneVsOne {
		return game.LogEntry{
			Event:   game.EventStart,
			Message: fmt.Sprintf("1v1 battle begins: %q vs %q", team1[0].Name(), team2[0].Name()),
		}
	}
	return game.LogEntry{
		Event: game.EventStart,
		Message: fmt.Sprintf("2v2 battle begins: Team 1 (%s) vs Team 2 (%s)",
			joinNames(team1), joinNames(team2)),
	}
}

func endEntry(result string, all []*game.Participant) game.LogEntry {
	stats := make([]game.CharacterStats, 0, len(all))
	for _, p := range all {
		stats = append(stats, p.FinalStats())
	}
	return game.LogEntry{
		Event:          game.EventEnd,
		Result:         result,
		CharacterStats: stats,
		Message:        result,
	}
}

func opposingTeam(p *game.Participant, team1, team2 []*game.Participant) []*game.Participant {
	if p.Team == game.TeamOne {
		return team2
	}
	return team1
}

func anyAlive(parts []*game.Participant) bool {
	for _, p := range parts {
		if p.Alive() {
			return true
		}
	}
	return false
}

func aliveOf(parts []*game.Participant) []*game.Participant {
	out := make([]*game.Participant, 0, len(parts))
	for _, p := range parts {
		if p.Alive() {
			out = append(out, p)
		}
	}
	return out
}

func participantIDs(parts []*game.Participant) []uint {
	if len(parts) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		ids = append(ids, p.Character.ID)
	}
	return ids
}

func joinNames(parts []*game.Participant) string {
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		names = append(names, p.Name())
	}
	return strings.Join(names, ", ")
}
