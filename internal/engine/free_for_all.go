package engine

import (
	"fmt"

	"github.com/shanewhatthesix/Fight-Card/internal/game"
)

// SimulateFreeForAll runs an open battle with no team grouping: every
// living participant is a valid target for every other one. The battle
// ends when at most one participant remains alive, or at the turn limit.
func (e *Engine) SimulateFreeForAll(all []*game.Participant) *Outcome {
	log := []game.LogEntry{{
		Event:   game.EventStart,
		Message: fmt.Sprintf("Free-for-all begins! Combatants: %s", joinNames(all)),
	}}

	turn := 1
battle:
	for len(aliveOf(all)) > 1 && turn <= MaxTurns {
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

			living := make([]*game.Participant, 0, len(actors))
			for _, p := range actors {
				if p != attacker && p.Alive() {
					living = append(living, p)
				}
			}
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

			if !defender.Alive() && len(aliveOf(all)) <= 1 {
				break battle
			}
		}

		turn++
		if len(aliveOf(all)) <= 1 {
			break
		}
	}

	result, winners := freeForAllResult(all)
	log = append(log, endEntry(result, all))
	return &Outcome{
		Log:            log,
		Result:         result,
		ParticipantIDs: participantIDs(all),
		WinnerIDs:      winners,
	}
}

// freeForAllResult classifies a finished free-for-all: a sole survivor
// wins; zero survivors is a mutual draw; more than one means the turn
// limit was hit.
func freeForAllResult(all []*game.Participant) (string, []uint) {
	remaining := aliveOf(all)
	switch len(remaining) {
	case 1:
		winner := remaining[0]
		return fmt.Sprintf("The free-for-all is over! Congratulations %q on the final victory!", winner.Name()),
			[]uint{winner.Character.ID}
	case 0:
		return "The free-for-all is over: every combatant was defeated. Draw!", nil
	default:
		return "The free-for-all ends in a draw! (turn limit reached)", nil
	}
}
