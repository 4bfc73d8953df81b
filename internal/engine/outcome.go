package engine

import (
	"fmt"

	"github.com/shanewhatthesix/Fight-Card/internal/game"
)

// mvpOf returns the winning side's participant with the strictly greatest
// damage dealt; ties resolve to the first such participant in the side's
// stored order. Returns nil for an empty side.
func mvpOf(team []*game.Participant) *game.Participant {
	var mvp *game.Participant
	max := -1
	for _, p := range team {
		if p.DamageDealt > max {
			max = p.DamageDealt
			mvp = p
		}
	}
	return mvp
}

// teamVictoryMessage builds the final result text for a winning side. In
// 1v1 the sole winner is congratulated; in 2v2 the MVP is named and the
// teammate is called out for coasting to victory. The team-number message
// is a defensive fallback for an inconclusive MVP computation.
func teamVictoryMessage(winners []*game.Participant, mode game.BattleMode) string {
	mvp := mvpOf(winners)
	if mvp == nil {
		return fmt.Sprintf("Congratulations %s on the victory!", teamLabel(winners))
	}
	if mode == game.ModeOneVsOne {
		return fmt.Sprintf("Congratulations %q on the victory!", mvp.Name())
	}
	for _, p := range winners {
		if p != mvp {
			return fmt.Sprintf("Congratulations %q on earning MVP, while %q coasted to victory!",
				mvp.Name(), p.Name())
		}
	}
	return fmt.Sprintf("Congratulations %s on the victory!", teamLabel(winners))
}

func teamLabel(team []*game.Participant) string {
	if len(team) > 0 && team[0].Team != "" {
		return team[0].Team
	}
	return game.TeamOne
}
