package service

import (
	"fmt"

	"github.com/shanewhatthesix/Fight-Card/internal/engine"
	"github.com/shanewhatthesix/Fight-Card/internal/game"
)

// SelectTeams resolves the combatants for a team battle. When both id
// slices are empty the teams are drawn at random from the full roster;
// otherwise both slices must name exactly mode.TeamSize() characters
// and slot order is preserved.
func SelectTeams(repo CharacterRepo, eng *engine.Engine, team1IDs, team2IDs []uint, mode game.BattleMode) ([]game.Character, []game.Character, error) {
	if !mode.Valid() || mode == game.ModeFreeForAll {
		return nil, nil, ErrInvalidMode
	}
	size := mode.TeamSize()

	if len(team1IDs) == 0 && len(team2IDs) == 0 {
		return randomTeams(repo, eng, size)
	}
	if len(team1IDs) != size || len(team2IDs) != size {
		return nil, nil, fmt.Errorf("%w: expected %d per team", ErrWrongTeamSize, size)
	}

	team1, err := lookupTeam(repo, team1IDs)
	if err != nil {
		return nil, nil, err
	}
	team2, err := lookupTeam(repo, team2IDs)
	if err != nil {
		return nil, nil, err
	}
	return team1, team2, nil
}

func lookupTeam(repo CharacterRepo, ids []uint) ([]game.Character, error) {
	team := make([]game.Character, 0, len(ids))
	for _, id := range ids {
		c, err := repo.GetCharacterByID(id)
		if err != nil {
			return nil, err
		}
		if c == nil {
			return nil, fmt.Errorf("%w: id %d", ErrCharacterNotFound, id)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCharacter, err)
		}
		team = append(team, *c)
	}
	return team, nil
}

func randomTeams(repo CharacterRepo, eng *engine.Engine, size int) ([]game.Character, []game.Character, error) {
	all, err := repo.GetCharacters()
	if err != nil {
		return nil, nil, err
	}
	if len(all) < 2*size {
		return nil, nil, fmt.Errorf("%w: have %d, need %d", ErrNotEnoughCharacters, len(all), 2*size)
	}
	order := eng.Perm(len(all))
	picked := make([]game.Character, 0, 2*size)
	for _, idx := range order[:2*size] {
		c := all[idx]
		if err := c.Validate(); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidCharacter, err)
		}
		picked = append(picked, c)
	}
	return picked[:size], picked[size:], nil
}
