package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shanewhatthesix/Fight-Card/internal/constants"
	"github.com/shanewhatthesix/Fight-Card/internal/game"
	"github.com/shanewhatthesix/Fight-Card/internal/logging"
	"github.com/shanewhatthesix/Fight-Card/internal/service"
	"github.com/gin-gonic/gin"
)

// RunBattle simulates one complete battle and returns the full step log.
//
// Query parameters:
//
//	mode           1v1 (default), 2v2 or free_for_all
//	char1_id/char2_id                       1v1 matchup
//	team1_char1_id..team2_char2_id          2v2 matchup
//
// Team modes require every slot id; free_for_all takes none and uses the
// whole roster.
func (h *GameHandler) RunBattle(c *gin.Context) {
	mode := game.BattleMode(c.DefaultQuery("mode", string(game.ModeOneVsOne)))
	if !mode.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleMode})
		return
	}

	req := service.BattleRequest{Mode: mode}
	var err error
	switch mode {
	case game.ModeOneVsOne:
		req.Team1IDs, err = queryIDs(c, "char1_id")
		if err == nil {
			req.Team2IDs, err = queryIDs(c, "char2_id")
		}
	case game.ModeTwoVsTwo:
		req.Team1IDs, err = queryIDs(c, "team1_char1_id", "team1_char2_id")
		if err == nil {
			req.Team2IDs, err = queryIDs(c, "team2_char1_id", "team2_char2_id")
		}
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidCharacterID})
		return
	}

	result, err := service.RunBattle(h.repo, h.eng, req)
	if err != nil {
		status, msg := battleErrorStatus(err)
		if status == http.StatusInternalServerError {
			logging.Error(constants.ErrFailedRunBattle, err, logging.Fields{constants.LogFieldMode: string(mode)})
		}
		c.JSON(status, gin.H{constants.JSONKeyError: msg})
		return
	}
	c.JSON(http.StatusOK, result)
}

// queryIDs collects the named query parameters as character ids. Every
// named parameter is required: team modes have no random selection over
// HTTP.
func queryIDs(c *gin.Context, names ...string) ([]uint, error) {
	ids := make([]uint, 0, len(names))
	for _, name := range names {
		s := c.Query(name)
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil || n == 0 {
			return nil, errors.New("missing or invalid " + name)
		}
		ids = append(ids, uint(n))
	}
	return ids, nil
}

func battleErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidMode):
		return http.StatusBadRequest, constants.ErrInvalidBattleMode
	case errors.Is(err, service.ErrCharacterNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrWrongTeamSize),
		errors.Is(err, service.ErrNotEnoughCharacters),
		errors.Is(err, service.ErrNotEnoughCombatants),
		errors.Is(err, service.ErrInvalidCharacter):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, constants.ErrFailedRunBattle
	}
}
