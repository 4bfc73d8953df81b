package api

import (
	"net/http"

	"github.com/shanewhatthesix/Fight-Card/internal/constants"
	"github.com/shanewhatthesix/Fight-Card/internal/dedupe"
	"github.com/shanewhatthesix/Fight-Card/internal/game"
	"github.com/shanewhatthesix/Fight-Card/internal/logging"
	"github.com/gin-gonic/gin"
)

// ListWinRates returns the ledger keyed by character name. Concurrent
// requests share one query via singleflight. A read failure degrades to an
// empty map so scoreboard polling never breaks the page.
func (h *GameHandler) ListWinRates(c *gin.Context) {
	v, err, _ := dedupe.WinRatesGroup.Do("win_rates", func() (interface{}, error) {
		return h.repo.GetWinRates()
	})
	if err != nil {
		logging.Error(constants.ErrFailedFetchWinRates, err, nil)
		c.JSON(http.StatusOK, map[string]game.WinRate{})
		return
	}
	c.JSON(http.StatusOK, v.(map[string]game.WinRate))
}
