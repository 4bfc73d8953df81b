package api

import (
	"errors"
	"net/http"

	"github.com/shanewhatthesix/Fight-Card/internal/constants"
	"github.com/shanewhatthesix/Fight-Card/internal/service"

	"github.com/gin-gonic/gin"
)

type StartSessionRequest struct {
	Player1ID uint `json:"player1_id"`
	Player2ID uint `json:"player2_id"`
}

type ActionRequest struct {
	CharacterID uint   `json:"character_id"`
	SkillName   string `json:"skill_name"`
}

// StartBattle creates an interactive battle session between two
// characters and returns the initial state.
func (h *GameHandler) StartBattle(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeySuccess: false, constants.JSONKeyMessage: constants.ErrInvalidRequest})
		return
	}
	if req.Player1ID == 0 || req.Player2ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeySuccess: false, constants.JSONKeyMessage: constants.ErrInvalidCharacterID})
		return
	}

	session, err := service.StartSession(h.repo, h.repo, h.eng, req.Player1ID, req.Player2ID, h.sessionTTL)
	if err != nil {
		status, msg := sessionErrorStatus(err, constants.ErrFailedStartBattle)
		c.JSON(status, gin.H{constants.JSONKeySuccess: false, constants.JSONKeyMessage: msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeySuccess: true, constants.JSONKeyState: session})
}

// SubmitAction resolves one attack in an interactive battle.
func (h *GameHandler) SubmitAction(c *gin.Context) {
	battleID := c.Param("battleId")
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeySuccess: false, constants.JSONKeyMessage: constants.ErrInvalidRequest})
		return
	}

	session, err := service.SubmitAction(h.repo, h.repo, h.eng, battleID, req.CharacterID, req.SkillName, h.sessionTTL)
	if err != nil {
		status, msg := sessionErrorStatus(err, constants.ErrFailedSubmitAction)
		c.JSON(status, gin.H{constants.JSONKeySuccess: false, constants.JSONKeyMessage: msg})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeySuccess: true, constants.JSONKeyState: session})
}

// GetBattleState returns the current state of an interactive battle.
func (h *GameHandler) GetBattleState(c *gin.Context) {
	battleID := c.Param("battleId")
	session, err := h.repo.GetSessionByBattleID(battleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeySuccess: false, constants.JSONKeyMessage: constants.ErrFailedSubmitAction})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeySuccess: false, constants.JSONKeyMessage: constants.ErrBattleNotFound})
		return
	}
	c.JSON(http.StatusOK, gin.H{constants.JSONKeySuccess: true, constants.JSONKeyState: session})
}

func sessionErrorStatus(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, service.ErrBattleNotFound):
		return http.StatusNotFound, constants.ErrBattleNotFound
	case errors.Is(err, service.ErrCharacterNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrBattleEnded),
		errors.Is(err, service.ErrNotYourTurn),
		errors.Is(err, service.ErrActorDefeated):
		return http.StatusConflict, err.Error()
	case errors.Is(err, service.ErrUnknownSkill),
		errors.Is(err, service.ErrInvalidCharacter):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, fallback
	}
}
