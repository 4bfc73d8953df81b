package api

import (
	"net/http"
	"strconv"

	"github.com/shanewhatthesix/Fight-Card/internal/constants"
	"github.com/gin-gonic/gin"
)

// ListCharacters returns the full roster with skills and attributes.
func (h *GameHandler) ListCharacters(c *gin.Context) {
	chars, err := h.repo.GetCharacters()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCharacters})
		return
	}
	c.JSON(http.StatusOK, chars)
}

// GetCharacter returns one character by id.
func (h *GameHandler) GetCharacter(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidCharacterID})
		return
	}
	char, err := h.repo.GetCharacterByID(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedFetchCharacters})
		return
	}
	if char == nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrCharacterNotFound})
		return
	}
	c.JSON(http.StatusOK, char)
}
