package api

import (
	"time"

	"github.com/shanewhatthesix/Fight-Card/internal/engine"
	"github.com/shanewhatthesix/Fight-Card/internal/storage"
)

// GameHandler groups all battle-related HTTP handlers.
type GameHandler struct {
	repo       storage.Repository
	eng        *engine.Engine
	sessionTTL time.Duration
}

// NewGameHandler creates a new GameHandler with the given repository,
// battle engine and configured interactive-session time-to-live.
func NewGameHandler(repo storage.Repository, eng *engine.Engine, sessionTTL time.Duration) *GameHandler {
	return &GameHandler{repo: repo, eng: eng, sessionTTL: sessionTTL}
}
