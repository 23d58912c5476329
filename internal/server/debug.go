package server

import (
	"apple-chase/internal/engine"
	"apple-chase/internal/systems"
	"apple-chase/pkg/api"
	"apple-chase/pkg/logger"
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const snapshotTimeout = 2 * time.Second

// DebugHandler предоставляет доступ к внутреннему состоянию релея
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/players", h.handlePlayers)
	mux.HandleFunc("/debug/item", h.handleItem)
	mux.HandleFunc("/debug/leaderboard", h.handleLeaderboard)
	mux.HandleFunc("/debug/sessions", h.handleSessions)
}

// snapshot берет снимок через цикл сервиса; при ошибке отвечает 503 сам
func (h *DebugHandler) snapshot(w http.ResponseWriter, r *http.Request) (engine.Snapshot, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), snapshotTimeout)
	defer cancel()

	snap, err := h.Service.Snapshot(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("Debug snapshot failed")
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return engine.Snapshot{}, false
	}
	return snap, true
}

// /debug/players - список игроков в том виде, в каком его получают клиенты
func (h *DebugHandler) handlePlayers(w http.ResponseWriter, r *http.Request) {
	if snap, ok := h.snapshot(w, r); ok {
		writeJSON(w, api.NewPlayerViews(snap.Players))
	}
}

// /debug/item - текущий предмет или null
func (h *DebugHandler) handleItem(w http.ResponseWriter, r *http.Request) {
	if snap, ok := h.snapshot(w, r); ok {
		writeJSON(w, api.NewCollectibleView(snap.Item))
	}
}

// /debug/leaderboard - игроки по убыванию счета с местами
func (h *DebugHandler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	if snap, ok := h.snapshot(w, r); ok {
		writeJSON(w, systems.Leaderboard(snap.Players))
	}
}

// /debug/sessions - соединения и их состояние протокола
func (h *DebugHandler) handleSessions(w http.ResponseWriter, r *http.Request) {
	if snap, ok := h.snapshot(w, r); ok {
		writeJSON(w, snap.Sessions)
	}
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Debug("debug response write failed")
	}
}
