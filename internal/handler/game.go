package handler

import (
	"context"
	"net/http"

	"github.com/osse101/PortalQuest_Go/internal/domain"
	"github.com/osse101/PortalQuest_Go/internal/logger"
	"github.com/osse101/PortalQuest_Go/internal/session"
)

// GameHandler exposes the session trigger surface over HTTP
type GameHandler struct {
	sessions session.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(sessions session.Service) *GameHandler {
	return &GameHandler{sessions: sessions}
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Name string `json:"name" validate:"required,playername"`
}

// BuyRequest is the request body for a shop purchase
type BuyRequest struct {
	ItemID string `json:"item_id" validate:"required,max=64"`
}

// AskRequest is the request body for a crystal question
type AskRequest struct {
	Question string `json:"question" validate:"required,max=300"`
}

// ArenaActionRequest is the request body for an arena turn
type ArenaActionRequest struct {
	Action string `json:"action" validate:"required,arenaaction"`
}

// ShopResponse lists the catalog for the player
type ShopResponse struct {
	Items []domain.ShopEntry `json:"items"`
}

// HandleLogin loads or creates the player's session
func (h *GameHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Login"); err != nil {
		return
	}
	LogRequestFields(logger.FromContext(r.Context()), "name", req.Name)

	res, err := h.sessions.Login(r.Context(), req.Name)
	if err != nil {
		respondServiceError(w, r, "Login", err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleLogout flushes the player's save and drops the session
func (h *GameHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	name, ok := playerName(w, r)
	if !ok {
		return
	}
	if err := h.sessions.Logout(r.Context(), name); err != nil {
		respondServiceError(w, r, "Logout", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleState returns the session snapshot
func (h *GameHandler) HandleState(w http.ResponseWriter, r *http.Request) {
	withPlayer(w, r, "State", h.sessions.State)
}

// HandleEnterPortal steps through a portal
func (h *GameHandler) HandleEnterPortal(w http.ResponseWriter, r *http.Request) {
	withPlayer(w, r, "Enter portal", h.sessions.EnterPortal)
}

// HandleAttack strikes the current enemy
func (h *GameHandler) HandleAttack(w http.ResponseWriter, r *http.Request) {
	withPlayer(w, r, "Attack", h.sessions.Attack)
}

// HandleShop lists the catalog
func (h *GameHandler) HandleShop(w http.ResponseWriter, r *http.Request) {
	withPlayer(w, r, "Shop", func(ctx context.Context, name string) (ShopResponse, error) {
		items, err := h.sessions.Shop(ctx, name)
		return ShopResponse{Items: items}, err
	})
}

// HandleBuy purchases a catalog item
func (h *GameHandler) HandleBuy(w http.ResponseWriter, r *http.Request) {
	withPlayerRequest(w, r, "Buy item", func(ctx context.Context, name string, req BuyRequest) (*session.PurchaseOutcome, error) {
		return h.sessions.Buy(ctx, name, req.ItemID)
	})
}

// HandleAsk submits a crystal question
func (h *GameHandler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	withPlayerRequest(w, r, "Ask crystal", func(ctx context.Context, name string, req AskRequest) (*session.AskOutcome, error) {
		return h.sessions.Ask(ctx, name, req.Question)
	})
}

// HandleOpenArena opens an arena match
func (h *GameHandler) HandleOpenArena(w http.ResponseWriter, r *http.Request) {
	withPlayer(w, r, "Open arena", h.sessions.OpenArena)
}

// HandleArenaAction plays one arena turn
func (h *GameHandler) HandleArenaAction(w http.ResponseWriter, r *http.Request) {
	withPlayerRequest(w, r, "Arena action", func(ctx context.Context, name string, req ArenaActionRequest) (*session.ArenaOutcome, error) {
		return h.sessions.ArenaAction(ctx, name, domain.ArenaAction(req.Action))
	})
}

// HandleLeaveArena closes the arena, forfeiting a match in play
func (h *GameHandler) HandleLeaveArena(w http.ResponseWriter, r *http.Request) {
	withPlayer(w, r, "Leave arena", h.sessions.LeaveArena)
}

// HandleDailyOffer reports today's reward
func (h *GameHandler) HandleDailyOffer(w http.ResponseWriter, r *http.Request) {
	withPlayer(w, r, "Daily offer", h.sessions.DailyOffer)
}

// HandleClaimDaily claims today's reward
func (h *GameHandler) HandleClaimDaily(w http.ResponseWriter, r *http.Request) {
	withPlayer(w, r, "Claim daily", h.sessions.ClaimDaily)
}

// HandleReset wipes the player's progress
func (h *GameHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	withPlayer(w, r, "Reset", h.sessions.Reset)
}

// ResolvePlayer maps an SSE request to the key of a logged-in player
func (h *GameHandler) ResolvePlayer(r *http.Request) (string, bool) {
	name, err := pathName(r)
	if err != nil {
		return "", false
	}
	if _, err := h.sessions.State(r.Context(), name); err != nil {
		return "", false
	}
	return h.sessions.Key(name), true
}

// withPlayer runs a body-less trigger for the {name} in the path
func withPlayer[RES any](w http.ResponseWriter, r *http.Request, opName string, action func(context.Context, string) (RES, error)) {
	name, ok := playerName(w, r)
	if !ok {
		return
	}
	res, err := action(r.Context(), name)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// withPlayerRequest decodes and validates REQ before running the trigger
func withPlayerRequest[REQ any, RES any](w http.ResponseWriter, r *http.Request, opName string, action func(context.Context, string, REQ) (RES, error)) {
	name, ok := playerName(w, r)
	if !ok {
		return
	}
	var req REQ
	if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
		return
	}
	res, err := action(r.Context(), name, req)
	if err != nil {
		respondServiceError(w, r, opName, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
