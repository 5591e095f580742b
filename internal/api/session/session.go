package session

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"slot_engine/internal/api/dto/session"
	"slot_engine/internal/api/httperr"
	"slot_engine/internal/api/middleware"
	"slot_engine/internal/converter"
	"slot_engine/internal/service"
	"slot_engine/pkg/req"
	"slot_engine/pkg/resp"
)

var errNoSession = errors.New("session id not found in context")

type HandlerDeps struct {
	Serv   service.SessionService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.SessionService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, logger: deps.Logger}
}

// Open открывает сессию и возвращает токен доступа и хеш серверного сида
func (h *Handler) Open(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[session.OpenRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	info, err := h.serv.Open(r.Context(), payload.GameID, payload.ClientSeed)
	if err != nil {
		httperr.Write(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToOpenResponse(info))
}

// Spin платный спин или следующий фриспин
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, errNoSession.Error())
		return
	}
	payload, err := req.Decode[session.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.Spin(r.Context(), id, payload.BetPerLine)
	if err != nil {
		httperr.Write(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(result))
}

// BuyBonus покупка бонусного раунда
func (h *Handler) BuyBonus(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, errNoSession.Error())
		return
	}
	payload, err := req.Decode[session.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.serv.BuyBonus(r.Context(), id, payload.BetPerLine)
	if err != nil {
		httperr.Write(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(result))
}

// Stats статистика сессии
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, errNoSession.Error())
		return
	}

	stats, err := h.serv.Stats(r.Context(), id)
	if err != nil {
		httperr.Write(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(stats))
}

// FreeSpins состояние бонусного раунда
func (h *Handler) FreeSpins(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, errNoSession.Error())
		return
	}

	state, err := h.serv.FreeSpins(r.Context(), id)
	if err != nil {
		httperr.Write(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToFreeSpinState(state))
}

// Close закрывает сессию и раскрывает серверный сид
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.SessionIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, errNoSession.Error())
		return
	}

	res, err := h.serv.Close(r.Context(), id)
	if err != nil {
		httperr.Write(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToCloseResponse(res))
}
