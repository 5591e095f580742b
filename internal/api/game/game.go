package game

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"slot_engine/internal/api/httperr"
	"slot_engine/internal/converter"
	"slot_engine/internal/model"
	"slot_engine/internal/service"
	"slot_engine/pkg/req"
	"slot_engine/pkg/resp"
)

type HandlerDeps struct {
	Serv   service.GameService
	Logger *zap.Logger
}

type Handler struct {
	serv   service.GameService
	logger *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, logger: deps.Logger}
}

// Import принимает конфигурацию игры в JSON, проверяет и сохраняет её
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[model.GameConfig](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	version, err := h.serv.Import(r.Context(), &payload)
	if err != nil {
		httperr.Write(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, converter.ToImportResponse(payload.ID, version))
}

// List краткое описание всех игр
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.serv.List(r.Context())
	if err != nil {
		httperr.Write(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToListResponse(games))
}

// Get полная конфигурация игры
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.serv.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.Write(w, h.logger, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, cfg)
}
