package httperr

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"slot_engine/internal/model"
	"slot_engine/pkg/resp"
)

// Status HTTP статус для ошибки сервиса
func Status(err error) int {
	switch {
	case errors.Is(err, model.ErrConfig):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrGameNotFound), errors.Is(err, model.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrBetRejected):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrSessionClosed), errors.Is(err, model.ErrBonusInactive), errors.Is(err, model.ErrBonusActive):
		return http.StatusConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Write Ответ с ошибкой. Внутренние ошибки логируются, клиенту уходит общее сообщение
func Write(w http.ResponseWriter, logger *zap.Logger, err error) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		logger.Error("internal error", zap.Error(err))
		resp.WriteError(w, status, "internal error")
		return
	}
	resp.WriteError(w, status, err.Error())
}
