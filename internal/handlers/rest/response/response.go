package response

import (
	"encoding/json"
	"net/http"

	"parcel-service/internal/generated/dto"
	"parcel-service/pkg/logger"
)

const internalMessage = "internal error"

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func ErrorCode(w http.ResponseWriter, log errorLogger, status int, code, message string) {
	JSON(w, log, status, dto.Error{
		Code:    code,
		Message: message,
	})
}

// Error пишет ответ по ошибке сервиса. Текст внутренних ошибок наружу не уходит.
func Error(w http.ResponseWriter, log errorLogger, err error) {
	status, code := Classify(err)
	if status == http.StatusInternalServerError {
		log.With(
			logger.NewField("error", err),
		).Error("handle request")
		ErrorCode(w, log, status, code, internalMessage)
		return
	}

	ErrorCode(w, log, status, code, err.Error())
}

// BadRequest ответ на тело или параметры, которые не удалось разобрать.
func BadRequest(w http.ResponseWriter, log errorLogger, err error) {
	ErrorCode(w, log, http.StatusBadRequest, CodeValidationError, err.Error())
}

func NotFound(w http.ResponseWriter, log errorLogger, message string) {
	ErrorCode(w, log, http.StatusNotFound, CodeNotFound, message)
}
