package parcel_scanned

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"parcel-service/internal/entities"
	"parcel-service/internal/service/parcel"
	"parcel-service/pkg/logger"
)

type Handler struct {
	parcelService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, parcelService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		parcelService:            parcelService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("parcel.scanned: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("parcel.scanned: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать. Сообщение при этом
// не помечается и будет прочитано снова.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event scannedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("parcel.scanned handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("tracking_number", event.TrackingNumber),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	update, err := h.parcelService.AppendUpdate(ctx, event.TrackingNumber, entities.ParcelStatusUpdate{
		Status:      entities.ParcelStatus(event.Status),
		Location:    event.Location,
		Description: event.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.scanned handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, parcel.ErrParcelNotFound),
			errors.Is(err, parcel.ErrInvalidTrackingNumber):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.scanned handler unknown parcel")

		case errors.Is(err, parcel.ErrInvalidStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.scanned handler unknown status")

		case errors.Is(err, parcel.ErrParcelClosed):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.scanned handler scan after parcel was closed")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("parcel.scanned handler failed to append update")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("update_id", update.ID),
	).Info("parcel.scanned: processed")

	sess.MarkMessage(message, "")
	return false
}
