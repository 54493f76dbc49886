package order_placed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	orderservice "dispatch/internal/service/order"
	"dispatch/pkg/logger"
	"github.com/IBM/sarama"
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "orders.placed"))

	return &Handler{
		orderService:             orderService,
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
				h.log.Info("orders.placed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("orders.placed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать без коммита сообщения.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event placedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("orders.placed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("confirmation", event.OrderConfirmation),
		logger.NewField("offset", message.Offset),
	)

	orderID, err := h.orderService.PlaceOrder(ctx, event.toModify())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("orders.placed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrConflict):
			msgLog.Warn("orders.placed handler duplicate order confirmation, skipped")

		case errors.Is(err, orderservice.ErrMissingRequiredFields),
			errors.Is(err, orderservice.ErrInvalidCustomerName),
			errors.Is(err, orderservice.ErrInvalidDeliveryAddress),
			errors.Is(err, orderservice.ErrInvalidConfirmation),
			errors.Is(err, orderservice.ErrInvalidLineItem),
			errors.Is(err, orderservice.ErrInvalidStatus),
			errors.Is(err, orderservice.ErrInvalidTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("orders.placed handler rejected invalid order")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("orders.placed handler failed to place order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("order", orderID),
	).Info("orders.placed: processed")

	sess.MarkMessage(message, "")
	return false
}
