package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"fleet-field-api/internal/domain"
	"fleet-field-api/internal/events"
	"fleet-field-api/internal/metrics"
	"fleet-field-api/internal/response"
)

// notifier publishes change events once a mutation has committed.
// A failed publish is logged and counted but never fails the request.
type notifier struct {
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

func newNotifier(publisher events.Publisher, m *metrics.Metrics, logger *zap.Logger) notifier {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return notifier{publisher: publisher, metrics: m, logger: logger}
}

func (n notifier) publish(ctx context.Context, event domain.ChangeEvent) {
	err := n.publisher.Publish(ctx, event)
	n.metrics.RecordEventPublish(events.TransportName(n.publisher), err)
	if err != nil {
		n.logger.Warn("Failed to publish change event",
			zap.String("type", string(event.Type)),
			zap.String("entity_id", event.EntityID),
			zap.Error(err),
		)
	}
}

// repositoryError converts an unexpected repository error into INTERNAL_ERROR.
// A unique violation here means the one-value-per-cell invariant broke.
func repositoryError(logger *zap.Logger, message string, err error) *response.AppError {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		logger.Error("Integrity violation", zap.String("operation", message), zap.Error(err))
	}
	return response.NewInternalError(message, err)
}
