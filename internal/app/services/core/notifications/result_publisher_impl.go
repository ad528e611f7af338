package notifications

import (
	"context"
	"sync"

	"labdesk-service/internal/app/contracts"
	"labdesk-service/internal/app/models"
	"labdesk-service/internal/pkg/constvars"
	"labdesk-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type resultPublisher struct {
	Channel *amqp091.Channel
	Queue   string
	Limiter *rate.Limiter
	Log     *zap.Logger
}

var (
	resultPublisherInstance contracts.ResultNotifier
	onceResultPublisher     sync.Once
)

// NewResultPublisher declares the result queue once and rate-limits outgoing
// publishes so a result backlog cannot flood the broker.
func NewResultPublisher(rabbitMQConnection *amqp091.Connection, queue string, publishRate float64, burst int, logger *zap.Logger) (contracts.ResultNotifier, error) {
	var err error
	onceResultPublisher.Do(func() {
		var channel *amqp091.Channel
		channel, err = rabbitMQConnection.Channel()
		if err != nil {
			return
		}
		_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
		if err != nil {
			return
		}
		resultPublisherInstance = &resultPublisher{
			Channel: channel,
			Queue:   queue,
			Limiter: rate.NewLimiter(rate.Limit(publishRate), burst),
			Log:     logger,
		}
	})
	if err != nil {
		return nil, err
	}
	return resultPublisherInstance, nil
}

func (p *resultPublisher) PublishResult(ctx context.Context, result *models.LabResult) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("resultPublisher.PublishResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, result.OrderID),
		zap.String(constvars.LoggingTestIDKey, result.TestID),
	)

	err := p.Limiter.Wait(ctx)
	if err != nil {
		return "", exceptions.ErrRabbitMQPublish(err, p.Queue)
	}

	notificationID := uuid.New().String()
	envelope := struct {
		NotificationID string            `json:"notification_id"`
		Result         *models.LabResult `json:"result"`
	}{
		NotificationID: notificationID,
		Result:         result,
	}
	body, err := json.Marshal(envelope)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}
	priority := uint8(0)
	if result.Priority != models.PriorityRoutine {
		priority = 5
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     priority,
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		p.Log.Error("resultPublisher.PublishResult publish failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, result.OrderID),
			zap.Error(err),
		)
		return "", exceptions.ErrRabbitMQPublish(err, p.Queue)
	}
	return notificationID, nil
}
