package tracking

import (
	"context"
	"net/http"
	"time"

	"github.com/matst80/diecast-finder/pkg/common"
	"github.com/matst80/diecast-finder/pkg/messaging"
	"github.com/matst80/diecast-finder/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	batchSize     = 50
	flushInterval = 2 * time.Second
	sendTimeout   = 5 * time.Second
)

type sendFunc func(ctx context.Context, event any) error

// RabbitTracking queues events and publishes them in the background, a
// failed publish is logged and dropped.
type RabbitTracking struct {
	catalog    string
	logger     *zap.Logger
	connection *amqp.Connection
	send       sendFunc
	queue      *common.QueueHandler[any]
}

func NewRabbitTracking(url, catalog string, logger *zap.Logger) (*RabbitTracking, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	defer ch.Close()
	if err = messaging.DefineTopic(ch, messaging.GlobalPrefix, messaging.TrackingTopic); err != nil {
		_ = conn.Close()
		return nil, err
	}
	t := newTracking(catalog, logger, func(ctx context.Context, event any) error {
		return messaging.SendChange(ctx, conn, messaging.GlobalPrefix, messaging.TrackingTopic, event)
	})
	t.connection = conn
	return t, nil
}

func newTracking(catalog string, logger *zap.Logger, send sendFunc) *RabbitTracking {
	t := &RabbitTracking{
		catalog: catalog,
		logger:  common.OrNop(logger),
		send:    send,
	}
	t.queue = common.NewQueueHandler[any](t.process, batchSize, flushInterval)
	return t
}

func (t *RabbitTracking) process(events []any) {
	for _, event := range events {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := t.send(ctx, event); err != nil {
			t.logger.Warn("failed to send tracking event", zap.Error(err))
		}
		cancel()
	}
}

func (t *RabbitTracking) base(sessionId string, event uint16) *BaseEvent {
	return &BaseEvent{SessionId: sessionId, Catalog: t.catalog, Event: event}
}

func (t *RabbitTracking) TrackSession(sessionId string, r *http.Request) {
	t.queue.Add(&Session{
		BaseEvent:    t.base(sessionId, EventSession),
		Language:     r.Header.Get("Accept-Language"),
		UserAgent:    r.UserAgent(),
		Ip:           clientIp(r),
		PragmaHeader: r.Header.Get("Pragma"),
	})
}

func (t *RabbitTracking) TrackFilter(sessionId string, selection *types.Selection, resultLen int, r *http.Request) {
	sel := *selection
	t.queue.Add(&FilterEvent{
		BaseEvent:       t.base(sessionId, EventFilter),
		Selection:       &sel,
		NumberOfResults: resultLen,
		Referer:         r.Header.Get("Referer"),
	})
}

func (t *RabbitTracking) TrackDetail(sessionId string, modelId string, r *http.Request) {
	t.queue.Add(&DetailEvent{
		BaseEvent: t.base(sessionId, EventDetail),
		Model:     modelId,
		Referer:   r.Header.Get("Referer"),
	})
}

// Close flushes queued events and closes the connection.
func (t *RabbitTracking) Close() error {
	t.queue.Close()
	if t.connection != nil {
		return t.connection.Close()
	}
	return nil
}

var _ types.Tracking = (*RabbitTracking)(nil)
