package rabbitmq

import "context"

// PublisherInterface is what the services depend on; the concrete
// Publisher is swapped for a mock in tests.
type PublisherInterface interface {
	Publish(ctx context.Context, routingKey string, data any) error
}

var _ PublisherInterface = (*Publisher)(nil)
