package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avc/hosting-storefront/internal/domain"
	"github.com/nats-io/nats.go"
)

// SubjectPrefix префикс темы NATS для событий заказа
const SubjectPrefix = "orders."

// Publisher минимальный интерфейс NATS-соединения
type Publisher interface {
	Publish(subject string, data []byte) error
	FlushWithContext(ctx context.Context) error
}

// NATSNotifier публикует события заказа в NATS
type NATSNotifier struct {
	conn Publisher
}

// NewNATSNotifier создает NATSNotifier поверх готового соединения
func NewNATSNotifier(conn Publisher) *NATSNotifier {
	return &NATSNotifier{conn: conn}
}

// ConnectNATS подключается к NATS с повторными попытками
func ConnectNATS(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name("hosting-storefront"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(5),
		nats.ReconnectWait(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return nc, nil
}

// Subject возвращает тему для вида события
func Subject(kind domain.EventKind) string {
	return SubjectPrefix + string(kind)
}

// Notify публикует событие в orders.<kind> в виде JSON
func (n *NATSNotifier) Notify(ctx context.Context, event domain.OrderEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("nats notifier: failed to marshal event: %w", err)
	}

	subject := Subject(event.Kind)
	if err := n.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("nats notifier: failed to publish to %s: %w", subject, err)
	}
	if err := n.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("nats notifier: failed to flush %s: %w", subject, err)
	}

	return nil
}
