//go:generate mockgen -destination mock_transport/mock_transport.go github.com/anyproto/anytype-push-shell/transport Provider,Conn

package transport

import (
	"context"

	"github.com/anyproto/anytype-push-shell/domain"
)

// Provider opens authenticated connections to a push backend, one per account.
type Provider interface {
	Open(ctx context.Context, account domain.Account) (Conn, error)
}

// Conn is a live authenticated handle bound to a single account.
type Conn interface {
	SendMessage(ctx context.Context, message domain.Message) (messageId string, err error)
	Close() error
}
