package realtime

import (
	"context"

	"github.com/gabevillegas628/dsap-backend/internal/sse"
)

// Bus fans SSE messages out across server instances. The local hub delivers
// to clients connected here; the bus makes sure every instance sees every
// message.
type Bus interface {
	Publish(ctx context.Context, msg sse.SSEMessage) error
	StartForwarder(ctx context.Context, onMsg func(m sse.SSEMessage)) error
	Close() error
}
