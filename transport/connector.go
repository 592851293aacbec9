package transport

import (
	"context"
	"io"
)

// Connector establishes the byte-stream connection the Runner reads
// frames from and writes commands to. Implementations are expected to
// honor ctx cancellation during dial.
type Connector interface {
	Connect(ctx context.Context) (io.ReadWriteCloser, error)
}
