package transport

import (
	"context"
	"io"
	"net"
)

// TCP dials a plain, unencrypted connection, suitable for IRCAddress.
type TCP struct {
	Address string
}

func (t TCP) Connect(ctx context.Context) (io.ReadWriteCloser, error) {
	var d net.Dialer
	return d.DialContext(ctx, "tcp", t.Address)
}
