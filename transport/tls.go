package transport

import (
	"context"
	"crypto/tls"
	"io"
)

// TLS dials an encrypted connection, suitable for IRCAddressTLS. Config
// may be nil, in which case the server name is derived from Address.
type TLS struct {
	Address string
	Config  *tls.Config
}

func (t TLS) Connect(ctx context.Context) (io.ReadWriteCloser, error) {
	var d tls.Dialer
	d.Config = t.Config
	return d.DialContext(ctx, "tcp", t.Address)
}
