package scan

import (
	"context"
	"errors"
	"net"
	"strconv"
	"syscall"
	"time"
)

// Prober resolves the state of a single port on a single host. The
// returned Result always carries the probed port; probes never fail,
// they classify.
type Prober interface {
	Probe(ctx context.Context, ip net.IP, port int) Result
}

// ConnectProber probes by attempting a full TCP connection, bounded by
// a per-attempt timeout. A successful connection is closed immediately.
type ConnectProber struct {
	dialer net.Dialer
}

func NewConnectProber(timeout time.Duration) *ConnectProber {
	return &ConnectProber{
		dialer: net.Dialer{Timeout: timeout},
	}
}

func (p *ConnectProber) Probe(ctx context.Context, ip net.IP, port int) Result {
	addr := net.JoinHostPort(ip.String(), strconv.Itoa(port))

	conn, err := p.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return Result{Port: port, Status: classify(err)}
	}
	conn.Close()

	return Result{Port: port, Status: StatusOpen}
}

// classify maps a dial error onto a port status. A timeout means the
// host never answered; a refusal means it answered with a reset;
// everything else (unreachable network, exhausted descriptors,
// cancelled context) is an error outcome.
func classify(err error) PortStatus {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return StatusTimeout
	}
	if errors.Is(err, syscall.ECONNREFUSED) {
		return StatusClosed
	}
	return StatusError
}
