// internal/netcheck/check.go

package netcheck

import (
	"context"
	"net"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vuul/spackle-ssh/internal/models"
)

// DefaultTimeout bounds each validation step (resolve, connect).
const DefaultTimeout = 5 * time.Second

// Result is advisory. A false flag informs the caller; it never
// prevents a launch by itself.
type Result struct {
	Resolvable   bool
	Reachable    bool
	ResolvedAddr string
}

// Resolver is satisfied by *net.Resolver; injectable under test.
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
}

// DialFunc is satisfied by (*net.Dialer).DialContext.
type DialFunc func(ctx context.Context, network, addr string) (net.Conn, error)

// Validator performs best-effort DNS resolution and a TCP connect
// probe. Failures and timeouts set flags false, never error.
type Validator struct {
	Timeout  time.Duration
	Resolver Resolver
	Dial     DialFunc
}

func NewValidator() *Validator {
	dialer := &net.Dialer{}
	return &Validator{
		Timeout:  DefaultTimeout,
		Resolver: net.DefaultResolver,
		Dial:     dialer.DialContext,
	}
}

// Check probes the descriptor's host and port. Each step runs under
// its own deadline plus a watchdog, so a resolver or dialer that
// ignores its context still cannot hold the result past the bound.
func (v *Validator) Check(ctx context.Context, d models.ConnectionDescriptor) Result {
	var res Result
	timeout := v.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	addrs, ok := v.resolve(ctx, d.Host, timeout)
	if !ok || len(addrs) == 0 {
		logrus.WithField("host", d.Host).Debug("hostname did not resolve")
		return res
	}
	res.Resolvable = true
	res.ResolvedAddr = net.JoinHostPort(addrs[0], strconv.Itoa(d.Port))

	// Probe the address resolution produced, not the raw hostname, so
	// the two steps agree on the endpoint being judged.
	res.Reachable = v.probe(ctx, res.ResolvedAddr, timeout)
	if !res.Reachable {
		logrus.WithField("addr", res.ResolvedAddr).Debug("connect probe failed")
	}
	return res
}

func (v *Validator) resolve(ctx context.Context, host string, timeout time.Duration) ([]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type lookup struct {
		addrs []string
		err   error
	}
	ch := make(chan lookup, 1)
	go func() {
		addrs, err := v.Resolver.LookupHost(ctx, host)
		ch <- lookup{addrs, err}
	}()

	select {
	case l := <-ch:
		return l.addrs, l.err == nil
	case <-ctx.Done():
		// Watchdog fired; the lookup goroutine is abandoned.
		return nil, false
	}
}

func (v *Validator) probe(ctx context.Context, addr string, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ch := make(chan error, 1)
	go func() {
		conn, err := v.Dial(ctx, "tcp", addr)
		if err == nil {
			conn.Close()
		}
		ch <- err
	}()

	select {
	case err := <-ch:
		return err == nil
	case <-ctx.Done():
		return false
	}
}
