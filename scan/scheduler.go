package scan

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// ConfigError reports an invalid scan configuration. It is the only
// error a Scanner surfaces, and it is always returned before any
// network activity takes place.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid scan config: " + e.Reason
}

// Scanner drives a Prober over a set of ports with a fixed pool of
// workers. The zero value is not usable; construct with NewScanner.
type Scanner struct {
	// Prober performs the individual connection attempts. Defaults to a
	// ConnectProber bounded by the scanner's timeout.
	Prober Prober

	// Services names the conventional service for an open port.
	Services ServiceNamer

	// OnResult, if set, is invoked once per completed probe. Calls are
	// made from a single goroutine, in completion order.
	OnResult func(Result)

	// OnProgress, if set, is invoked after each completed probe with
	// the updated completed/total counts.
	OnProgress func(Progress)

	workers int
	timeout time.Duration
}

func NewScanner(workers int, timeout time.Duration) (*Scanner, error) {
	if workers < 1 {
		return nil, &ConfigError{Reason: fmt.Sprintf("worker count must be at least 1, got %d", workers)}
	}
	if timeout <= 0 {
		return nil, &ConfigError{Reason: fmt.Sprintf("timeout must be positive, got %s", timeout)}
	}
	return &Scanner{
		Prober:   NewConnectProber(timeout),
		Services: ServiceName,
		workers:  workers,
		timeout:  timeout,
	}, nil
}

// Scan probes every port in ports against ip and returns the open
// results in completion order. Each element of ports is probed exactly
// once, with at most the configured number of probes outstanding at any
// instant. A port that times out or errors never aborts the scan.
//
// Cancelling ctx stops new probes from starting; Scan then returns the
// partial open set accumulated so far. Interruption is not an error.
func (s *Scanner) Scan(ctx context.Context, ip net.IP, ports []int) ([]Result, error) {
	if len(ip) == 0 {
		return nil, &ConfigError{Reason: "no target address"}
	}
	for _, port := range ports {
		if port < 1 || port > 65535 {
			return nil, &ConfigError{Reason: fmt.Sprintf("port %d is outside 1-65535", port)}
		}
	}

	log.Debugf("Scanning %d ports on %s with %d workers...", len(ports), ip, s.workers)

	jobs := make(chan int)
	resultChan := make(chan Result)

	wg := &sync.WaitGroup{}
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for port := range jobs {
				if ctx.Err() != nil {
					return
				}
				resultChan <- s.Prober.Probe(ctx, ip, port)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, port := range ports {
			select {
			case <-ctx.Done():
				log.Debugf("Scan of %s interrupted, no further probes", ip)
				return
			case jobs <- port:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Single collector: results, hooks and the progress counter are all
	// touched from this loop only.
	total := len(ports)
	completed := 0
	open := []Result{}
	for result := range resultChan {
		completed++
		if result.Status == StatusOpen && result.Service == "" {
			result.Service = s.Services(result.Port)
		}
		if s.OnResult != nil {
			s.OnResult(result)
		}
		if s.OnProgress != nil {
			s.OnProgress(Progress{Completed: completed, Total: total})
		}
		if result.Status == StatusOpen {
			open = append(open, result)
		}
	}

	log.Debugf("Scan of %s finished: %d/%d ports probed, %d open", ip, completed, total, len(open))

	return open, nil
}
