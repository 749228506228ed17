package main

import (
	"context"
	"runtime"
	"sync"

	web2md "github.com/alnah/go-web2md"
)

// Salvager is the interface for the salvage service.
type Salvager interface {
	Salvage(ctx context.Context, input web2md.Input) (*web2md.Result, error)
}

// Compile-time interface implementation check.
var _ Salvager = (*web2md.Service)(nil)

// Pool abstracts service pool operations for testability.
type Pool interface {
	Acquire() Salvager
	Release(Salvager)
	Size() int
	Close() error
}

// poolFactory builds a Pool once the service options are resolved.
// Indirection lets tests substitute a pool of mock salvagers.
type poolFactory func(size int, opts ...web2md.Option) Pool

// ServicePool manages a pool of web2md.Service instances for parallel
// processing. Each service has its own browser instance, enabling true
// parallelism. Services are created lazily on first acquire.
type ServicePool struct {
	size    int
	opts    []web2md.Option
	sem     chan Salvager
	mu      sync.Mutex
	created int
	closed  bool

	services []*web2md.Service
}

// Compile-time check that ServicePool implements Pool.
var _ Pool = (*ServicePool)(nil)

// NewServicePool creates a pool with capacity for n Service instances,
// each configured with the given options.
func NewServicePool(n int, opts ...web2md.Option) *ServicePool {
	if n < 1 {
		n = 1
	}

	return &ServicePool{
		size:     n,
		opts:     opts,
		sem:      make(chan Salvager, n),
		services: make([]*web2md.Service, 0, n),
	}
}

// Acquire gets a service from the pool, creating one if needed.
// Blocks if all services are in use.
func (p *ServicePool) Acquire() Salvager {
	// Try to get an existing service (non-blocking)
	select {
	case svc := <-p.sem:
		return svc
	default:
	}

	// Check if we can create a new service
	p.mu.Lock()
	if p.created < p.size {
		p.created++
		p.mu.Unlock()

		// Create new service outside the lock
		svc := web2md.New(p.opts...)

		p.mu.Lock()
		p.services = append(p.services, svc)
		p.mu.Unlock()

		return svc
	}
	p.mu.Unlock()

	// All services created, wait for one to be released
	return <-p.sem
}

// Release returns a service to the pool.
func (p *ServicePool) Release(svc Salvager) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.closed {
		p.sem <- svc
	}
}

// Close releases all browser resources.
func (p *ServicePool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.sem)
	services := p.services
	p.mu.Unlock()

	var lastErr error
	for _, svc := range services {
		if err := svc.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Size returns the pool capacity.
func (p *ServicePool) Size() int {
	return p.size
}

// resolvePoolSize determines the optimal pool size.
// Priority: explicit flag > GOMAXPROCS-based calculation.
func resolvePoolSize(flagWorkers int) int {
	// Explicit flag takes priority
	if flagWorkers > 0 {
		return flagWorkers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for containers)
	available := runtime.GOMAXPROCS(0)
	n := available / 2

	// Minimum 1, maximum 8: each service owns a browser instance
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
