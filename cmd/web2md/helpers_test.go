package main

import (
	"bytes"
	"context"
	"sync"
	"time"

	web2md "github.com/alnah/go-web2md"
)

// mockSalvager returns canned results without a browser.
type mockSalvager struct {
	mu     sync.Mutex
	result *web2md.Result
	err    error
	inputs []web2md.Input
}

func (m *mockSalvager) Salvage(_ context.Context, input web2md.Input) (*web2md.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inputs = append(m.inputs, input)
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	// Default: echo the markdown back, or produce fixed content for URLs
	if input.Markdown != "" {
		return &web2md.Result{Markdown: []byte(input.Markdown)}, nil
	}
	return &web2md.Result{Markdown: []byte("fetched content")}, nil
}

// testPool hands out a single shared mock salvager.
type testPool struct {
	mock *mockSalvager
	size int
}

func newTestPool(mock *mockSalvager, size int) *testPool {
	return &testPool{mock: mock, size: size}
}

func (p *testPool) Acquire() Salvager { return p.mock }
func (p *testPool) Release(Salvager)  {}
func (p *testPool) Size() int         { return p.size }
func (p *testPool) Close() error      { return nil }

var _ Pool = (*testPool)(nil)

// testEnv returns an Environment with captured output and a fixed clock.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
	}
	return env, &stdout, &stderr
}

// mockFactory returns a poolFactory that always yields the given pool.
func mockFactory(pool Pool) poolFactory {
	return func(int, ...web2md.Option) Pool { return pool }
}
