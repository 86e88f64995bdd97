package worker

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// openingProcessFunc plays 1. e4 in one game per item.
func openingProcessFunc(counter *int32) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		if counter != nil {
			atomic.AddInt32(counter, 1)
		}
		g := game.New()
		if err := g.Move(chess.MustSquare("e2"), chess.MustSquare("e4"), chess.NoPiece); err != nil {
			return ProcessResult{Index: item.Index, Name: item.Name, Err: err}
		}
		return ProcessResult{Index: item.Index, Name: item.Name, Games: []*game.Game{g}}
	}
}

func items(n int) []WorkItem {
	out := make([]WorkItem, n)
	for i := range out {
		out[i] = WorkItem{Index: i, Name: fmt.Sprintf("game%d.pgn", i)}
	}
	return out
}

// collectResults drains the result channel and returns the count.
func collectResults(pool *Pool) int {
	count := 0
	for range pool.Results() {
		count++
	}
	return count
}

// TestPoolBasic tests basic worker pool functionality.
func TestPoolBasic(t *testing.T) {
	var processed int32
	pool := NewPool(openingProcessFunc(&processed), WithWorkers(4))
	pool.Start()

	const numItems = 10
	go func() {
		for _, item := range items(numItems) {
			pool.Submit(item)
		}
		pool.Close()
	}()

	if got := collectResults(pool); got != numItems {
		t.Errorf("results = %d; want %d", got, numItems)
	}
	if got := atomic.LoadInt32(&processed); got != numItems {
		t.Errorf("processed = %d; want %d", got, numItems)
	}
}

// TestPoolRun_Order tests that Run returns results in input order.
func TestPoolRun_Order(t *testing.T) {
	delayed := func(item WorkItem) ProcessResult {
		if item.Index%2 == 0 {
			time.Sleep(5 * time.Millisecond)
		}
		return openingProcessFunc(nil)(item)
	}

	results := NewPool(delayed, WithWorkers(4)).Run(items(12), false)
	if len(results) != 12 {
		t.Fatalf("results = %d; want 12", len(results))
	}
	for i, r := range results {
		if r.Index != i || r.Name != fmt.Sprintf("game%d.pgn", i) {
			t.Errorf("results[%d] = %d %s", i, r.Index, r.Name)
		}
		if len(r.Games) != 1 || r.Games[0].Len() != 1 {
			t.Errorf("results[%d] games = %v", i, r.Games)
		}
	}
}

// TestPoolRun_StopOnFailure tests early termination after a failure.
func TestPoolRun_StopOnFailure(t *testing.T) {
	var processed int32
	failing := func(item WorkItem) ProcessResult {
		atomic.AddInt32(&processed, 1)
		time.Sleep(time.Millisecond)
		return ProcessResult{Index: item.Index, Failures: []error{fmt.Errorf("bad game")}}
	}

	results := NewPool(failing, WithWorkers(1), WithBufferSize(1)).Run(items(50), true)
	if len(results) == 0 || !results[0].Failed() {
		t.Fatalf("first result should be a failure: %v", results)
	}
	if got := atomic.LoadInt32(&processed); got >= 50 {
		t.Errorf("processed = %d; want fewer than 50 after stop", got)
	}
}

// TestPoolIsStopped tests the IsStopped method.
func TestPoolIsStopped(t *testing.T) {
	pool := NewPool(openingProcessFunc(nil), WithWorkers(2))
	pool.Start()

	if pool.IsStopped() {
		t.Error("pool should not be stopped initially")
	}
	pool.Stop()
	if !pool.IsStopped() {
		t.Error("pool should be stopped after Stop()")
	}
	pool.Close()
}

func TestProcessResult_Failed(t *testing.T) {
	tests := []struct {
		name string
		r    ProcessResult
		want bool
	}{
		{"clean", ProcessResult{}, false},
		{"game failure", ProcessResult{Failures: []error{fmt.Errorf("x")}}, true},
		{"input error", ProcessResult{Err: fmt.Errorf("x")}, true},
	}
	for _, tt := range tests {
		if got := tt.r.Failed(); got != tt.want {
			t.Errorf("%s: Failed() = %v; want %v", tt.name, got, tt.want)
		}
	}
}

// TestNewPool tests the functional options constructor.
func TestNewPool(t *testing.T) {
	tests := []struct {
		name        string
		opts        []PoolOption
		wantWorkers int
		wantBuffer  int
	}{
		{"defaults", nil, 1, 10},
		{"with workers", []PoolOption{WithWorkers(4)}, 4, 10},
		{"with buffer size", []PoolOption{WithBufferSize(50)}, 1, 50},
		{"multiple options", []PoolOption{WithWorkers(8), WithBufferSize(100)}, 8, 100},
		{"invalid workers ignored", []PoolOption{WithWorkers(0)}, 1, 10},
		{"invalid buffer size ignored", []PoolOption{WithBufferSize(-5)}, 1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(openingProcessFunc(nil), tt.opts...)
			if pool.NumWorkers() != tt.wantWorkers {
				t.Errorf("NumWorkers() = %d; want %d", pool.NumWorkers(), tt.wantWorkers)
			}
			if pool.bufferSize != tt.wantBuffer {
				t.Errorf("bufferSize = %d; want %d", pool.bufferSize, tt.wantBuffer)
			}
		})
	}
}
