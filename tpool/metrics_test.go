package tpool_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tpooldev/tpool/tpool"
)

func TestPool_Stats_CountsOutcomes(t *testing.T) {
	p := tpool.New(tpool.WithWorkerCount(2))
	defer p.Close()

	var futures []*tpool.Future[int]
	for i := 0; i < 10; i++ {
		i := i
		f, err := tpool.Submit(p, func() (int, error) {
			if i < 3 {
				return 0, errors.New("expected failure")
			}
			return i, nil
		})
		if err != nil {
			t.Fatalf("failed to submit: %v", err)
		}
		futures = append(futures, f)
	}

	for _, f := range futures {
		_, _ = f.Get()
	}

	s := p.Stats()
	if s.Workers != 2 {
		t.Errorf("expected 2 workers, got %d", s.Workers)
	}
	if s.Submitted != 10 {
		t.Errorf("expected 10 submitted, got %d", s.Submitted)
	}
	if s.Completed != 7 {
		t.Errorf("expected 7 completed, got %d", s.Completed)
	}
	if s.Failed != 3 {
		t.Errorf("expected 3 failed, got %d", s.Failed)
	}
	if s.Queued != 0 {
		t.Errorf("expected empty queue, got %d", s.Queued)
	}
}

func TestCollector_RegistersAndGathers(t *testing.T) {
	p := tpool.New(tpool.WithWorkerCount(3))
	defer p.Close()

	f, err := tpool.Submit(p, func() (int, error) { return 1, nil })
	if err != nil {
		t.Fatalf("failed to submit: %v", err)
	}
	if _, err := f.Get(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reg := prometheus.NewPedanticRegistry()
	if err := reg.Register(tpool.NewCollector(p, "test-pool")); err != nil {
		t.Fatalf("failed to register collector: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if len(families) != 5 {
		t.Fatalf("expected 5 metric families, got %d", len(families))
	}

	byName := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetGauge() != nil:
				byName[mf.GetName()] = m.GetGauge().GetValue()
			case m.GetCounter() != nil:
				byName[mf.GetName()] = m.GetCounter().GetValue()
			}
		}
	}

	if got := byName["tpool_workers"]; got != 3 {
		t.Errorf("expected tpool_workers 3, got %v", got)
	}
	if got := byName["tpool_submitted_tasks_total"]; got != 1 {
		t.Errorf("expected tpool_submitted_tasks_total 1, got %v", got)
	}
	if got := byName["tpool_completed_tasks_total"]; got != 1 {
		t.Errorf("expected tpool_completed_tasks_total 1, got %v", got)
	}
}

func TestPool_Stats_QueuedDepth(t *testing.T) {
	p := tpool.New(tpool.WithWorkerCount(1))
	defer p.Close()

	release := make(chan struct{})
	blocker, err := tpool.Submit(p, func() (int, error) {
		<-release
		return 0, nil
	})
	if err != nil {
		t.Fatalf("failed to submit: %v", err)
	}

	// Give the single worker time to claim the blocker, then queue more.
	time.Sleep(20 * time.Millisecond)
	for n := 0; n < 5; n++ {
		if _, err := tpool.Submit(p, func() (int, error) { return 0, nil }); err != nil {
			t.Fatalf("failed to submit: %v", err)
		}
	}

	if got := p.Stats().Queued; got != 5 {
		t.Errorf("expected 5 queued tasks, got %d", got)
	}

	close(release)
	if _, err := blocker.Get(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
