package benchmarks

import (
	"testing"
	"time"

	"github.com/tpooldev/tpool/tpool"
)

// cpuBoundWork simulates a CPU-intensive task body
func cpuBoundWork(iterations int) func() (int, error) {
	return func() (int, error) {
		result := 0
		for i := 0; i < iterations; i++ {
			result += i
		}
		return result, nil
	}
}

// ioBoundWork simulates an I/O task with a fixed delay
func ioBoundWork(delay time.Duration) func() (int, error) {
	return func() (int, error) {
		time.Sleep(delay)
		return 1, nil
	}
}

func benchmarkSubmitGet(b *testing.B, d tpool.QueueDiscipline, workers int, task func() (int, error)) {
	pool := tpool.New(
		tpool.WithWorkerCount(workers),
		tpool.WithQueueDiscipline(d),
	)
	defer pool.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f, err := tpool.Submit(pool, task)
		if err != nil {
			b.Fatal(err)
		}
		if _, err := f.Get(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkInline_CPUBound(b *testing.B) {
	benchmarkSubmitGet(b, tpool.QueueInline, 4, cpuBoundWork(1000))
}

func BenchmarkDelegated_CPUBound(b *testing.B) {
	benchmarkSubmitGet(b, tpool.QueueDelegated, 4, cpuBoundWork(1000))
}

func BenchmarkInline_IOBound(b *testing.B) {
	benchmarkSubmitGet(b, tpool.QueueInline, 8, ioBoundWork(time.Millisecond))
}

func BenchmarkDelegated_IOBound(b *testing.B) {
	benchmarkSubmitGet(b, tpool.QueueDelegated, 8, ioBoundWork(time.Millisecond))
}

func benchmarkParallelSubmit(b *testing.B, d tpool.QueueDiscipline) {
	pool := tpool.New(
		tpool.WithWorkerCount(8),
		tpool.WithQueueDiscipline(d),
	)
	defer pool.Close()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			f, err := tpool.Submit(pool, func() (int, error) { return 1, nil })
			if err != nil {
				b.Fatal(err)
			}
			if _, err := f.Get(); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkInline_ParallelSubmitters(b *testing.B) {
	benchmarkParallelSubmit(b, tpool.QueueInline)
}

func BenchmarkDelegated_ParallelSubmitters(b *testing.B) {
	benchmarkParallelSubmit(b, tpool.QueueDelegated)
}
