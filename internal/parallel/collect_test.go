package parallel

import (
	"errors"
	"sync"
	"testing"
)

func TestErrorCollector(t *testing.T) {
	t.Parallel()

	t.Run("Keeps the first error", func(t *testing.T) {
		t.Parallel()
		var ec ErrorCollector
		first := errors.New("first")
		ec.SetError(first)
		ec.SetError(errors.New("second"))
		if ec.Err() != first {
			t.Errorf("Err() = %v, want %v", ec.Err(), first)
		}
	})

	t.Run("Ignores nil", func(t *testing.T) {
		t.Parallel()
		var ec ErrorCollector
		ec.SetError(nil)
		if ec.Err() != nil {
			t.Errorf("Err() = %v, want nil", ec.Err())
		}
	})

	t.Run("Concurrent use records exactly one error", func(t *testing.T) {
		t.Parallel()
		var ec ErrorCollector
		var wg sync.WaitGroup
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ec.SetError(errors.New("worker error"))
			}()
		}
		wg.Wait()
		if ec.Err() == nil {
			t.Error("expected an error to be recorded")
		}
	})
}

func TestResultCollector(t *testing.T) {
	t.Parallel()

	t.Run("First offer wins", func(t *testing.T) {
		t.Parallel()
		var rc ResultCollector[int]
		if !rc.Offer(7) {
			t.Error("first Offer should win")
		}
		if rc.Offer(9) {
			t.Error("second Offer should lose")
		}
		v, ok := rc.Get()
		if !ok || v != 7 {
			t.Errorf("Get() = (%d, %v), want (7, true)", v, ok)
		}
	})

	t.Run("Empty collector", func(t *testing.T) {
		t.Parallel()
		var rc ResultCollector[string]
		if _, ok := rc.Get(); ok {
			t.Error("Get() on empty collector should report false")
		}
	})

	t.Run("Exactly one concurrent winner", func(t *testing.T) {
		t.Parallel()
		var rc ResultCollector[int]
		var wg sync.WaitGroup
		wins := make(chan int, 64)
		for i := 0; i < 64; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				if rc.Offer(i) {
					wins <- i
				}
			}(i)
		}
		wg.Wait()
		close(wins)
		var winners []int
		for w := range wins {
			winners = append(winners, w)
		}
		if len(winners) != 1 {
			t.Fatalf("expected exactly one winner, got %d", len(winners))
		}
		v, ok := rc.Get()
		if !ok || v != winners[0] {
			t.Errorf("Get() = (%d, %v), want (%d, true)", v, ok, winners[0])
		}
	})
}
