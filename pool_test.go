package chemops

import (
	"runtime"
	"testing"
)

func TestNewServicePool_ClampsSize(t *testing.T) {
	pool := NewServicePool(0, WithEngine(&fakeEngine{}))
	defer pool.Close()

	if pool.Size() != 1 {
		t.Errorf("Size() = %d, want 1", pool.Size())
	}
}

func TestServicePool_LazyCreation(t *testing.T) {
	pool := NewServicePool(4, WithEngine(&fakeEngine{}))
	defer pool.Close()

	if len(pool.services) != 0 {
		t.Fatalf("services created eagerly: %d", len(pool.services))
	}

	svc := pool.Acquire()
	if svc == nil {
		t.Fatal("Acquire returned nil")
	}
	if len(pool.services) != 1 {
		t.Errorf("services = %d, want 1 after first acquire", len(pool.services))
	}
	pool.Release(svc)
}

func TestServicePool_ReusesReleased(t *testing.T) {
	pool := NewServicePool(1, WithEngine(&fakeEngine{}))
	defer pool.Close()

	first := pool.Acquire()
	pool.Release(first)
	second := pool.Acquire()
	pool.Release(second)

	if first != second {
		t.Error("expected the released service to be reused")
	}
	if len(pool.services) != 1 {
		t.Errorf("services = %d, want 1", len(pool.services))
	}
}

func TestServicePool_CloseClosesServices(t *testing.T) {
	fake := &fakeEngine{}
	pool := NewServicePool(2, WithEngine(fake))

	svc := pool.Acquire()
	pool.Release(svc)

	if err := pool.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !fake.closed {
		t.Error("expected engines to be closed")
	}

	// Closing twice is fine.
	if err := pool.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestResolvePoolSize(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit wins", 3, 3},
		{"explicit above cap wins", 16, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePoolSize(tt.workers); got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}

	t.Run("auto stays within bounds", func(t *testing.T) {
		got := ResolvePoolSize(0)
		if got < MinPoolSize || got > MaxPoolSize {
			t.Errorf("ResolvePoolSize(0) = %d, want within [%d, %d]", got, MinPoolSize, MaxPoolSize)
		}
		if want := runtime.GOMAXPROCS(0) / cpuDivisor; want >= MinPoolSize && want <= MaxPoolSize && got != want {
			t.Errorf("ResolvePoolSize(0) = %d, want %d", got, want)
		}
	})
}
