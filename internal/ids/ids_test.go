package ids

import (
	"strconv"
	"testing"
)

func TestNewGeneratorRejectsBadNode(t *testing.T) {
	for _, id := range []int64{-1, 1024} {
		if _, err := NewGenerator(id); err == nil {
			t.Errorf("NewGenerator(%d) succeeded, want error", id)
		}
	}
}

func TestNextIsUniqueAndOrdered(t *testing.T) {
	gen, err := NewGenerator(1)
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	seen := make(map[string]bool)
	var prev int64
	for i := 0; i < 1000; i++ {
		id := gen.Next()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true

		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			t.Fatalf("id %q is not numeric: %v", id, err)
		}
		if n <= prev {
			t.Fatalf("id %d not greater than previous %d", n, prev)
		}
		prev = n
	}
}
