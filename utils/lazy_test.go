package utils

import "testing"

func TestLazyGetFillsOnce(t *testing.T) {
	var l Lazy[map[string]string]

	fills := 0
	fill := func() map[string]string {
		fills++
		return map[string]string{"a": "1"}
	}

	first := l.Get(fill)
	second := l.Get(fill)

	if fills != 1 {
		t.Fatalf("expected 1 fill, got %d", fills)
	}

	if len(first) != 1 || len(second) != 1 {
		t.Fatalf("unexpected values: %v %v", first, second)
	}

	if !l.Filled() {
		t.Fatal("expected Filled after Get")
	}
}

func TestLazyCachesZeroResult(t *testing.T) {
	var l Lazy[[]string]

	fills := 0
	v := l.Get(func() []string {
		fills++
		return nil
	})

	if v != nil {
		t.Fatalf("expected nil, got %v", v)
	}

	l.Get(func() []string {
		fills++
		return nil
	})

	if fills != 1 {
		t.Fatalf("nil result must still be cached, got %d fills", fills)
	}
}
