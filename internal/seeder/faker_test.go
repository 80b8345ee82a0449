package seeder

import (
	"regexp"
	"testing"
	"time"
	"unicode/utf8"
)

func TestSourceIsReproducible(t *testing.T) {
	a, b := NewSource(42), NewSource(42)
	for i := 0; i < 50; i++ {
		if x, y := a.IntRange(0, 1000), b.IntRange(0, 1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
	if a.Email() != b.Email() {
		t.Error("faker output should follow the shared seed")
	}
}

func TestDeriveIgnoresParentUsage(t *testing.T) {
	a, b := NewSource(7), NewSource(7)
	for i := 0; i < 100; i++ {
		a.Float64()
	}
	x, y := a.Derive("items"), b.Derive("items")
	for i := 0; i < 20; i++ {
		if x.Int64Range(0, 1<<40) != y.Int64Range(0, 1<<40) {
			t.Fatal("derived sources should not depend on parent draws")
		}
	}

	u, v := NewSource(7).Derive("users"), NewSource(7).Derive("reviews")
	same := true
	for i := 0; i < 10; i++ {
		if u.Int64Range(0, 1<<40) != v.Int64Range(0, 1<<40) {
			same = false
		}
	}
	if same {
		t.Error("different labels should give different streams")
	}
}

func TestRanges(t *testing.T) {
	src := NewSource(1)
	for i := 0; i < 1000; i++ {
		if n := src.IntRange(1, 5); n < 1 || n > 5 {
			t.Fatalf("IntRange(1, 5) = %d", n)
		}
		if n := src.Int64Range(500, 20000); n < 500 || n > 20000 {
			t.Fatalf("Int64Range = %d", n)
		}
		if i := src.Weighted([]int{3, 0, 1}); i == 1 {
			t.Fatal("zero weight was picked")
		}
	}
	if src.IntRange(3, 3) != 3 {
		t.Error("degenerate range should return its bound")
	}
}

func TestTimeBetween(t *testing.T) {
	src := NewSource(3)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)
	for i := 0; i < 500; i++ {
		ts := src.TimeBetween(start, end)
		if ts.Before(start) || ts.After(end) {
			t.Fatalf("%v outside [%v, %v]", ts, start, end)
		}
		if ts.Nanosecond() != 0 || ts.Location() != time.UTC {
			t.Fatalf("%v should be whole seconds in UTC", ts)
		}
	}

	odd := start.Add(500 * time.Millisecond)
	if got := src.TimeBetween(odd, start); !got.Equal(start.Add(time.Second)) {
		t.Errorf("empty interval should round start up, got %v", got)
	}
}

func TestTextRespectsLimit(t *testing.T) {
	src := NewSource(5)
	for _, limit := range []int{1, 20, 150, 200} {
		for i := 0; i < 50; i++ {
			text := src.Text(limit)
			if n := utf8.RuneCountInString(text); n == 0 || n > limit {
				t.Fatalf("Text(%d) returned %d characters", limit, n)
			}
		}
	}
}

func TestPhoneFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
	src := NewSource(9)
	for i := 0; i < 20; i++ {
		if phone := src.Phone(); !pattern.MatchString(phone) {
			t.Fatalf("unexpected phone %q", phone)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("héllo wörld", 5); got != "héllo" {
		t.Errorf("Truncate = %q", got)
	}
	if got := Truncate("abc", 10); got != "abc" {
		t.Errorf("Truncate = %q", got)
	}
}
