package wheel

import (
	"math/rand"
	"strings"
	"testing"
)

func TestSegmentAngle(t *testing.T) {
	if got := SegmentAngle(); got != 45.0 {
		t.Errorf("SegmentAngle() = %v, want 45", got)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		rotation float64
		want     int
	}{
		{"zero rotation stays on first segment", 0, 0},
		{"quarter into first segment", 10, 0},
		{"just past half segment lands on last", 23, 7},
		{"one full segment back", 45, 7},
		{"two segments back", 90, 6},
		{"half turn", 180, 4},
		{"full turn wraps to start", 360, 0},
		{"many turns reduce mod 360", 1800, 0},
		{"typical spin", 1845, 7},
		{"negative rotation normalizes", -45, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.rotation); got != tt.want {
				t.Errorf("Resolve(%v) = %d, want %d", tt.rotation, got, tt.want)
			}
		})
	}
}

func TestResolveAlwaysInRange(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	total := 0.0
	for i := 0; i < 1000; i++ {
		total += SpinOffset(r)
		index := Resolve(total)
		if index < 0 || index >= len(Prizes) {
			t.Fatalf("Resolve(%v) = %d, out of range [0,%d)", total, index, len(Prizes))
		}
	}
}

func TestSpinOffsetBounds(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		offset := SpinOffset(r)
		if offset < MinRotation || offset >= MinRotation+RotationSpan {
			t.Fatalf("SpinOffset() = %v, want in [%v,%v)", offset, MinRotation, MinRotation+RotationSpan)
		}
	}
}

func TestResolveSegmentMidpoints(t *testing.T) {
	// A rotation landing the pointer mid-segment must resolve to that segment.
	segment := SegmentAngle()
	for i := range Prizes {
		// Rotating by 360-i*segment brings segment i under the top pointer.
		rotation := 360 - float64(i)*segment
		if got := Resolve(rotation); got != i {
			t.Errorf("Resolve(%v) = %d, want %d", rotation, got, i)
		}
	}
}

func TestRandomPrizeUsesCatalog(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		label := RandomPrize(r)
		seen[label] = true

		found := false
		for _, p := range Prizes {
			if label == Label(p) {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("RandomPrize() = %q, not in catalog", label)
		}
	}
	if len(seen) != len(Prizes) {
		t.Errorf("RandomPrize() hit %d distinct prizes over 500 draws, want %d", len(seen), len(Prizes))
	}
}

func TestSegmentPath(t *testing.T) {
	for i := range Prizes {
		path := SegmentPath(i)
		if !strings.HasPrefix(path, "M 50.000 50.000 L ") {
			t.Errorf("SegmentPath(%d) = %q, want wedge anchored at center", i, path)
		}
		if !strings.HasSuffix(path, "Z") {
			t.Errorf("SegmentPath(%d) = %q, want closed path", i, path)
		}
	}
}

func TestLabelPositionInsideWheel(t *testing.T) {
	for i := range Prizes {
		x, y, _ := LabelPosition(i, 0.65)
		if x < 0 || x > 100 || y < 0 || y > 100 {
			t.Errorf("LabelPosition(%d) = (%v,%v), outside viewBox", i, x, y)
		}
	}
}
