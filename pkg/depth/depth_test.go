package depth

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestSample_Sanitize(t *testing.T) {
	s := Sample{Left: math.NaN(), Center: -1.0, Right: math.Inf(1)}.Sanitize()
	if s.Left != Sentinel || s.Center != Sentinel || s.Right != Sentinel {
		t.Errorf("expected all sentinel, got %+v", s)
	}

	ok := Sample{Left: 0.0, Center: 2.5, Right: 9.9}.Sanitize()
	if ok.Left != 0.0 || ok.Center != 2.5 || ok.Right != 9.9 {
		t.Errorf("valid readings were altered: %+v", ok)
	}
}

func TestSample_Min(t *testing.T) {
	s := Sample{Left: 2.0, Center: 0.3, Right: 1.0}
	if s.Min() != 0.3 {
		t.Errorf("got %v, want 0.3", s.Min())
	}
}

func TestTrace_ReplaysAndExhausts(t *testing.T) {
	samples := []Sample{
		{Left: 1, Center: 2, Right: 3},
		{Left: 4, Center: 5, Right: 6},
	}
	tr := NewTrace(samples, false)
	ctx := context.Background()

	for i, want := range samples {
		got, err := tr.Sample(ctx)
		if err != nil {
			t.Fatalf("sample %d: %v", i, err)
		}
		if got != want {
			t.Errorf("sample %d: got %+v, want %+v", i, got, want)
		}
	}

	if _, err := tr.Sample(ctx); !errors.Is(err, ErrTraceDone) {
		t.Errorf("expected ErrTraceDone, got %v", err)
	}
}

func TestTrace_Loops(t *testing.T) {
	tr := NewTrace([]Sample{{Left: 1, Center: 1, Right: 1}}, true)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := tr.Sample(ctx); err != nil {
			t.Fatalf("loop iteration %d: %v", i, err)
		}
	}
	if tr.Remaining() != 1 {
		t.Errorf("looping trace should always report full length")
	}
}

func TestTrace_SanitizesRecordedSamples(t *testing.T) {
	tr := NewTrace([]Sample{{Left: math.NaN(), Center: 2, Right: -4}}, false)
	got, err := tr.Sample(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got.Left != Sentinel || got.Right != Sentinel {
		t.Errorf("trace did not sanitize: %+v", got)
	}
}

func TestLoadTrace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.yaml")
	data := []byte("- {left: 1.2, center: 0.8, right: 3.0}\n- {left: 2.0, center: 2.0, right: 2.0}\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	tr, err := LoadTrace(path, false)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Remaining() != 2 {
		t.Fatalf("expected 2 samples, got %d", tr.Remaining())
	}

	got, err := tr.Sample(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got.Center != 0.8 {
		t.Errorf("got center %v, want 0.8", got.Center)
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadTrace(filepath.Join(dir, "nope.yaml"), false); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("empty trace rejected", func(t *testing.T) {
		empty := filepath.Join(dir, "empty.yaml")
		os.WriteFile(empty, []byte("[]\n"), 0o644)
		if _, err := LoadTrace(empty, false); err == nil {
			t.Error("expected error for empty trace")
		}
	})
}

func TestWalk_ProducesSaneReadings(t *testing.T) {
	w := NewWalk()
	ctx := context.Background()

	first, err := w.Sample(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if first.Center <= 0 || first.Center > Sentinel {
		t.Errorf("implausible center depth %v", first.Center)
	}

	// The walk approaches: center must eventually dip under 1m.
	sawClose := false
	for i := 0; i < 400; i++ {
		s, err := w.Sample(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if s.Center < 1.0 {
			sawClose = true
			break
		}
	}
	if !sawClose {
		t.Error("walk never approached an obstacle")
	}
}
