package folio

import "testing"

func TestSampler_OneSamplePerFrame(t *testing.T) {
	w := newTestWindow()
	s := NewSampler(w)
	s.Mount()
	defer s.Unmount()

	samples := 0
	count := func(ViewportSnapshot) { samples++ }
	s.Flush(count) // initial sample on mount

	for i := 0; i < 20; i++ {
		w.ScrollBy(5)
	}
	s.Flush(count)
	s.Flush(count)

	if samples != 2 {
		t.Errorf("samples = %d, want 2", samples)
	}
	if got := s.Current().ScrollY; got != 100 {
		t.Errorf("Current().ScrollY = %v, want 100", got)
	}
	if got := s.Delta(); got != 100 {
		t.Errorf("Delta() = %v, want 100", got)
	}
}

func TestSampler_SnapshotHistory(t *testing.T) {
	w := newTestWindow()
	s := NewSampler(w)

	first := s.Sample()
	if s.Previous() != first {
		t.Error("Previous should equal Current after the first sample")
	}
	w.ScrollBy(40)
	w.Resize(800, 500)
	w.Update(0.016)
	second := s.Sample()

	if s.Previous() != first || s.Current() != second {
		t.Error("history should hold exactly the last two samples")
	}
	if second.ViewportWidth != 800 || second.ViewportHeight != 500 || second.ScrollY != 40 {
		t.Errorf("second = %+v", second)
	}
	if second.Timestamp <= first.Timestamp {
		t.Errorf("Timestamp did not advance: %v -> %v", first.Timestamp, second.Timestamp)
	}
}

func TestSampler_ResizeRequestsSample(t *testing.T) {
	w := newTestWindow()
	s := NewSampler(w)
	s.Mount()
	s.Flush(nil)

	w.Resize(700, 600)
	if !s.Flush(nil) {
		t.Error("resize should request a sample")
	}
	s.Unmount()
	w.Resize(900, 600)
	if s.Flush(nil) {
		t.Error("unmounted sampler should not receive resize requests")
	}
}

func TestSampler_MountUnmountLeavesNoListeners(t *testing.T) {
	w := newTestWindow()
	s := NewSampler(w)
	for i := 0; i < 5; i++ {
		s.Mount()
		s.Mount()
		if w.TotalListeners() != 2 {
			t.Fatalf("cycle %d: TotalListeners() = %d, want 2", i, w.TotalListeners())
		}
		s.Unmount()
		s.Unmount()
	}
	if w.TotalListeners() != 0 {
		t.Errorf("TotalListeners() = %d, want 0", w.TotalListeners())
	}
}
