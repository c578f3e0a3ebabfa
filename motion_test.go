package folio

import "testing"

func TestMotionController_ReadsInitialPreference(t *testing.T) {
	w := NewWindow(1024, 768)
	w.SetMediaMatches(ReducedMotionQuery, true)
	m := NewMotionController(w)
	m.Mount()
	defer m.Unmount()

	if !m.Reduced().Get() {
		t.Error("Reduced() = false, want true")
	}
	if !w.Body().Contains(ReducedMotionClass) {
		t.Errorf("body classes = %q, want reduced-motion", w.Body().String())
	}
}

func TestMotionController_FollowsChanges(t *testing.T) {
	w := NewWindow(1024, 768)
	m := NewMotionController(w)
	m.Mount()

	var got []bool
	m.Reduced().Subscribe(func(r bool) { got = append(got, r) })

	w.SetMediaMatches(ReducedMotionQuery, true)
	w.SetMediaMatches(ReducedMotionQuery, false)

	if len(got) != 2 || !got[0] || got[1] {
		t.Errorf("changes = %v, want [true false]", got)
	}
	if w.Body().Contains(ReducedMotionClass) {
		t.Error("class should be removed when motion is allowed again")
	}

	m.Unmount()
	w.SetMediaMatches(ReducedMotionQuery, true)
	if m.Reduced().Get() {
		t.Error("unmounted controller should not follow changes")
	}
	if w.TotalListeners() != 0 {
		t.Errorf("TotalListeners() = %d, want 0", w.TotalListeners())
	}
}

func TestMotionController_NoMediaSupport(t *testing.T) {
	w := NewWindow(1024, 768)
	w.DisableMedia()
	m := NewMotionController(w)
	m.Mount()
	defer m.Unmount()

	if m.Reduced().Get() {
		t.Error("missing media support should mean motion is allowed")
	}
	if w.Body().Contains(ReducedMotionClass) {
		t.Error("class should not be applied")
	}
}

func TestMotionController_RemountIdempotent(t *testing.T) {
	w := NewWindow(1024, 768)
	m := NewMotionController(w)
	for i := 0; i < 4; i++ {
		m.Mount()
		m.Mount()
		if w.TotalListeners() != 1 {
			t.Fatalf("cycle %d: TotalListeners() = %d, want 1", i, w.TotalListeners())
		}
		m.Unmount()
	}
}
