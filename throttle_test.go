package folio

import "testing"

func TestFrameThrottle_CoalescesRequests(t *testing.T) {
	var th FrameThrottle
	runs := 0
	for i := 0; i < 50; i++ {
		th.Request()
	}
	if !th.Pending() {
		t.Fatal("Pending() = false after Request")
	}
	if !th.Flush(func() { runs++ }) {
		t.Error("Flush should run when a request is pending")
	}
	if th.Flush(func() { runs++ }) {
		t.Error("Flush should not run twice for one burst")
	}
	if runs != 1 {
		t.Errorf("runs = %d, want 1", runs)
	}
	req, fl := th.Stats()
	if req != 50 || fl != 1 {
		t.Errorf("Stats() = (%d, %d), want (50, 1)", req, fl)
	}
}
