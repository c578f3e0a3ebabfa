package folio

import "testing"

func TestInject_OneEventPerFrame(t *testing.T) {
	p := newABCPage(t, 1024)
	p.Mount()
	defer p.Unmount()

	p.Engine.InjectMove(10, 20)
	p.Engine.InjectClick(10, 20)
	if p.Engine.Pending() != 3 {
		t.Fatalf("Pending() = %d, want 3", p.Engine.Pending())
	}

	p.Engine.Update(0)
	if st := p.Engine.Pointer().State().Get(); st.X != 10 || st.Y != 20 || st.IsDown {
		t.Errorf("after move: %+v", st)
	}
	p.Engine.Update(0)
	if !p.Engine.Pointer().State().Get().IsDown {
		t.Error("press should set IsDown")
	}
	p.Engine.Update(0)
	if p.Engine.Pointer().State().Get().IsDown {
		t.Error("release should clear IsDown")
	}
	if p.Engine.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", p.Engine.Pending())
	}
}

func TestInject_WheelAndResize(t *testing.T) {
	p := newABCPage(t, 1024)
	p.Mount()
	defer p.Unmount()

	p.Engine.InjectWheel(450)
	p.Engine.InjectResize(700, 600)
	p.Engine.Update(0)
	if p.Window.ScrollY() != 450 || p.Engine.ActiveSection().Get() != "b" {
		t.Errorf("after wheel: scroll=%v active=%q", p.Window.ScrollY(), p.Engine.ActiveSection().Get())
	}
	p.Engine.Update(0)
	if w, _ := p.Window.Size(); w != 700 || !p.Engine.Pointer().TouchMode() {
		t.Errorf("after resize: width=%v touch=%v", w, p.Engine.Pointer().TouchMode())
	}
}

func TestInject_LeaveEnter(t *testing.T) {
	p := newABCPage(t, 1024)
	p.Mount()
	defer p.Unmount()

	p.Engine.InjectLeave()
	p.Engine.InjectEnter(50, 60)
	p.Engine.Update(0)
	if !p.Engine.Pointer().State().Get().IsSuppressed {
		t.Error("leave should suppress the cursor")
	}
	p.Engine.Update(0)
	if p.Engine.Pointer().State().Get().IsSuppressed {
		t.Error("enter should restore the cursor")
	}
}
