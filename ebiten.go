package folio

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	defaultWheelSpeed = 40.0 // pixels per wheel notch
	defaultKeyStep    = 60.0 // pixels per arrow key press
)

// EbitenHost feeds Ebitengine input into a Window: cursor position,
// presses, viewport enter/leave, wheel, keyboard and single-finger touch
// scrolling.
type EbitenHost struct {
	// WheelSpeed is the scroll distance per wheel notch.
	WheelSpeed float64
	// KeyStep is the scroll distance per arrow key press.
	KeyStep float64

	engine     *Engine
	pressed    bool
	touching   bool
	touchID    ebiten.TouchID
	touchLastY int
	touchIDs   []ebiten.TouchID
}

// NewEbitenHost creates a host for e.
func NewEbitenHost(e *Engine) *EbitenHost {
	return &EbitenHost{
		WheelSpeed: defaultWheelSpeed,
		KeyStep:    defaultKeyStep,
		engine:     e,
	}
}

// Poll reads this frame's input and forwards it to the window. Real input
// is skipped while injected events are queued.
func (h *EbitenHost) Poll() {
	if h.engine.Pending() > 0 {
		return
	}
	h.pollMouse()
	h.pollScroll()
	h.pollTouch()
}

func (h *EbitenHost) pollMouse() {
	win := h.engine.win
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	w, ht := win.Size()
	inside := x >= 0 && y >= 0 && x < w && y < ht && ebiten.IsFocused()

	if !inside {
		win.PointerLeave()
		if h.pressed && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			h.pressed = false
			win.PointerUp(x, y, MouseButtonLeft)
		}
		return
	}
	win.PointerEnter(x, y)
	win.PointerMove(x, y)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		h.pressed = true
		win.PointerDown(x, y, MouseButtonLeft)
	} else if h.pressed && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		h.pressed = false
		win.PointerUp(x, y, MouseButtonLeft)
	}
}

func (h *EbitenHost) pollScroll() {
	win := h.engine.win
	if _, wy := ebiten.Wheel(); wy != 0 {
		win.ScrollBy(-wy * h.WheelSpeed)
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		win.ScrollBy(h.KeyStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		win.ScrollBy(-h.KeyStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		win.ScrollBy(win.Height() * 0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		win.ScrollBy(-win.Height() * 0.9)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		win.ScrollBy(-win.ScrollY())
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		win.ScrollBy(win.MaxScroll() - win.ScrollY())
	}
}

// pollTouch turns a single-finger vertical drag into user scrolling.
func (h *EbitenHost) pollTouch() {
	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])
	if len(h.touchIDs) != 1 {
		h.touching = false
		return
	}
	id := h.touchIDs[0]
	_, ty := ebiten.TouchPosition(id)
	if !h.touching || id != h.touchID {
		h.touching = true
		h.touchID = id
		h.touchLastY = ty
		return
	}
	if dy := ty - h.touchLastY; dy != 0 {
		h.engine.win.ScrollBy(-float64(dy))
	}
	h.touchLastY = ty
}

// --- Run ---

// RunConfig configures a window created by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// Draw renders a frame. The engine's state is current when it is called.
	Draw func(screen *ebiten.Image)
}

type game struct {
	engine *Engine
	host   *EbitenHost
	draw   func(*ebiten.Image)
}

func (g *game) Update() error {
	g.host.Poll()
	g.engine.Update(float32(1.0 / float64(ebiten.TPS())))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.draw != nil {
		g.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.engine.win.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run mounts e, opens a window and runs the game loop until the window is
// closed. The engine is unmounted on every exit path.
func Run(e *Engine, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
		e.win.Resize(float64(cfg.Width), float64(cfg.Height))
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	e.Mount()
	defer e.Unmount()

	return ebiten.RunGame(&game{engine: e, host: NewEbitenHost(e), draw: cfg.Draw})
}
