package tilt

import "testing"

type fakePointer struct {
	x, y float64
	ok   bool
}

func (p *fakePointer) Pointer() (float64, float64, bool) { return p.x, p.y, p.ok }

type recordingSink struct {
	events []ParamsEvent
}

func (s *recordingSink) PublishParams(e ParamsEvent) { s.events = append(s.events, e) }

func TestBoardHitTestTopmost(t *testing.T) {
	b := NewBoard(DefaultConfig())
	under := b.NewCard("under", Rect{X: 0, Y: 0, Width: 200, Height: 200})
	over := b.NewCard("over", Rect{X: 100, Y: 100, Width: 200, Height: 200})

	b.InjectMove(150, 150)
	updateFrames(b, 1)

	if b.Hovered() != over {
		t.Fatalf("hovered = %v, want over", b.Hovered())
	}
	if under.Hovered() {
		t.Error("card underneath should not be hovered")
	}
}

func TestBoardMoveBetweenCards(t *testing.T) {
	b := NewBoard(DefaultConfig())
	left := b.NewCard("left", Rect{X: 0, Y: 0, Width: 100, Height: 100})
	right := b.NewCard("right", Rect{X: 200, Y: 0, Width: 100, Height: 100})

	b.InjectMove(50, 50)
	updateFrames(b, 1)
	b.InjectMove(250, 20)
	updateFrames(b, 1)

	if left.Hovered() || !right.Hovered() {
		t.Errorf("left=%v right=%v", left.Hovered(), right.Hovered())
	}
	if cur := left.Engine().Current(); cur.TargetX != 50 || cur.TargetY != 50 {
		t.Errorf("left should target its center after leave, got (%v, %v)", cur.TargetX, cur.TargetY)
	}
	if cur := right.Engine().Current(); cur.TargetX != 50 || cur.TargetY != 20 {
		t.Errorf("right target = (%v, %v), want (50, 20)", cur.TargetX, cur.TargetY)
	}
}

func TestBoardMoveUpdatesTarget(t *testing.T) {
	b, c := newTestBoard()
	b.InjectPath(150, 100, 350, 300, 5)
	updateFrames(b, 5)

	if cur := c.Engine().Current(); cur.TargetX != 250 || cur.TargetY != 250 {
		t.Errorf("target = (%v, %v), want (250, 250)", cur.TargetX, cur.TargetY)
	}
	if b.PendingInjected() != 0 {
		t.Errorf("pending injected = %d", b.PendingInjected())
	}
}

func TestBoardPointerSource(t *testing.T) {
	b, c := newTestBoard()
	src := &fakePointer{x: 200, y: 150, ok: true}
	b.SetPointerSource(src)
	updateFrames(b, 1)
	if !c.Hovered() {
		t.Fatal("expected hover from pointer source")
	}

	// Injected events win over the real pointer for their frame.
	b.InjectMove(0, 0)
	updateFrames(b, 1)
	if c.Hovered() {
		t.Error("injected move off the card should leave it")
	}

	updateFrames(b, 1)
	if !c.Hovered() {
		t.Error("real pointer should resume after the injected frame")
	}

	src.ok = false
	updateFrames(b, 1)
	if c.Hovered() {
		t.Error("pointer leaving the board should leave the card")
	}
}

func TestBoardFocusProvider(t *testing.T) {
	b, c := newTestBoard()
	focused := true
	b.SetFocusFunc(func() bool { return focused })

	b.InjectMove(400, 100)
	updateFrames(b, 1)
	b.InjectLeave()
	updateFrames(b, 200)

	if !c.Engine().Converged() {
		t.Fatal("expected convergence")
	}
	if !c.Engine().Running() {
		t.Error("focused board should keep the card animating")
	}

	focused = false
	updateFrames(b, 1)
	if c.Engine().Running() {
		t.Error("card should idle once the board loses focus")
	}
}

func TestBoardParamsSink(t *testing.T) {
	b, c := newTestBoard()
	sink := &recordingSink{}
	b.SetParamsSink(sink)

	b.InjectMove(400, 100)
	updateFrames(b, 3)

	if len(sink.events) != 3 {
		t.Fatalf("sink got %d events, want 3", len(sink.events))
	}
	last := sink.events[len(sink.events)-1]
	if last.Card != "profile" || !last.Active || last.Params != c.Params() {
		t.Errorf("last event = %+v", last)
	}
}

func TestBoardCardLookup(t *testing.T) {
	b := NewBoard(DefaultConfig())
	a := b.NewCard("a", Rect{Width: 10, Height: 10})
	b.NewCard("b", Rect{Width: 10, Height: 10})

	if b.Card("a") != a {
		t.Error("Card(a) mismatch")
	}
	if b.Card("missing") != nil {
		t.Error("expected nil for missing card")
	}
	if len(b.Cards()) != 2 {
		t.Errorf("cards = %d, want 2", len(b.Cards()))
	}
}

func TestBoardUpdateFunc(t *testing.T) {
	b := NewBoard(DefaultConfig())
	calls := 0
	b.SetUpdateFunc(func() error { calls++; return nil })
	if err := b.Update(); err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("update func called %d times", calls)
	}
	if b.Loop().Now() <= 0 {
		t.Error("Update should advance the frame loop")
	}
}

func TestBoardDebugMode(t *testing.T) {
	b, c := newTestBoard()
	b.SetDebugMode(true)
	b.InjectMove(400, 100)
	updateFrames(b, 3)
	if !c.Engine().Running() {
		t.Error("debug mode should not change animation")
	}
}

func TestInjectPathMinimumFrames(t *testing.T) {
	b := NewBoard(DefaultConfig())
	b.InjectPath(0, 0, 10, 10, 1)
	if b.PendingInjected() != 2 {
		t.Errorf("pending = %d, want 2", b.PendingInjected())
	}
}

func TestInjectLeaveUsesLastPosition(t *testing.T) {
	b, c := newTestBoard()
	b.InjectMove(400, 100)
	b.InjectLeave()
	updateFrames(b, 2)

	if c.Hovered() || b.Hovered() != nil {
		t.Error("expected no hovered card after InjectLeave")
	}
}
