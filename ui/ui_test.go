package ui

import (
	"strings"
	"testing"

	"sigma/eval"
	"sigma/hal"
	"sigma/history"
)

type fakeFramebuffer struct {
	w, h int
	buf  []byte
}

func newFakeFramebuffer(w, h int) *fakeFramebuffer {
	return &fakeFramebuffer{w: w, h: h, buf: make([]byte, w*h*2)}
}

func (f *fakeFramebuffer) Width() int              { return f.w }
func (f *fakeFramebuffer) Height() int             { return f.h }
func (f *fakeFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatRGB565 }
func (f *fakeFramebuffer) StrideBytes() int        { return f.w * 2 }
func (f *fakeFramebuffer) Buffer() []byte          { return f.buf }
func (f *fakeFramebuffer) ClearRGB(r, g, b uint8)  {}
func (f *fakeFramebuffer) Present() error          { return nil }

type fakeDisplay struct{ fb hal.Framebuffer }

func (d fakeDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type fakeKeyboard struct{ ch chan hal.KeyEvent }

func (k fakeKeyboard) Events() <-chan hal.KeyEvent { return k.ch }

type fakeInput struct{ kbd fakeKeyboard }

func (in fakeInput) Keyboard() hal.Keyboard { return in.kbd }

type fakeTime struct{ ch chan uint64 }

func (ft fakeTime) Ticks() <-chan uint64 { return ft.ch }

type fakeLogger struct{ lines []string }

func (l *fakeLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }

type harness struct {
	app   *App
	ch    chan hal.KeyEvent
	ticks chan uint64
	sess  *eval.Session
	hist  *history.Log
	log   *fakeLogger
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ch := make(chan hal.KeyEvent, 256)
	ticks := make(chan uint64, 64)
	sess := eval.NewSession()
	hist := history.New(32)
	log := &fakeLogger{}
	app := New(
		fakeDisplay{fb: newFakeFramebuffer(400, 300)},
		fakeInput{kbd: fakeKeyboard{ch: ch}},
		fakeTime{ch: ticks},
		log, sess, hist,
	)
	if err := app.Step(); err != nil {
		t.Fatalf("initial Step: %v", err)
	}
	return &harness{app: app, ch: ch, ticks: ticks, sess: sess, hist: hist, log: log}
}

func (h *harness) typeString(t *testing.T, s string) {
	t.Helper()
	for _, r := range s {
		h.ch <- hal.KeyEvent{Press: true, Rune: r}
	}
	h.step(t)
}

func (h *harness) press(t *testing.T, code hal.KeyCode) {
	t.Helper()
	h.ch <- hal.KeyEvent{Code: code, Press: true}
	h.step(t)
}

func (h *harness) step(t *testing.T) {
	t.Helper()
	if err := h.app.Step(); err != nil {
		t.Fatalf("Step: %v", err)
	}
}

func TestEvaluateUpdatesResultHistoryAns(t *testing.T) {
	h := newHarness(t)

	h.typeString(t, "2+2")
	h.press(t, hal.KeyEnter)

	if h.app.result != "4" {
		t.Fatalf("result = %q, want 4", h.app.result)
	}
	if h.hist.Len() != 1 || h.hist.At(0).Expr != "2+2" {
		t.Fatalf("history = %+v", h.hist.LastN(10))
	}
	if len(h.app.input) != 0 {
		t.Fatalf("entry not cleared: %q", string(h.app.input))
	}

	h.typeString(t, "ANS+1")
	h.press(t, hal.KeyEnter)
	if h.app.result != "5" {
		t.Fatalf("ANS+1 result = %q, want 5", h.app.result)
	}
	if len(h.log.lines) != 2 {
		t.Fatalf("logged %d lines, want 2", len(h.log.lines))
	}
}

func TestCursorBlinksOnTickClock(t *testing.T) {
	h := newHarness(t)

	if h.app.cursor() != "_" {
		t.Fatalf("initial cursor = %q, want _", h.app.cursor())
	}

	h.ticks <- cursorBlinkTicks
	h.step(t)
	if h.app.cursor() != " " {
		t.Fatalf("cursor after %d ticks = %q, want blank", cursorBlinkTicks, h.app.cursor())
	}
	if h.app.blink != 1 {
		t.Fatalf("blink phase = %d, want 1", h.app.blink)
	}

	h.ticks <- 2 * cursorBlinkTicks
	h.step(t)
	if h.app.cursor() != "_" {
		t.Fatalf("cursor after %d ticks = %q, want _", 2*cursorBlinkTicks, h.app.cursor())
	}
}

func TestFitTextCountsRunes(t *testing.T) {
	if got := fitText("2*π+1", 3); got != "2*π" {
		t.Fatalf("fitText = %q, want 2*π", got)
	}
	if got := fitTail("sin(π/2)", 4); got != "π/2)" {
		t.Fatalf("fitTail = %q, want π/2)", got)
	}
	if got := fitText("π", 5); got != "π" {
		t.Fatalf("fitText short = %q, want π", got)
	}
	if got := fitTail("abc", 0); got != "" {
		t.Fatalf("fitTail zero = %q, want empty", got)
	}
}

func TestFailureLeavesStateIntact(t *testing.T) {
	h := newHarness(t)

	h.typeString(t, "6*7")
	h.press(t, hal.KeyEnter)

	h.typeString(t, "1/0")
	h.press(t, hal.KeyEnter)

	if !strings.Contains(h.app.msg, "division by zero") {
		t.Fatalf("msg = %q", h.app.msg)
	}
	if h.sess.LastAnswer() != 42 {
		t.Fatalf("LastAnswer = %g, want 42", h.sess.LastAnswer())
	}
	if h.hist.Len() != 1 {
		t.Fatalf("failed evaluation reached history: %d", h.hist.Len())
	}
}

func TestAngleModeToggle(t *testing.T) {
	h := newHarness(t)

	if h.sess.Mode() != eval.Degrees {
		t.Fatalf("default mode = %v", h.sess.Mode())
	}
	h.press(t, hal.KeyF1)
	if h.sess.Mode() != eval.Radians {
		t.Fatalf("mode after F1 = %v", h.sess.Mode())
	}
	h.press(t, hal.KeyF1)
	if h.sess.Mode() != eval.Degrees {
		t.Fatalf("mode after second F1 = %v", h.sess.Mode())
	}
}

func TestHistoryOverlayRecall(t *testing.T) {
	h := newHarness(t)

	h.typeString(t, "1+1")
	h.press(t, hal.KeyEnter)
	h.typeString(t, "3*3")
	h.press(t, hal.KeyEnter)

	h.press(t, hal.KeyF3)
	if !h.app.showHist {
		t.Fatal("overlay not shown")
	}
	h.press(t, hal.KeyUp) // select the older entry
	h.press(t, hal.KeyEnter)
	if h.app.showHist {
		t.Fatal("overlay still open after recall")
	}
	if got := string(h.app.input); got != "1+1" {
		t.Fatalf("recalled %q, want 1+1", got)
	}
}

func TestRecallWithArrows(t *testing.T) {
	h := newHarness(t)

	h.typeString(t, "1+1")
	h.press(t, hal.KeyEnter)
	h.typeString(t, "2+2")
	h.press(t, hal.KeyEnter)

	h.press(t, hal.KeyUp)
	if got := string(h.app.input); got != "2+2" {
		t.Fatalf("first recall %q, want 2+2", got)
	}
	h.press(t, hal.KeyUp)
	if got := string(h.app.input); got != "1+1" {
		t.Fatalf("second recall %q, want 1+1", got)
	}
	h.press(t, hal.KeyDown)
	if got := string(h.app.input); got != "2+2" {
		t.Fatalf("recall down %q, want 2+2", got)
	}
}

func TestGraphPlotting(t *testing.T) {
	h := newHarness(t)

	h.press(t, hal.KeyF2)
	if h.app.scr != screenGraph {
		t.Fatal("F2 did not switch to graph screen")
	}

	h.press(t, hal.KeyDelete) // clear the default expression
	h.typeString(t, "ln(x)")
	h.press(t, hal.KeyEnter)

	if h.app.plotted != "ln(x)" {
		t.Fatalf("plotted = %q", h.app.plotted)
	}
	if len(h.app.pts) != 400 {
		t.Fatalf("pts = %d, want 400", len(h.app.pts))
	}
	for _, p := range h.app.pts {
		if p.Defined && p.X <= 0 {
			t.Fatalf("ln defined at x=%g", p.X)
		}
	}

	h.press(t, hal.KeyRight) // pan keeps the same sample count
	if len(h.app.pts) != 400 {
		t.Fatalf("pts after pan = %d", len(h.app.pts))
	}
	if h.app.view.XMin != -8 || h.app.view.XMax != 12 {
		t.Fatalf("view after pan = [%g, %g]", h.app.view.XMin, h.app.view.XMax)
	}
}

func TestBadPlotExpressionReportsError(t *testing.T) {
	h := newHarness(t)

	h.press(t, hal.KeyF2)
	h.press(t, hal.KeyDelete)
	h.typeString(t, "sin(")
	h.press(t, hal.KeyEnter)

	if !strings.Contains(h.app.msg, "syntax") {
		t.Fatalf("msg = %q", h.app.msg)
	}
	if h.app.plotted != "" {
		t.Fatalf("plotted = %q after failure", h.app.plotted)
	}
}
