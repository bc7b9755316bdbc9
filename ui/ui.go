package ui

import (
	"fmt"
	"strconv"
	"strings"

	"sigma/eval"
	"sigma/hal"
	"sigma/history"
	"sigma/plotgl"

	"tinygo.org/x/tinyfont"
)

type screen uint8

const (
	screenScientific screen = iota
	screenGraph
)

// cursorBlinkTicks is the half-period of the entry cursor in base ticks
// (the host tick is a millisecond).
const cursorBlinkTicks = 500

// App is the calculator's single UI task. It owns the presentation state
// (entries, history view, plot view); the engine owns evaluation.
type App struct {
	disp hal.Display
	in   hal.Input
	tm   hal.Time
	log  hal.Logger

	sess *eval.Session
	hist *history.Log

	fb     hal.Framebuffer
	events <-chan hal.KeyEvent
	ticks  <-chan uint64
	now    uint64
	blink  uint64

	d          *fbDisplay
	font       tinyfont.Fonter
	fontWidth  int16
	fontHeight int16
	fontOffset int16
	cols       int

	plot    *plotgl.Renderer
	view    plotgl.View
	pts     []plotgl.Point
	plotted string

	scr      screen
	showHist bool
	histSel  int
	recall   int

	input  []rune
	gexpr  []rune
	result string
	msg    string

	ready bool
	dirty bool
}

// New creates the UI task. Rendering starts on the first Step once the
// display and keyboard are available.
func New(disp hal.Display, in hal.Input, tm hal.Time, log hal.Logger, sess *eval.Session, hist *history.Log) *App {
	return &App{
		disp:   disp,
		in:     in,
		tm:     tm,
		log:    log,
		sess:   sess,
		hist:   hist,
		plot:   plotgl.NewRenderer(),
		view:   plotgl.DefaultView(),
		gexpr:  []rune("sin(x)"),
		recall: -1,
	}
}

// Step runs one UI frame: drain pending key events, then redraw if
// anything changed. It is driven once per host tick.
func (a *App) Step() error {
	if !a.ready {
		if !a.init() {
			return nil
		}
	}

	a.drainTicks()
	for {
		select {
		case ev := <-a.events:
			a.handleEvent(ev)
		default:
			if a.dirty {
				a.dirty = false
				a.renderUI()
			}
			return nil
		}
	}
}

func (a *App) init() bool {
	if a.disp != nil {
		a.fb = a.disp.Framebuffer()
	}
	if a.in != nil {
		if kbd := a.in.Keyboard(); kbd != nil {
			a.events = kbd.Events()
		}
	}
	if a.tm != nil {
		a.ticks = a.tm.Ticks()
	}
	if a.fb == nil || a.events == nil {
		return false
	}

	font, fw, fh, fo, ok := initFont()
	if !ok {
		return false
	}
	a.font = font
	a.fontWidth = fw
	a.fontHeight = fh
	a.fontOffset = fo
	a.cols = a.fb.Width() / int(fw)

	a.d = newFBDisplay(a.fb)
	a.ready = true
	a.dirty = true
	return true
}

// drainTicks advances the UI clock from the base tick stream and marks the
// frame dirty when the cursor blink phase flips.
func (a *App) drainTicks() {
	if a.ticks == nil {
		return
	}
	for {
		select {
		case n := <-a.ticks:
			a.now = n
		default:
			if phase := a.now / cursorBlinkTicks % 2; phase != a.blink {
				a.blink = phase
				a.dirty = true
			}
			return
		}
	}
}

// cursor is the entry-line caret; it blinks on the tick clock.
func (a *App) cursor() string {
	if a.blink%2 == 1 {
		return " "
	}
	return "_"
}

func (a *App) handleEvent(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	if ev.Rune != 0 {
		a.handleRune(ev.Rune)
		return
	}

	switch ev.Code {
	case hal.KeyF1:
		mode := a.sess.ToggleMode()
		a.msg = "angle mode: " + mode.String()
		if a.scr == screenGraph && a.plotted != "" {
			a.samplePlot(a.plotted, false)
		}
	case hal.KeyF2:
		if a.scr == screenScientific {
			a.scr = screenGraph
		} else {
			a.scr = screenScientific
		}
		a.msg = ""
	case hal.KeyF3:
		a.showHist = !a.showHist
		a.histSel = a.hist.Len() - 1
	case hal.KeyEscape:
		if a.showHist {
			a.showHist = false
		} else {
			a.setEntry(nil)
			a.msg = ""
		}
	case hal.KeyEnter:
		a.onEnter()
	case hal.KeyBackspace:
		e := a.entry()
		if len(*e) > 0 {
			*e = (*e)[:len(*e)-1]
		}
	case hal.KeyDelete:
		a.setEntry(nil)
	case hal.KeyTab:
		a.insert("ANS")
	case hal.KeyUp:
		a.onUp()
	case hal.KeyDown:
		a.onDown()
	case hal.KeyLeft:
		if a.scr == screenGraph && a.plotted != "" {
			a.view.Pan(-0.1, 0)
			a.samplePlot(a.plotted, false)
		}
	case hal.KeyRight:
		if a.scr == screenGraph && a.plotted != "" {
			a.view.Pan(0.1, 0)
			a.samplePlot(a.plotted, false)
		}
	case hal.KeyHome:
		if a.scr == screenGraph {
			a.view = plotgl.DefaultView()
			if a.plotted != "" {
				a.samplePlot(a.plotted, false)
			}
		}
	case hal.KeyEnd:
		if a.scr == screenGraph && len(a.pts) > 0 {
			a.view.FitY(a.pts)
			a.samplePlot(a.plotted, false)
		}
	default:
		return
	}
	a.dirty = true
}

func (a *App) handleRune(r rune) {
	if r < ' ' && r != 0 {
		return
	}
	if a.showHist {
		a.showHist = false
	}
	e := a.entry()
	*e = append(*e, r)
	a.msg = ""
	a.recall = -1
	a.dirty = true
}

// entry returns the input line the current screen edits.
func (a *App) entry() *[]rune {
	if a.scr == screenGraph {
		return &a.gexpr
	}
	return &a.input
}

func (a *App) setEntry(rs []rune) {
	e := a.entry()
	*e = rs
	a.recall = -1
}

func (a *App) insert(s string) {
	e := a.entry()
	*e = append(*e, []rune(s)...)
}

func (a *App) onEnter() {
	if a.showHist {
		a.showHist = false
		if a.histSel >= 0 && a.histSel < a.hist.Len() {
			a.setEntry([]rune(a.hist.At(a.histSel).Expr))
		}
		return
	}
	if a.scr == screenGraph {
		a.samplePlot(strings.TrimSpace(string(a.gexpr)), true)
		return
	}
	a.evaluate()
}

func (a *App) onUp() {
	switch {
	case a.showHist:
		if a.histSel > 0 {
			a.histSel--
		}
	case a.scr == screenGraph:
		if a.plotted != "" {
			a.view.Zoom(0.8)
			a.samplePlot(a.plotted, false)
		}
	default:
		// Walk backwards through history into the entry line.
		if a.recall+1 < a.hist.Len() {
			a.recall++
			a.input = []rune(a.hist.At(a.hist.Len() - 1 - a.recall).Expr)
		}
	}
}

func (a *App) onDown() {
	switch {
	case a.showHist:
		if a.histSel < a.hist.Len()-1 {
			a.histSel++
		}
	case a.scr == screenGraph:
		if a.plotted != "" {
			a.view.Zoom(1.25)
			a.samplePlot(a.plotted, false)
		}
	default:
		if a.recall > 0 {
			a.recall--
			a.input = []rune(a.hist.At(a.hist.Len() - 1 - a.recall).Expr)
		} else if a.recall == 0 {
			a.recall = -1
			a.input = nil
		}
	}
}

func (a *App) evaluate() {
	expr := strings.TrimSpace(string(a.input))
	v, err := a.sess.Evaluate(expr)
	if err != nil {
		a.msg = err.Error()
		a.logf("eval: %q: %v", expr, err)
		return
	}
	a.result = formatResult(v)
	a.msg = ""
	a.recall = -1
	a.input = nil
	a.hist.Append(history.Entry{Expr: expr, Result: a.result})
	a.logf("eval: %q = %s", expr, a.result)
}

// samplePlot evaluates the graph expression across the current view.
// fit refits the y range to the new samples.
func (a *App) samplePlot(expr string, fit bool) {
	if expr == "" {
		a.msg = "enter an expression in x"
		return
	}
	count := a.fb.Width()
	if count < 2 {
		count = 2
	}
	sr, err := a.sess.Sample(expr, a.view.XMin, a.view.XMax, count)
	if err != nil {
		a.msg = err.Error()
		a.logf("plot: %q: %v", expr, err)
		return
	}

	pts := make([]plotgl.Point, 0, sr.Count())
	defined := 0
	for {
		p, ok := sr.Next()
		if !ok {
			break
		}
		if p.Defined {
			defined++
		}
		pts = append(pts, plotgl.Point{X: p.X, Y: p.Y, Defined: p.Defined})
	}
	if defined == 0 {
		a.msg = "no defined points in range"
		a.pts = nil
		a.plotted = expr
		return
	}

	a.pts = pts
	a.plotted = expr
	if fit {
		a.view.FitY(a.pts)
	}
	a.msg = ""
}

func (a *App) logf(format string, args ...any) {
	if a.log == nil {
		return
	}
	a.log.WriteLineString(fmt.Sprintf(format, args...))
}

func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', 12, 64)
}
