package ui

import (
	"fmt"
	"image/color"

	"sigma/plotgl"
)

var (
	colorBG       = color.RGBA{R: 0x0f, G: 0x11, B: 0x13, A: 0xff}
	colorPanelBG  = color.RGBA{R: 0x17, G: 0x18, B: 0x1a, A: 0xff}
	colorHeaderBG = color.RGBA{R: 0x17, G: 0x18, B: 0x1a, A: 0xff}
	colorFG       = color.RGBA{R: 0xe6, G: 0xee, B: 0xf3, A: 0xff}
	colorAccent   = color.RGBA{R: 0xcf, G: 0xee, B: 0xff, A: 0xff}
	colorDim      = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}
	colorSelBG    = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	colorSelFG    = color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	colorBorder   = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xff}
	colorErr      = color.RGBA{R: 0xff, G: 0xdd, B: 0x66, A: 0xff}
)

var colorTrace = plotgl.RGB(0x4a, 0xdf, 0x6a)

func (a *App) renderUI() {
	w := int16(a.fb.Width())
	h := int16(a.fb.Height())
	a.d.FillRectangle(0, 0, w, h, colorBG)

	headerH := a.fontHeight + 4
	footerH := a.fontHeight*2 + 3

	a.renderHeader(0, 0, w, headerH)

	mainY := headerH
	mainH := h - headerH - footerH
	switch a.scr {
	case screenGraph:
		a.renderGraph(0, mainY, w, mainH)
	default:
		a.renderScientific(0, mainY, w, mainH)
	}

	a.renderFooter(0, h-footerH, w, footerH)

	if a.showHist {
		a.renderHistoryOverlay(0, headerH, w, h-footerH)
	}

	_ = a.fb.Present()
}

func (a *App) renderHeader(x, y, w, h int16) {
	a.d.FillRectangle(x, y, w, h, colorHeaderBG)

	py := y + a.fontOffset + 2
	px := x + 2
	for _, tab := range []struct {
		name string
		scr  screen
	}{{"Sci", screenScientific}, {"Graph", screenGraph}} {
		boxW := int16(len(tab.name)+2) * a.fontWidth
		bg := colorHeaderBG
		fg := colorDim
		if a.scr == tab.scr {
			bg = colorSelBG
			fg = colorSelFG
		}
		a.d.FillRectangle(px, y+1, boxW, h-2, bg)
		writeText(a.d, a.font, px+a.fontWidth, py, fg, tab.name)
		px += boxW + a.fontWidth
	}

	mode := a.sess.Mode().String()
	writeText(a.d, a.font, px+a.fontWidth, py, colorAccent, mode)

	title := "Sigma"
	tw := int16(len(title)) * a.fontWidth
	if x+w-tw-2 > px {
		writeText(a.d, a.font, x+w-tw-2, py, colorDim, title)
	}
}

func (a *App) renderScientific(x, y, w, h int16) {
	py := y + a.fontHeight

	entry := "> " + string(a.input) + a.cursor()
	writeText(a.d, a.font, x+2, py+a.fontOffset, colorFG, fitTail(entry, a.cols))
	py += a.fontHeight + 2

	if a.result != "" {
		writeText(a.d, a.font, x+2, py+a.fontOffset, colorAccent, fitText("= "+a.result, a.cols))
	}
	py += a.fontHeight + a.fontHeight/2

	rows := int((y + h - py) / a.fontHeight)
	if rows <= 1 {
		return
	}
	writeText(a.d, a.font, x+2, py+a.fontOffset, colorDim, "History")
	py += a.fontHeight

	for _, e := range a.hist.LastN(rows - 1) {
		line := e.Expr
		res := "= " + e.Result
		if len([]rune(line))+len(res)+1 > a.cols {
			line = fitText(line, a.cols-len(res)-2)
		}
		writeText(a.d, a.font, x+2, py+a.fontOffset, colorFG, fitText(line, a.cols))
		rx := x + 2 + int16(a.cols-len(res))*a.fontWidth
		writeText(a.d, a.font, rx, py+a.fontOffset, colorDim, res)
		py += a.fontHeight
	}
}

func (a *App) renderGraph(x, y, w, h int16) {
	entryH := a.fontHeight + 2
	a.d.FillRectangle(x, y, w, entryH, colorPanelBG)
	entry := "y = " + string(a.gexpr) + a.cursor()
	writeText(a.d, a.font, x+2, y+a.fontOffset+1, colorFG, fitTail(entry, a.cols))

	plotY := y + entryH
	plotH := h - entryH
	if plotH <= 4 || w <= 4 {
		return
	}

	target := &plotgl.Viewport{
		T: &plotgl.RGB565Target{
			Buf:    a.fb.Buffer(),
			Stride: a.fb.StrideBytes(),
			W:      a.fb.Width(),
			H:      a.fb.Height(),
		},
		X0:     int(x),
		Y0:     int(plotY),
		Width:  int(w),
		Height: int(plotH),
	}

	a.plot.RenderFrame(target, a.view)
	if len(a.pts) > 0 {
		a.plot.RenderTrace(target, a.view, a.pts, colorTrace)
	}
}

func (a *App) renderFooter(x, y, w, h int16) {
	a.d.FillRectangle(x, y, w, h, colorHeaderBG)

	var line0 string
	if a.scr == screenGraph {
		line0 = fmt.Sprintf("%s  x:[%.4g, %.4g]  y:[%.4g, %.4g]",
			a.sess.Mode(), a.view.XMin, a.view.XMax, a.view.YMin, a.view.YMax)
	} else {
		line0 = fmt.Sprintf("%s  ANS=%s  history:%d",
			a.sess.Mode(), formatResult(a.sess.LastAnswer()), a.hist.Len())
	}
	writeText(a.d, a.font, x+2, y+a.fontOffset, colorFG, fitText(line0, a.cols))

	line1 := a.msg
	fg := colorErr
	if line1 == "" {
		fg = colorDim
		if a.showHist {
			line1 = "history: ^v select  Enter recall  Esc close"
		} else if a.scr == screenGraph {
			line1 = "Enter plot  <> pan  ^v zoom  Home reset  End fit"
		} else {
			line1 = "F1 deg/rad  F2 graph  F3 history  Tab ANS"
		}
	}
	writeText(a.d, a.font, x+2, y+a.fontHeight+a.fontOffset+1, fg, fitText(line1, a.cols))
}

func (a *App) renderHistoryOverlay(x, y, w, h int16) {
	boxW := w - 8*a.fontWidth
	if boxW < 16*a.fontWidth {
		boxW = w - 2
	}
	rows := int16(10)
	boxH := (rows+1)*a.fontHeight + 6
	if boxH > h-4 {
		boxH = h - 4
		rows = (boxH-6)/a.fontHeight - 1
	}
	bx := x + (w-boxW)/2
	by := y + (h-boxH)/2

	a.drawBox(bx, by, boxW, boxH, "History")

	innerY := by + a.fontHeight + 3
	innerCols := int(boxW/a.fontWidth) - 2

	n := a.hist.Len()
	if n == 0 {
		writeText(a.d, a.font, bx+a.fontWidth, innerY+a.fontOffset, colorDim, "(empty)")
		return
	}

	// Keep the selection on screen: show a window of entries around it.
	first := n - int(rows)
	if first < 0 {
		first = 0
	}
	if a.histSel < first {
		first = a.histSel
	}
	for i := int16(0); i < rows && first+int(i) < n; i++ {
		idx := first + int(i)
		e := a.hist.At(idx)
		fg := colorFG
		if idx == a.histSel {
			a.d.FillRectangle(bx+1, innerY+i*a.fontHeight-1, boxW-2, a.fontHeight, colorSelBG)
			fg = colorSelFG
		}
		line := fmt.Sprintf("%s = %s", e.Expr, e.Result)
		writeText(a.d, a.font, bx+a.fontWidth, innerY+i*a.fontHeight+a.fontOffset, fg, fitText(line, innerCols))
	}
}

func (a *App) drawBox(x, y, w, h int16, title string) {
	a.d.FillRectangle(x, y, w, h, colorPanelBG)
	a.d.FillRectangle(x, y, w, 1, colorBorder)
	a.d.FillRectangle(x, y+h-1, w, 1, colorBorder)
	a.d.FillRectangle(x, y, 1, h, colorBorder)
	a.d.FillRectangle(x+w-1, y, 1, h, colorBorder)
	writeText(a.d, a.font, x+a.fontWidth, y+a.fontOffset+1, colorAccent, fitText(title, int(w/a.fontWidth)-2))
}

// fitTail keeps the end of an entry line visible while it is being typed.
// Truncation counts runes, not bytes, so π never splits.
func fitTail(s string, max int) string {
	if max <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[len(r)-max:])
}
