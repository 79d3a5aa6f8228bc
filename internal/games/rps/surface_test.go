package rps

import (
	"unicode/utf8"

	"golang.org/x/image/font"

	"github.com/vovakirdan/badge-arcade/internal/core"
)

type opKind int

const (
	opClear opKind = iota
	opRect
	opRoundedRect
	opText
)

type drawOp struct {
	kind   opKind
	brush  core.Color
	rect   core.Rect
	radius int
	text   string
	x, y   int
}

// recorder is a Surface that records drawing calls. Text is measured as
// charW x charH per rune; with a custom font set it uses customW x customH.
type recorder struct {
	w, h             int
	brush            core.Color
	face             font.Face
	charW, charH     int
	customW, customH int
	ops              []drawOp
}

func newRecorder() *recorder {
	return &recorder{w: core.CanvasWidth, h: core.CanvasHeight, charW: 7, charH: 13, customW: 6, customH: 9}
}

func (r *recorder) Width() int  { return r.w }
func (r *recorder) Height() int { return r.h }

func (r *recorder) SetBrush(c core.Color) { r.brush = c }
func (r *recorder) Brush() core.Color     { return r.brush }

func (r *recorder) SetFont(face font.Face) { r.face = face }
func (r *recorder) HasCustomFont() bool    { return r.face != nil }

func (r *recorder) Clear() {
	r.ops = append(r.ops, drawOp{kind: opClear, brush: r.brush})
}

func (r *recorder) Rect(rc core.Rect) {
	r.ops = append(r.ops, drawOp{kind: opRect, brush: r.brush, rect: rc})
}

func (r *recorder) RoundedRect(rc core.Rect, radius int) {
	r.ops = append(r.ops, drawOp{kind: opRoundedRect, brush: r.brush, rect: rc, radius: radius})
}

func (r *recorder) Text(s string, x, y int) {
	r.ops = append(r.ops, drawOp{kind: opText, brush: r.brush, text: s, x: x, y: y})
}

func (r *recorder) MeasureText(s string) (int, int) {
	n := utf8.RuneCountInString(s)
	if r.face != nil {
		return n * r.customW, r.customH
	}
	return n * r.charW, r.charH
}

// reset forgets the recorded operations of the previous frame.
func (r *recorder) reset() {
	r.ops = r.ops[:0]
}

func (r *recorder) texts() []drawOp {
	var out []drawOp
	for _, op := range r.ops {
		if op.kind == opText {
			out = append(out, op)
		}
	}
	return out
}

func (r *recorder) findText(s string) (drawOp, bool) {
	for _, op := range r.ops {
		if op.kind == opText && op.text == s {
			return op, true
		}
	}
	return drawOp{}, false
}

func (r *recorder) roundedRects() []drawOp {
	var out []drawOp
	for _, op := range r.ops {
		if op.kind == opRoundedRect {
			out = append(out, op)
		}
	}
	return out
}

var _ core.Surface = (*recorder)(nil)
