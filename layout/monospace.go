package layout

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/bidi"

	"github.com/dshills/textselect/boundary"
	"github.com/dshills/textselect/selectable"
)

// Monospace lays text out on a fixed cell grid: every grapheme cluster
// occupies an integral number of cells, lines wrap at a column limit,
// and "\n" forces a line break. It implements Layout for terminal-style
// rendering and for exercising the selection core in tests.
//
// Right-to-left paragraphs are mirrored within each line: the first
// logical cell is drawn at the line's right edge.
type Monospace struct {
	text  string
	cols  int
	cellW float64
	cellH float64
	dir   selectable.TextDirection
	lines []gridLine
}

// gridLine is one laid-out visual line.
type gridLine struct {
	start int // byte offset of first cell, inclusive
	end   int // byte offset past the last cell, excluding a trailing \n
	width int // total width in cells
	cells []gridCell
}

// gridCell is one laid-out grapheme cluster.
type gridCell struct {
	start int // byte offset, inclusive
	end   int // byte offset, exclusive
	x     int // logical cell column within the line
	w     int // width in cells
}

// MonospaceOption configures a Monospace layout.
type MonospaceOption func(*Monospace)

// WithColumns sets the wrap width in cells. Zero or negative disables
// wrapping; lines then break only at "\n".
func WithColumns(cols int) MonospaceOption {
	return func(m *Monospace) { m.cols = cols }
}

// WithCellSize sets the size of one cell in layout units.
func WithCellSize(w, h float64) MonospaceOption {
	return func(m *Monospace) { m.cellW, m.cellH = w, h }
}

// WithDirection overrides the detected base writing direction.
func WithDirection(dir selectable.TextDirection) MonospaceOption {
	return func(m *Monospace) { m.dir = dir }
}

// NewMonospace lays out text and returns a ready layout. The base
// writing direction is detected from the text unless overridden.
func NewMonospace(text string, opts ...MonospaceOption) *Monospace {
	m := &Monospace{
		text:  text,
		cellW: 1,
		cellH: 1,
		dir:   detectDirection(text),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.layoutLines()
	return m
}

// detectDirection returns the base direction of the first paragraph.
func detectDirection(text string) selectable.TextDirection {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil || text == "" {
		return selectable.LeftToRight
	}
	if p.IsLeftToRight() {
		return selectable.LeftToRight
	}
	return selectable.RightToLeft
}

// layoutLines splits the text into visual lines of grapheme cells.
func (m *Monospace) layoutLines() {
	m.lines = nil
	line := gridLine{}
	flush := func(nextStart int) {
		line.end = line.start
		if n := len(line.cells); n > 0 {
			line.end = line.cells[n-1].end
		}
		m.lines = append(m.lines, line)
		line = gridLine{start: nextStart}
	}

	pos := 0
	state := -1
	rest := m.text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		end := pos + len(cluster)
		if cluster == "\n" || cluster == "\r\n" {
			flush(end)
			pos = end
			continue
		}
		w := runewidth.StringWidth(cluster)
		if w < 1 {
			w = 1
		}
		if m.cols > 0 && line.width > 0 && line.width+w > m.cols {
			flush(pos)
		}
		line.cells = append(line.cells, gridCell{start: pos, end: end, x: line.width, w: w})
		line.width += w
		pos = end
	}
	flush(pos)
}

// Ready always reports true; a Monospace is laid out on construction.
// Wrap it in Deferred to model a pending layout pass.
func (m *Monospace) Ready() bool { return true }

// Length returns the text length in bytes.
func (m *Monospace) Length() int { return len(m.text) }

// Direction returns the base writing direction.
func (m *Monospace) Direction() selectable.TextDirection { return m.dir }

// Text returns the laid-out text.
func (m *Monospace) Text() string { return m.text }

// LineCount returns the number of visual lines.
func (m *Monospace) LineCount() int { return len(m.lines) }

// lineIndexForY returns the line whose vertical band contains y,
// clamped to the first or last line.
func (m *Monospace) lineIndexForY(y float64) int {
	idx := int(y / m.cellH)
	if idx < 0 {
		return 0
	}
	if idx >= len(m.lines) {
		return len(m.lines) - 1
	}
	return idx
}

// lineIndexForOffset returns the line containing offset. An offset on a
// line break belongs to the line it terminates.
func (m *Monospace) lineIndexForOffset(offset int) int {
	for i, ln := range m.lines {
		if offset <= ln.end {
			return i
		}
	}
	return len(m.lines) - 1
}

// visualX returns the draw column of a logical cell column on a line,
// honoring the mirror for right-to-left text.
func (m *Monospace) visualX(ln gridLine, logicalX, w int) int {
	if m.dir == selectable.RightToLeft {
		return ln.width - logicalX - w
	}
	return logicalX
}

// OffsetForPoint returns the valid offset nearest to p.
func (m *Monospace) OffsetForPoint(p selectable.Point) int {
	ln := m.lines[m.lineIndexForY(p.Y)]
	if len(ln.cells) == 0 {
		return ln.start
	}
	col := p.X / m.cellW
	for _, c := range ln.cells {
		vx := float64(m.visualX(ln, c.x, c.w))
		if col < vx {
			continue
		}
		if col >= vx+float64(c.w) {
			continue
		}
		// Within the cell: snap to the nearer side.
		if col-vx >= float64(c.w)/2 {
			if m.dir == selectable.RightToLeft {
				return c.start
			}
			return c.end
		}
		if m.dir == selectable.RightToLeft {
			return c.end
		}
		return c.start
	}
	// Outside every cell: clamp to the line edge on that side.
	first, last := ln.cells[0], ln.cells[len(ln.cells)-1]
	beforeLine := col < float64(m.visualX(ln, first.x, first.w))
	if m.dir == selectable.RightToLeft {
		beforeLine = col >= float64(m.visualX(ln, last.x, last.w)+last.w)
	}
	if beforeLine {
		return ln.start
	}
	return ln.end
}

// BoundaryAt returns the enclosing boundary of the given granularity.
func (m *Monospace) BoundaryAt(offset int, g selectable.Granularity) selectable.Range {
	switch g {
	case selectable.GranularityCharacter:
		return boundary.Grapheme(m.text, offset)
	case selectable.GranularityWord:
		return boundary.Word(m.text, offset)
	case selectable.GranularityLine:
		ln := m.lines[m.lineIndexForOffset(offset)]
		return selectable.NewRange(ln.start, ln.end)
	case selectable.GranularityDocument:
		return selectable.NewRange(0, len(m.text))
	default:
		return boundary.Grapheme(m.text, offset)
	}
}

// LineBoundsAt returns the bounds of the line containing offset.
func (m *Monospace) LineBoundsAt(offset int) selectable.Rect {
	idx := m.lineIndexForOffset(offset)
	ln := m.lines[idx]
	return selectable.NewRect(0, float64(idx)*m.cellH, float64(ln.width)*m.cellW, m.cellH)
}

// RectsForRange returns one highlight box per visual line touched by
// the range.
func (m *Monospace) RectsForRange(r selectable.Range) []selectable.Rect {
	norm := r.Normalize().Clamp(len(m.text))
	if norm.IsCollapsed() {
		return nil
	}
	var rects []selectable.Rect
	for idx, ln := range m.lines {
		lo, hi := norm.Start(), norm.End()
		if hi <= ln.start || lo > ln.end || len(ln.cells) == 0 {
			continue
		}
		minX, maxX := -1, -1
		for _, c := range ln.cells {
			if c.end <= lo || c.start >= hi {
				continue
			}
			vx := m.visualX(ln, c.x, c.w)
			if minX < 0 || vx < minX {
				minX = vx
			}
			if vx+c.w > maxX {
				maxX = vx + c.w
			}
		}
		if minX < 0 {
			continue
		}
		rects = append(rects, selectable.NewRect(
			float64(minX)*m.cellW,
			float64(idx)*m.cellH,
			float64(maxX-minX)*m.cellW,
			m.cellH,
		))
	}
	return rects
}

// VisualPositionFor returns the top of the caret at offset.
func (m *Monospace) VisualPositionFor(offset int) selectable.Point {
	idx := m.lineIndexForOffset(offset)
	ln := m.lines[idx]
	y := float64(idx) * m.cellH
	logicalX := ln.width
	for _, c := range ln.cells {
		if offset <= c.start {
			logicalX = c.x
			break
		}
		if offset < c.end {
			logicalX = c.x
			break
		}
	}
	x := logicalX
	if m.dir == selectable.RightToLeft {
		x = ln.width - logicalX
	}
	return selectable.Pt(float64(x)*m.cellW, y)
}
