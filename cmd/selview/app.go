package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/textselect/layout"
	"github.com/dshills/textselect/paragraph"
	"github.com/dshills/textselect/region"
	"github.com/dshills/textselect/registrar"
	"github.com/dshills/textselect/selectable"
)

// sampleDoc is the demo document, one entry per paragraph.
var sampleDoc = []string{
	"selview demonstrates coordinated text selection across independent units. " +
		"Drag with the mouse to select, double-click for a word, triple-click for a whole paragraph.",
	"Each paragraph below registers itself as a separate selectable unit, yet a single drag " +
		"sweeps through all of them and copies out one merged text.",
	"Grab the diamond handles at either end of a selection and drag them past each other; " +
		"the selection follows without ever turning inside out.",
	"Keyboard works too: Shift+arrows extend by character or line, Ctrl+Shift+arrows by word, " +
		"Ctrl+A selects everything, Ctrl+C copies, Esc clears.",
}

// docUnit pairs a paragraph with its registration handle.
type docUnit struct {
	para   *paragraph.Paragraph
	handle registrar.Handle
}

// App owns the terminal, the selection region, and the event loop.
type App struct {
	cfg    tcellConfig
	screen tcell.Screen
	sel    *region.Region
	units  []docUnit
	clicks *clickTracker

	mouseDown  bool
	handleDrag bool
	dragClicks int

	status  string
	quit    bool
	redraw  bool
	baseSty tcell.Style
	selSty  tcell.Style
	hdlSty  tcell.Style
}

// tcellConfig is Config resolved into render-ready values.
type tcellConfig struct {
	Config
	highlight colorful.Color
	handle    colorful.Color
}

// NewApp builds the application from a loaded config.
func NewApp(cfg Config) (*App, error) {
	highlight, err := colorful.Hex(cfg.Highlight)
	if err != nil {
		return nil, fmt.Errorf("highlight color %q: %w", cfg.Highlight, err)
	}
	handle, err := colorful.Hex(cfg.HandleColor)
	if err != nil {
		return nil, fmt.Errorf("handle color %q: %w", cfg.HandleColor, err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:    tcellConfig{Config: cfg, highlight: highlight, handle: handle},
		screen: screen,
		clicks: newClickTracker(time.Duration(cfg.DoubleClickMs)*time.Millisecond, float64(cfg.ClickSlop)),
		status: "drag to select  |  q quits",
	}
	a.baseSty = tcell.StyleDefault
	a.selSty = styleOn(highlight)
	a.hdlSty = tcell.StyleDefault.Foreground(toTcell(handle)).Bold(true)

	a.sel = region.New(
		region.WithClipboard(screenClipboard{screen: screen}),
		region.WithHooks(region.Hooks{
			SelectionFeedback: func() { screen.Beep() },
		}),
	)
	a.buildDocument()
	return a, nil
}

// styleOn derives a readable style over a highlight background.
func styleOn(bg colorful.Color) tcell.Style {
	_, _, l := bg.Hsl()
	fg := tcell.ColorWhite
	if l > 0.55 {
		fg = tcell.ColorBlack
	}
	return tcell.StyleDefault.Background(toTcell(bg)).Foreground(fg)
}

// toTcell converts a colorful color to a tcell RGB color.
func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// buildDocument lays the sample paragraphs out as stacked units and
// registers them. Any previous units are unregistered first.
func (a *App) buildDocument() {
	for _, u := range a.units {
		a.sel.Unregister(u.handle)
	}
	a.units = a.units[:0]

	const marginX, marginY = 2, 1
	y := float64(marginY)
	for _, text := range sampleDoc {
		m := layout.NewMonospace(text, layout.WithColumns(a.cfg.Columns))
		p := paragraph.New(text, m)
		p.SetBounds(selectable.NewRect(marginX, y, float64(a.cfg.Columns), float64(m.LineCount())))
		h := a.sel.Register(p)
		a.units = append(a.units, docUnit{para: p, handle: h})
		y += float64(m.LineCount()) + 1
	}
}

// Run initializes the terminal and processes events until quit.
func (a *App) Run() error {
	if err := a.screen.Init(); err != nil {
		return err
	}
	a.screen.EnableMouse()

	a.draw()
	for !a.quit {
		ev := a.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch e := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
			a.redraw = true
		case *tcell.EventMouse:
			a.handleMouse(e)
		case *tcell.EventKey:
			a.handleKey(e)
		}
		if a.redraw {
			a.redraw = false
			a.draw()
		}
	}
	return nil
}

// Shutdown restores the terminal.
func (a *App) Shutdown() {
	a.screen.Fini()
}

// cellPoint maps a screen cell to the center of that cell in region
// coordinates.
func cellPoint(x, y int) selectable.Point {
	return selectable.Pt(float64(x)+0.5, float64(y)+0.5)
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pt := cellPoint(x, y)
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !a.mouseDown:
		a.mouseDown = true
		count := a.clicks.recordClick(pt, ev.When())
		a.dragClicks = count
		switch count {
		case 2:
			a.sel.SelectWordAt(pt)
		case 3:
			a.sel.SelectParagraphAt(pt)
		default:
			if edge, ok := a.handleAt(x, y); ok {
				if err := a.sel.BeginHandleDrag(edge); err == nil {
					a.handleDrag = true
					break
				}
			}
			a.sel.BeginPointerSelection(pt)
		}
	case pressed && a.mouseDown:
		switch {
		case a.handleDrag:
			a.sel.UpdateHandleDrag(pt)
		case a.dragClicks >= 2:
			a.sel.ExtendWordSelection(pt)
		default:
			a.sel.ExtendPointerSelection(pt)
		}
	case !pressed && a.mouseDown:
		a.mouseDown = false
		if a.handleDrag {
			a.handleDrag = false
			a.sel.EndHandleDrag()
		} else {
			a.sel.EndInteraction()
		}
	default:
		return
	}
	a.redraw = true
}

func (a *App) handleKey(ev *tcell.EventKey) {
	shift := ev.Modifiers()&tcell.ModShift != 0
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0

	switch {
	case ev.Key() == tcell.KeyEscape:
		if a.sel.Interaction() != region.InteractionNone {
			a.sel.CancelInteraction()
			a.status = "interaction cancelled"
		} else {
			a.sel.Clear()
			a.status = "selection cleared"
		}
	case ev.Key() == tcell.KeyCtrlA:
		a.sel.SelectAll()
		a.status = "all selected"
	case ev.Key() == tcell.KeyCtrlC:
		a.copySelection()
	case ev.Key() == tcell.KeyRight && shift:
		a.extendHorizontal(true, ctrl)
	case ev.Key() == tcell.KeyLeft && shift:
		a.extendHorizontal(false, ctrl)
	case ev.Key() == tcell.KeyDown && shift:
		a.sel.ExtendLine(selectable.NextLine)
	case ev.Key() == tcell.KeyUp && shift:
		a.sel.ExtendLine(selectable.PreviousLine)
	case ev.Rune() == 'q':
		a.quit = true
		return
	default:
		return
	}
	a.redraw = true
}

func (a *App) extendHorizontal(forward, word bool) {
	g := selectable.GranularityCharacter
	if word {
		g = selectable.GranularityWord
	}
	a.sel.ExtendByGranularity(g, forward)
}

func (a *App) copySelection() {
	switch err := a.sel.Copy(); err {
	case nil:
		c, _ := a.sel.Content()
		a.status = fmt.Sprintf("copied %d bytes", len(c.Text))
	case region.ErrNoSelection:
		a.status = "nothing selected"
	default:
		a.status = fmt.Sprintf("copy failed: %v", err)
	}
}

// handleAt returns the selection edge whose handle occupies the cell.
func (a *App) handleAt(x, y int) (selectable.Edge, bool) {
	g, ok := a.sel.Geometry()
	if !ok || !g.HasSelection() {
		return 0, false
	}
	sx, sy := handleCell(g.Start, true)
	ex, ey := handleCell(g.End, false)
	switch {
	case x == sx && y == sy:
		return selectable.EdgeStart, true
	case x == ex && y == ey:
		return selectable.EdgeEnd, true
	}
	return 0, false
}

// handleCell returns the screen cell a handle is drawn in: one cell
// outside the selection on its own row.
func handleCell(ep selectable.EdgePoint, start bool) (int, int) {
	x := int(ep.Position.X)
	if start {
		x--
	}
	return x, int(ep.Position.Y - ep.LineHeight/2)
}

// draw renders the document, the highlight, the handles, and the
// status bar.
func (a *App) draw() {
	a.screen.Clear()

	for _, u := range a.units {
		a.drawParagraph(u.para)
	}

	if g, ok := a.sel.Geometry(); ok && g.HasSelection() {
		sx, sy := handleCell(g.Start, true)
		ex, ey := handleCell(g.End, false)
		a.screen.SetContent(sx, sy, '◆', nil, a.hdlSty)
		a.screen.SetContent(ex, ey, '◆', nil, a.hdlSty)
	}

	_, h := a.screen.Size()
	a.drawStatus(h - 1)
	a.screen.Show()
}

// drawParagraph renders one unit, wrapping exactly as its layout does
// and highlighting the selected span.
func (a *App) drawParagraph(p *paragraph.Paragraph) {
	bounds := p.Bounds()
	sel, hasSel := p.Selection()
	lo, hi := 0, 0
	if hasSel {
		lo, hi = sel.Start(), sel.End()
	}

	x, y := int(bounds.Min.X), int(bounds.Min.Y)
	col := 0
	pos := 0
	state := -1
	rest := p.Text()
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		end := pos + len(cluster)
		if cluster == "\n" {
			col = 0
			y++
			pos = end
			continue
		}
		w := runewidth.StringWidth(cluster)
		if w < 1 {
			w = 1
		}
		if a.cfg.Columns > 0 && col > 0 && col+w > a.cfg.Columns {
			col = 0
			y++
		}
		style := a.baseSty
		if hasSel && pos >= lo && pos < hi {
			style = a.selSty
		}
		r := []rune(cluster)
		a.screen.SetContent(x+col, y, r[0], r[1:], style)
		col += w
		pos = end
	}
}

// drawStatus renders the bottom status bar.
func (a *App) drawStatus(row int) {
	line := a.status
	if c, ok := a.sel.Content(); ok {
		preview := strings.ReplaceAll(c.Text, "\n", "␤")
		if runewidth.StringWidth(preview) > 48 {
			preview = runewidth.Truncate(preview, 48, "…")
		}
		line = fmt.Sprintf("%s  |  %q", a.status, preview)
	}
	col := 0
	for _, r := range line {
		a.screen.SetContent(col, row, r, nil, a.baseSty.Reverse(true))
		col += runewidth.RuneWidth(r)
	}
}

// screenClipboard copies through the terminal via OSC 52.
type screenClipboard struct {
	screen tcell.Screen
}

func (c screenClipboard) WriteText(text string) error {
	c.screen.SetClipboard([]byte(text))
	return nil
}
