package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/zyedidia/generic/mapset"
)

// ANSI escapes used to highlight a cell: bright magenta background.
const (
	highlightOn  = "\x1b[105m"
	highlightOff = "\x1b[0m"
)

// StyleFunc picks the rune and tcell style used to draw one cell.
type StyleFunc[T any] func(l Location, v T) (rune, tcell.Style)

// Display renders the bounding box [0, MaxLocation] to w, one line per row.
// Present cells are written with their cellString form, absent cells as a blank,
// and locations in highlights (may be nil) on a magenta background.
// A leading empty line separates consecutive renders. An empty grid renders
// only that line.
func (g *Grid[T]) Display(w io.Writer, highlights *mapset.Set[Location]) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString("\n"); err != nil {
		return err
	}
	_, hi, ok := g.Bounds()
	if !ok {
		return bw.Flush()
	}
	for y := 0; y <= hi.Y; y++ {
		for x := 0; x <= hi.X; x++ {
			l := Location{X: x, Y: y}
			v, present := g.cells[l]
			switch {
			case !present:
				_ = bw.WriteByte(' ')
			case highlights != nil && highlights.Has(l):
				_, _ = bw.WriteString(highlightOn + cellString(v) + highlightOff)
			default:
				_, _ = bw.WriteString(cellString(v))
			}
		}
		_ = bw.WriteByte('\n')
	}
	return bw.Flush()
}

// DisplayLocation is Display with a single highlighted location.
func (g *Grid[T]) DisplayLocation(w io.Writer, l Location) error {
	h := mapset.New[Location]()
	h.Put(l)
	return g.Display(w, &h)
}

// Print writes Display output to stdout, ignoring write errors.
func (g *Grid[T]) Print(highlights *mapset.Set[Location]) {
	_ = g.Display(os.Stdout, highlights)
}

// cellString renders a cell as text. rune and byte cells are characters;
// everything else uses its fmt "%v" form.
func cellString[T any](v T) string {
	switch c := any(v).(type) {
	case rune:
		return string(c)
	case byte:
		return string(rune(c))
	case string:
		return c
	}
	return fmt.Sprint(v)
}

// DefaultStyle draws the first rune of the cell's cellString form in the default style.
func DefaultStyle[T any](_ Location, v T) (rune, tcell.Style) {
	for _, r := range cellString(v) {
		return r, tcell.StyleDefault
	}
	return ' ', tcell.StyleDefault
}

// Draw paints the bounding box onto screen with its top-left corner at (0, 0).
// style may be nil, in which case DefaultStyle is used. Highlighted locations
// get a fuchsia background. Draw does not call screen.Show.
func (g *Grid[T]) Draw(screen tcell.Screen, highlights *mapset.Set[Location], style StyleFunc[T]) {
	if style == nil {
		style = DefaultStyle[T]
	}
	_, hi, ok := g.Bounds()
	if !ok {
		return
	}
	for y := 0; y <= hi.Y; y++ {
		for x := 0; x <= hi.X; x++ {
			l := Location{X: x, Y: y}
			v, present := g.cells[l]
			if !present {
				screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
				continue
			}
			r, st := style(l, v)
			if highlights != nil && highlights.Has(l) {
				st = st.Background(tcell.ColorFuchsia)
			}
			screen.SetContent(x, y, r, nil, st)
		}
	}
}
