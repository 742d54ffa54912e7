package classify

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// DefaultRange is the half-width of a new number line.
const DefaultRange = 10

var (
	ErrOutOfRange   = errors.New("value outside the number line")
	ErrInvalidPoint = errors.New("invalid point")
	ErrSamePoint    = errors.New("select two different points")
)

// Point is a classified value placed on the line.
type Point struct {
	Result
}

// Line is a number line from -Range to Range holding classified points in
// insertion order. The zero value is not usable; call NewLine.
type Line struct {
	Range  int
	Points []Point
}

// NewLine returns an empty line with the given half-width; r <= 0 selects
// DefaultRange.
func NewLine(r int) *Line {
	if r <= 0 {
		r = DefaultRange
	}
	return &Line{Range: r}
}

// Add classifies input and places it on the line.
func (l *Line) Add(input string) (Point, error) {
	res, err := Classify(input)
	if err != nil {
		return Point{}, err
	}
	if math.Abs(res.Value) > float64(l.Range) {
		return Point{}, fmt.Errorf("%w: %s = %.4f, range is ±%d", ErrOutOfRange, input, res.Value, l.Range)
	}
	p := Point{Result: res}
	l.Points = append(l.Points, p)
	return p, nil
}

// Remove deletes the point at index i.
func (l *Line) Remove(i int) error {
	if i < 0 || i >= len(l.Points) {
		return fmt.Errorf("%w: %d", ErrInvalidPoint, i)
	}
	l.Points = append(l.Points[:i], l.Points[i+1:]...)
	return nil
}

// Clear removes every point.
func (l *Line) Clear() { l.Points = nil }

// Sorted returns the points in ascending order of value.
func (l *Line) Sorted() []Point {
	out := append([]Point(nil), l.Points...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}

// Distance returns |a - b| for the points at indices i and j.
func (l *Line) Distance(i, j int) (float64, error) {
	if i < 0 || i >= len(l.Points) || j < 0 || j >= len(l.Points) {
		return 0, fmt.Errorf("%w: %d, %d", ErrInvalidPoint, i, j)
	}
	if i == j {
		return 0, ErrSamePoint
	}
	return math.Abs(l.Points[i].Value - l.Points[j].Value), nil
}

// Position maps v to a percentage of the drawing width, leaving a 5%
// margin on both ends.
func (l *Line) Position(v float64) float64 {
	return (v+float64(l.Range))/(2*float64(l.Range))*90 + 5
}

// Render draws the line with width columns: a marker row with one symbol
// per point and an axis row with a tick per integer.
func (l *Line) Render(width int) string {
	if width < 2*l.Range+1 {
		width = 2*l.Range + 1
	}
	col := func(v float64) int {
		c := int(math.Round((v + float64(l.Range)) / (2 * float64(l.Range)) * float64(width-1)))
		return max(0, min(width-1, c))
	}

	markers := []rune(strings.Repeat(" ", width))
	for _, p := range l.Points {
		markers[col(p.Value)] = marker(p.Class)
	}
	axis := []rune(strings.Repeat("─", width))
	for t := -l.Range; t <= l.Range; t++ {
		axis[col(float64(t))] = '┼'
	}

	left, right := strconv.Itoa(-l.Range), strconv.Itoa(l.Range)
	labels := left + strings.Repeat(" ", max(1, width-len(left)-len(right))) + right

	return strings.TrimRight(string(markers), " ") + "\n" + string(axis) + "\n" + labels
}

func marker(c Class) rune {
	switch c {
	case Natural:
		return 'N'
	case Integer:
		return 'Z'
	case Rational:
		return 'Q'
	}
	return 'I'
}
