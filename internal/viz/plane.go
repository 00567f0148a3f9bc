package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/roclab/internal/roc"
	"github.com/san-kum/roclab/internal/system"
)

const (
	planeWidth  = 61
	planeHeight = 25
)

// Plane renders a pole/zero model and its ROC onto a character grid.
// Columns map to the real axis, rows to the imaginary axis (inverted).
type Plane struct {
	width, height int
	extent        float64
	grid          [][]rune
}

func NewPlane(width, height int) *Plane {
	if width <= 0 {
		width = planeWidth
	}
	if height <= 0 {
		height = planeHeight
	}
	p := &Plane{width: width, height: height}
	p.grid = make([][]rune, height)
	for i := range p.grid {
		p.grid[i] = make([]rune, width)
		for j := range p.grid[i] {
			p.grid[i][j] = ' '
		}
	}
	return p
}

// Render draws the shaded ROC, boundary curves, axes, and pole/zero markers.
func (p *Plane) Render(m system.Model, out roc.Outcome) string {
	p.extent = viewExtent(m, out)

	p.shadeRegion(out.Region)
	p.drawAxes()
	if m.Domain == system.ZTransform {
		p.drawCircle(1.0, '+', true) // unit circle reference
	}
	for i := len(out.Curves) - 1; i >= 0; i-- {
		p.drawCurve(out.Curves[i])
	}
	p.markPoints(m.Zeros, 'o')
	p.markPoints(m.Poles, 'x')

	var b strings.Builder
	for _, row := range p.grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	b.WriteString(p.legend(m))
	return b.String()
}

// viewExtent picks a symmetric view range covering all poles, zeros, and
// boundary curves with some margin.
func viewExtent(m system.Model, out roc.Outcome) float64 {
	ext := 1.5
	for _, pt := range append(clonePts(m.Poles), m.Zeros...) {
		ext = math.Max(ext, math.Abs(pt.Re))
		ext = math.Max(ext, math.Abs(pt.Im))
	}
	for _, c := range out.Curves {
		ext = math.Max(ext, math.Abs(c.Position))
	}
	return ext + 0.5
}

func clonePts(pts []system.ComplexPoint) []system.ComplexPoint {
	return append([]system.ComplexPoint(nil), pts...)
}

func (p *Plane) set(col, row int, c rune) {
	if col >= 0 && col < p.width && row >= 0 && row < p.height {
		p.grid[row][col] = c
	}
}

func (p *Plane) toCell(re, im float64) (col, row int) {
	col = int(math.Round((re + p.extent) / (2 * p.extent) * float64(p.width-1)))
	row = int(math.Round((p.extent - im) / (2 * p.extent) * float64(p.height-1)))
	return col, row
}

func (p *Plane) toPoint(col, row int) (re, im float64) {
	re = float64(col)/float64(p.width-1)*2*p.extent - p.extent
	im = p.extent - float64(row)/float64(p.height-1)*2*p.extent
	return re, im
}

func (p *Plane) shadeRegion(r roc.Region) {
	for row := 0; row < p.height; row++ {
		for col := 0; col < p.width; col++ {
			re, im := p.toPoint(col, row)
			if regionContains(r, re, im) {
				p.grid[row][col] = shadeRune
			}
		}
	}
}

func regionContains(r roc.Region, re, im float64) bool {
	switch r.Kind {
	case roc.HalfPlaneRight:
		return re > r.Boundary
	case roc.HalfPlaneLeft:
		return re < r.Boundary
	case roc.DiskExterior:
		return math.Hypot(re-r.Center.Re, im-r.Center.Im) > r.Radius
	case roc.DiskInterior:
		return math.Hypot(re-r.Center.Re, im-r.Center.Im) < r.Radius
	default:
		return true
	}
}

func (p *Plane) drawAxes() {
	originCol, originRow := p.toCell(0, 0)
	for col := 0; col < p.width; col++ {
		p.set(col, originRow, '-')
	}
	for row := 0; row < p.height; row++ {
		p.set(originCol, row, '|')
	}
	p.set(originCol, originRow, '+')
}

func (p *Plane) drawCurve(c roc.Curve) {
	if c.Kind == roc.VerticalLine {
		p.drawVertical(c.Position, c.Primary)
		return
	}
	glyph := boundaryRune
	if !c.Primary {
		glyph = dashedRune
	}
	p.drawCircle(c.Position, glyph, !c.Primary)
}

func (p *Plane) drawVertical(re float64, primary bool) {
	col, _ := p.toCell(re, 0)
	for row := 0; row < p.height; row++ {
		if primary {
			p.set(col, row, boundaryRune)
		} else if row%2 == 0 {
			p.set(col, row, dashedRune)
		}
	}
}

func (p *Plane) drawCircle(radius float64, glyph rune, dashed bool) {
	if radius <= 0 {
		return
	}
	steps := 8 * (p.width + p.height)
	for i := 0; i < steps; i++ {
		if dashed && i/4%2 == 1 {
			continue
		}
		angle := 2 * math.Pi * float64(i) / float64(steps)
		col, row := p.toCell(radius*math.Cos(angle), radius*math.Sin(angle))
		p.set(col, row, glyph)
	}
}

func (p *Plane) markPoints(pts []system.ComplexPoint, glyph rune) {
	for _, pt := range pts {
		col, row := p.toCell(pt.Re, pt.Im)
		p.set(col, row, glyph)
	}
}

func (p *Plane) legend(m system.Model) string {
	axis := "Re(s)/Im(s)"
	if m.Domain == system.ZTransform {
		axis = "Re(z)/Im(z), + unit circle"
	}
	return fmt.Sprintf("x pole  o zero  %c ROC  %c boundary  [%s]\n",
		shadeRune, boundaryRune, axis)
}

const (
	shadeRune    = '.'
	boundaryRune = '#'
	dashedRune   = ':'
)
