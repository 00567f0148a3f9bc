package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/roclab/internal/roc"
	"github.com/san-kum/roclab/internal/system"
)

// RegionToSVG renders a model and its ROC as an SVG image: shaded region,
// solid primary boundary, dashed reference curves, pole/zero markers.
func RegionToSVG(m system.Model, out roc.Outcome, size int) string {
	if size <= 0 {
		size = 480
	}
	ext := svgExtent(m, out)
	scale := float64(size) / (2 * ext)

	toX := func(re float64) float64 { return (re + ext) * scale }
	toY := func(im float64) float64 { return (ext - im) * scale }

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, size, size, size, size))

	writeRegion(&sb, out.Region, size, ext, scale, toX, toY)

	// Axes.
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#333355" stroke-width="1"/>
`, toY(0), size, toY(0)))
	sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="#333355" stroke-width="1"/>
`, toX(0), toX(0), size))

	// Unit circle reference on the z-plane.
	if m.Domain == system.ZTransform {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#555577" stroke-width="1" stroke-dasharray="2,4"/>
`, toX(0), toY(0), scale))
	}

	for _, c := range out.Curves {
		writeCurve(&sb, c, size, scale, toX, toY)
	}

	for _, z := range m.Zeros {
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="none" stroke="#00ccff" stroke-width="1.5"/>
`, toX(z.Re), toY(z.Im)))
	}
	for _, p := range m.Poles {
		x, y := toX(p.Re), toY(p.Im)
		sb.WriteString(fmt.Sprintf(`<path d="M%.1f,%.1f L%.1f,%.1f M%.1f,%.1f L%.1f,%.1f" stroke="#ff5555" stroke-width="1.5"/>
`, x-4, y-4, x+4, y+4, x-4, y+4, x+4, y-4))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func svgExtent(m system.Model, out roc.Outcome) float64 {
	ext := 1.5
	for _, pt := range m.Poles {
		ext = math.Max(ext, math.Max(math.Abs(pt.Re), math.Abs(pt.Im)))
	}
	for _, pt := range m.Zeros {
		ext = math.Max(ext, math.Max(math.Abs(pt.Re), math.Abs(pt.Im)))
	}
	for _, c := range out.Curves {
		ext = math.Max(ext, math.Abs(c.Position))
	}
	return ext + 0.5
}

const regionFill = `fill="#00ff0022"`

func writeRegion(sb *strings.Builder, r roc.Region, size int, ext, scale float64,
	toX, toY func(float64) float64) {
	switch r.Kind {
	case roc.WholePlane:
		fmt.Fprintf(sb, `<rect width="100%%" height="100%%" %s/>
`, regionFill)
	case roc.HalfPlaneRight:
		x := toX(r.Boundary)
		fmt.Fprintf(sb, `<rect x="%.1f" y="0" width="%.1f" height="%d" %s/>
`, x, float64(size)-x, size, regionFill)
	case roc.HalfPlaneLeft:
		fmt.Fprintf(sb, `<rect x="0" y="0" width="%.1f" height="%d" %s/>
`, toX(r.Boundary), size, regionFill)
	case roc.DiskInterior:
		fmt.Fprintf(sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" %s/>
`, toX(r.Center.Re), toY(r.Center.Im), r.Radius*scale, regionFill)
	case roc.DiskExterior:
		// Whole plane with the disk punched out via even-odd fill.
		fmt.Fprintf(sb, `<path fill-rule="evenodd" d="M0,0 H%d V%d H0 Z M%.1f,%.1f m-%.1f,0 a%.1f,%.1f 0 1,0 %.1f,0 a%.1f,%.1f 0 1,0 -%.1f,0 Z" %s/>
`, size, size, toX(r.Center.Re), toY(r.Center.Im),
			r.Radius*scale, r.Radius*scale, r.Radius*scale, 2*r.Radius*scale,
			r.Radius*scale, r.Radius*scale, 2*r.Radius*scale, regionFill)
	}
}

func writeCurve(sb *strings.Builder, c roc.Curve, size int, scale float64,
	toX, toY func(float64) float64) {
	stroke := `stroke="#777799" stroke-width="1" stroke-dasharray="4,4"`
	if c.Primary {
		stroke = `stroke="#00ff00" stroke-width="2"`
	}
	if c.Kind == roc.VerticalLine {
		x := toX(c.Position)
		fmt.Fprintf(sb, `<line x1="%.1f" y1="0" x2="%.1f" y2="%d" fill="none" %s/>
`, x, x, size, stroke)
		return
	}
	fmt.Fprintf(sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" %s/>
`, toX(c.Center.Re), toY(c.Center.Im), c.Position*scale, stroke)
}
