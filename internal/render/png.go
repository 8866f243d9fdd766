package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/mcherring7/topology-weaver/internal/canvas"
)

// quadSteps is the flattening resolution for curve rasterization. Segments
// this short read as smooth after supersampling.
const quadSteps = 100

// PNGExporter rasterizes a scene with the same look as the SVG exporter.
// Rendering happens at Supersample times the scene size and is downsampled
// with Catmull-Rom so curves and circles come out smooth.
type PNGExporter struct {
	Background  color.RGBA
	Supersample int
}

// NewPNGExporter creates a new PNG exporter with defaults matching the SVG look
func NewPNGExporter() *PNGExporter {
	return &PNGExporter{
		Background:  color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff},
		Supersample: 2,
	}
}

// Format returns the exporter format identifier
func (e *PNGExporter) Format() string {
	return "png"
}

// Export rasterizes the scene and encodes it as PNG.
func (e *PNGExporter) Export(scene *canvas.Scene, w io.Writer) error {
	if !scene.Ready {
		return ErrSceneNotReady
	}

	ss := e.Supersample
	if ss < 1 {
		ss = 1
	}

	ctx, err := newRaster(int(scene.Width)*ss, int(scene.Height)*ss, float64(ss), e.Background)
	if err != nil {
		return err
	}
	ctx.drawScene(scene)

	final := image.NewRGBA(image.Rect(0, 0, int(scene.Width), int(scene.Height)))
	draw.CatmullRom.Scale(final, final.Bounds(), ctx.img, ctx.img.Bounds(), draw.Over, nil)

	if err := png.Encode(w, final); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// raster holds the supersampled image and everything needed to paint on it.
type raster struct {
	img        *image.RGBA
	scale      float64
	background color.RGBA
	labelFace  font.Face
	smallFace  font.Face
}

func newRaster(w, h int, scale float64, bg color.RGBA) (*raster, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}
	labelFace, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size: svgNodeLabelSize * scale, DPI: 72, Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build label font face: %w", err)
	}
	smallFace, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size: svgBandwidthSize * scale, DPI: 72, Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build small font face: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, bg)
		}
	}

	return &raster{
		img:        img,
		scale:      scale,
		background: bg,
		labelFace:  labelFace,
		smallFace:  smallFace,
	}, nil
}

// drawScene paints in the same order the SVG exporter writes elements:
// links, hubs, nodes, bandwidth labels.
func (c *raster) drawScene(scene *canvas.Scene) {
	s := c.scale
	labelColor := parseHexColor(svgLabelColor)

	for _, link := range scene.Links {
		col := c.blend(parseHexColor(link.Color), link.Opacity)
		c.strokeQuad(link.Curve, link.Width*s, link.Dashed, col)
	}

	for _, hub := range scene.Hubs {
		col := parseHexColor(hub.Color)
		half := hub.Size / 2 * s
		x := hub.Center.X*s - half
		y := hub.Center.Y*s - half
		c.fillRect(x, y, half*2, half*2, c.blend(col, svgHubFillOpacity))
		c.strokeRect(x, y, half*2, half*2, 1.5*s, col)
		c.text(hub.Center.X*s, hub.Center.Y*s, hub.Label, c.labelFace, labelColor, true)
	}

	for _, node := range scene.Nodes {
		cx := node.Center.X * s
		cy := node.Center.Y * s
		r := node.Radius * s
		if node.Selected {
			c.strokeCircle(cx, cy, r+5*s, 2*s, labelColor)
		}
		c.fillDisc(cx, cy, r, parseHexColor(node.Fill))
		for _, dot := range node.Dots {
			c.fillDisc(dot.Center.X*s, dot.Center.Y*s, dot.Radius*s, parseHexColor(dot.Color))
		}
		c.text(cx, cy+r+16*s, node.Name, c.labelFace, labelColor, false)
	}

	for _, link := range scene.Links {
		if link.Bandwidth == "" {
			continue
		}
		at := link.Curve.PointAt(0.5)
		col := c.blend(labelColor, link.Opacity)
		c.text(at.X*s, (at.Y-4)*s, link.Bandwidth, c.smallFace, col, false)
	}
}

// strokeQuad flattens the curve into short segments and strokes them. Dashed
// curves use the same 6 on / 4 off pattern as the SVG output, measured along
// the flattened arc.
func (c *raster) strokeQuad(curve canvas.QuadCurve, thickness float64, dashed bool, col color.RGBA) {
	dashOn := 6.0 * c.scale
	dashPeriod := 10.0 * c.scale

	prev := curve.PointAt(0)
	traveled := 0.0
	for i := 1; i <= quadSteps; i++ {
		t := float64(i) / quadSteps
		next := curve.PointAt(t)
		segLen := math.Hypot(next.X-prev.X, next.Y-prev.Y)
		if !dashed || math.Mod(traveled, dashPeriod) < dashOn {
			c.line(prev.X*c.scale, prev.Y*c.scale, next.X*c.scale, next.Y*c.scale, thickness, col)
		}
		traveled += segLen
		prev = next
	}
}

// line strokes a straight segment with thickness, stepping a perpendicular
// offset across the stroke width.
func (c *raster) line(x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	dist := math.Hypot(dx, dy)
	halfThick := thickness / 2

	if dist < 1 {
		for ty := -halfThick; ty <= halfThick; ty++ {
			for tx := -halfThick; tx <= halfThick; tx++ {
				c.img.SetRGBA(int(x1+tx), int(y1+ty), col)
			}
		}
		return
	}

	steps := math.Max(math.Abs(dx), math.Abs(dy))
	perpX := -dy / dist
	perpY := dx / dist

	for i := 0.0; i <= steps; i++ {
		t := i / steps
		px := x1 + dx*t
		py := y1 + dy*t
		for offset := -halfThick; offset <= halfThick; offset += 0.5 {
			c.img.SetRGBA(int(px+perpX*offset), int(py+perpY*offset), col)
		}
	}
}

// fillDisc scanline-fills a circle.
func (c *raster) fillDisc(cx, cy, r float64, col color.RGBA) {
	for dy := -r; dy <= r; dy++ {
		span := r*r - dy*dy
		if span < 0 {
			continue
		}
		xExtent := math.Sqrt(span)
		for dx := -xExtent; dx <= xExtent; dx++ {
			c.img.SetRGBA(int(cx+dx), int(cy+dy), col)
		}
	}
}

// strokeCircle sweeps the circumference, offsetting along the radial normal
// to build up stroke thickness.
func (c *raster) strokeCircle(cx, cy, r, thickness float64, col color.RGBA) {
	for angle := 0.0; angle < 2*math.Pi; angle += 0.005 {
		nx := math.Cos(angle)
		ny := math.Sin(angle)
		for t := -thickness / 2; t <= thickness/2; t += 0.5 {
			c.img.SetRGBA(int(cx+nx*(r+t)), int(cy+ny*(r+t)), col)
		}
	}
}

func (c *raster) fillRect(x, y, w, h float64, col color.RGBA) {
	for py := y; py <= y+h; py++ {
		for px := x; px <= x+w; px++ {
			c.img.SetRGBA(int(px), int(py), col)
		}
	}
}

func (c *raster) strokeRect(x, y, w, h, thickness float64, col color.RGBA) {
	c.line(x, y, x+w, y, thickness, col)
	c.line(x+w, y, x+w, y+h, thickness, col)
	c.line(x+w, y+h, x, y+h, thickness, col)
	c.line(x, y+h, x, y, thickness, col)
}

// text draws a horizontally centered string. With vcenter the string is also
// centered vertically on y; otherwise y is the baseline, matching how SVG
// places text without a dominant-baseline.
func (c *raster) text(x, y float64, s string, face font.Face, col color.RGBA, vcenter bool) {
	width := font.MeasureString(face, s).Ceil()
	baselineY := int(y)
	if vcenter {
		// Visual centering for mixed-case labels: drop the baseline by
		// roughly half the cap height.
		baselineY += int(float64(face.Metrics().Ascent.Ceil()) * 0.35)
	}

	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(int(x) - width/2),
			Y: fixed.I(baselineY),
		},
	}
	d.DrawString(s)
}

// blend composites col over the flat background at the given opacity. The
// diagram has no translucent overlaps that matter, so blending against the
// background approximates SVG opacity closely enough.
func (c *raster) blend(col color.RGBA, opacity float64) color.RGBA {
	if opacity >= 1 {
		return col
	}
	if opacity < 0 {
		opacity = 0
	}
	mix := func(fg, bg uint8) uint8 {
		return uint8(float64(bg) + (float64(fg)-float64(bg))*opacity)
	}
	return color.RGBA{
		R: mix(col.R, c.background.R),
		G: mix(col.G, c.background.G),
		B: mix(col.B, c.background.B),
		A: 0xff,
	}
}

// parseHexColor reads #rgb and #rrggbb notations. Anything unparseable comes
// back as the neutral gray the palette falls back to, so a bad theme entry
// shows up visibly instead of failing the export.
func parseHexColor(s string) color.RGBA {
	neutral := color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
	if len(s) == 0 || s[0] != '#' {
		return neutral
	}

	hexVal := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}

	switch len(s) {
	case 4: // #rgb
		var out [3]uint8
		for i := 0; i < 3; i++ {
			v, ok := hexVal(s[i+1])
			if !ok {
				return neutral
			}
			out[i] = v*16 + v
		}
		return color.RGBA{R: out[0], G: out[1], B: out[2], A: 0xff}
	case 7: // #rrggbb
		var out [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := hexVal(s[2*i+1])
			lo, ok2 := hexVal(s[2*i+2])
			if !ok1 || !ok2 {
				return neutral
			}
			out[i] = hi*16 + lo
		}
		return color.RGBA{R: out[0], G: out[1], B: out[2], A: 0xff}
	}
	return neutral
}
