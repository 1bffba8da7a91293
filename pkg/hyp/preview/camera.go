package preview

import "github.com/OpenTraceLab/hypgen/pkg/geom"

// Camera maps board coordinates onto the image. Board Y grows upward, so
// the Y axis is flipped.
type Camera struct {
	// Center position in board coordinates
	CenterX float64
	CenterY float64

	// Zoom level (pixels per board unit)
	Zoom float64

	// Image dimensions (pixels)
	ScreenWidth  int
	ScreenHeight int
}

// NewCamera creates a camera for an image of the given size
func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		Zoom:         10.0,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// WorldToScreen converts board coordinates to pixel coordinates
func (c *Camera) WorldToScreen(p geom.Point) (float64, float64) {
	x := (p.X-c.CenterX)*c.Zoom + float64(c.ScreenWidth)/2.0
	y := (p.Y-c.CenterY)*c.Zoom + float64(c.ScreenHeight)/2.0
	return x, float64(c.ScreenHeight) - y
}

// ScreenToWorld converts pixel coordinates to board coordinates
func (c *Camera) ScreenToWorld(screenX, screenY float64) geom.Point {
	x := (screenX-float64(c.ScreenWidth)/2.0)/c.Zoom + c.CenterX
	y := (float64(c.ScreenHeight)-screenY-float64(c.ScreenHeight)/2.0)/c.Zoom + c.CenterY
	return geom.Pt(x, y)
}

// Length converts a board length (trace width, radius) to pixels
func (c *Camera) Length(l float64) float64 {
	return l * c.Zoom
}

// Fit centers the camera on bbox and zooms so it fills the image, leaving
// margin pixels on every side
func (c *Camera) Fit(bbox geom.BoundingBox, margin int) {
	width, height := bbox.Width(), bbox.Height()
	if bbox.IsEmpty() || width <= 0 || height <= 0 {
		return
	}

	center := bbox.Center()
	c.CenterX, c.CenterY = center.X, center.Y

	zoomX := float64(c.ScreenWidth-2*margin) / width
	zoomY := float64(c.ScreenHeight-2*margin) / height
	c.Zoom = min(zoomX, zoomY)
	if c.Zoom <= 0 {
		c.Zoom = min(float64(c.ScreenWidth)/width, float64(c.ScreenHeight)/height)
	}
}
