package ph

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Surface is an immediate-mode 2D drawing target. Transform calls compose the
// way a canvas context does: each call applies before the existing transform.
type Surface interface {
	// Size returns the logical size of the surface.
	Size() (w, h float64)
	DrawImage(img *ebiten.Image, x, y float64)
	FillRect(x, y, w, h float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	// FillPath fills a convex polygon.
	FillPath(points []Vec2, c Color)
	// DebugText prints s with the built-in debug font. Only the transform's
	// translation applies to text.
	DebugText(s string, x, y float64)

	Save()
	Restore()
	Translate(dx, dy float64)
	Rotate(theta float64)
}

const circleSegments = 20

// --- White pixel singleton (single-threaded, no sync.Once) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(ColorWhite.RGBA())
	}
	return whitePixelImage
}

// ImageSurface implements Surface on an ebiten image.
type ImageSurface struct {
	target *ebiten.Image
	geoM   ebiten.GeoM
	stack  []ebiten.GeoM

	pathBuf []Vec2
	verts   []ebiten.Vertex
	inds    []uint16
}

// NewImageSurface wraps target with an identity transform.
func NewImageSurface(target *ebiten.Image) *ImageSurface {
	return &ImageSurface{target: target}
}

// Reset retargets the surface and clears the transform stack. The run loop
// calls this once per frame to reuse buffers.
func (s *ImageSurface) Reset(target *ebiten.Image) {
	s.target = target
	s.geoM.Reset()
	s.stack = s.stack[:0]
}

func (s *ImageSurface) Size() (w, h float64) {
	b := s.target.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *ImageSurface) Save() {
	s.stack = append(s.stack, s.geoM)
}

func (s *ImageSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.geoM = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *ImageSurface) Translate(dx, dy float64) {
	var t ebiten.GeoM
	t.Translate(dx, dy)
	t.Concat(s.geoM)
	s.geoM = t
}

func (s *ImageSurface) Rotate(theta float64) {
	var t ebiten.GeoM
	t.Rotate(theta)
	t.Concat(s.geoM)
	s.geoM = t
}

func (s *ImageSurface) DrawImage(img *ebiten.Image, x, y float64) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(s.geoM)
	s.target.DrawImage(img, op)
}

func (s *ImageSurface) FillRect(x, y, w, h float64, c Color) {
	s.pathBuf = append(s.pathBuf[:0],
		Vec2{x, y}, Vec2{x + w, y}, Vec2{x + w, y + h}, Vec2{x, y + h})
	s.fill(s.pathBuf, c)
}

func (s *ImageSurface) FillCircle(cx, cy, r float64, c Color) {
	s.pathBuf = s.pathBuf[:0]
	for i := 0; i < circleSegments; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
		s.pathBuf = append(s.pathBuf, Vec2{cx + cos*r, cy + sin*r})
	}
	s.fill(s.pathBuf, c)
}

func (s *ImageSurface) FillPath(points []Vec2, c Color) {
	s.fill(points, c)
}

func (s *ImageSurface) DebugText(str string, x, y float64) {
	tx, ty := s.geoM.Apply(x, y)
	ebitenutil.DebugPrintAt(s.target, str, int(tx), int(ty))
}

// fill fan-triangulates points (vertex 0 is the hub) and draws them with the
// white pixel, tinted by c.
func (s *ImageSurface) fill(points []Vec2, c Color) {
	n := len(points)
	if n < 3 {
		return
	}
	s.verts = s.verts[:0]
	s.inds = s.inds[:0]
	for _, p := range points {
		dx, dy := s.geoM.Apply(p.X, p.Y)
		s.verts = append(s.verts, ebiten.Vertex{
			DstX:   float32(dx),
			DstY:   float32(dy),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(c.R),
			ColorG: float32(c.G),
			ColorB: float32(c.B),
			ColorA: float32(c.A),
		})
	}
	for i := 0; i < n-2; i++ {
		s.inds = append(s.inds, 0, uint16(i+1), uint16(i+2))
	}
	var op ebiten.DrawTrianglesOptions
	s.target.DrawTriangles(s.verts, s.inds, ensureWhitePixel(), &op)
}

var _ Surface = (*ImageSurface)(nil)
