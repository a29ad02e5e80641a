package screen

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/text"
	"github.com/jtestard/classic-pong/assets"
	"github.com/jtestard/classic-pong/pong"
	"golang.org/x/image/font"
)

type circleKey struct {
	radius int
	color  color.RGBA
}

// Surface draws onto the ebiten screen image of the current frame
type Surface struct {
	face    font.Face
	circles map[circleKey]*ebiten.Image
	dst     *ebiten.Image
}

// NewSurface creates a surface rendering text with face
func NewSurface(face font.Face) *Surface {
	return &Surface{
		face:    face,
		circles: make(map[circleKey]*ebiten.Image),
	}
}

// Target sets the image the next frame is drawn onto
func (s *Surface) Target(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) Size() (int, int) {
	return s.dst.Size()
}

func (s *Surface) Fill(c color.Color) {
	s.dst.Fill(c)
}

func (s *Surface) FillRect(r image.Rectangle, c color.Color) {
	ebitenutil.DrawRect(s.dst,
		float64(r.Min.X), float64(r.Min.Y),
		float64(r.Dx()), float64(r.Dy()), c)
}

func (s *Surface) FillCircle(center pong.Vector, radius int, c color.Color) {
	img := s.circle(radius, c)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(center.X-radius), float64(center.Y-radius))
	s.dst.DrawImage(img, op)
}

// circle returns the cached sprite for a circle, rasterizing it on first use
func (s *Surface) circle(radius int, c color.Color) *ebiten.Image {
	k := circleKey{radius, color.RGBAModel.Convert(c).(color.RGBA)}
	if img, ok := s.circles[k]; ok {
		return img
	}
	img, err := ebiten.NewImageFromImage(assets.Circle(radius, c), ebiten.FilterDefault)
	if err != nil {
		return nil
	}
	s.circles[k] = img
	return img
}

func (s *Surface) DrawText(str string, topLeft pong.Vector, c color.Color) {
	ascent := s.face.Metrics().Ascent.Ceil()
	text.Draw(s.dst, str, s.face, topLeft.X, topLeft.Y+ascent, c)
}

func (s *Surface) TextWidth(str string) int {
	return font.MeasureString(s.face, str).Ceil()
}
