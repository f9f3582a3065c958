// pkg/render/sprites.go
package render

import (
	"breakout-party/internal/assets"
	"breakout-party/internal/config"
	"breakout-party/internal/defs"
	"breakout-party/internal/draw"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpriteCache рисует листы спрайтов при первом обращении и держит их
// до Unload. Картинок в игре нет, все собирается из примитивов.
type SpriteCache struct {
	fonts  *Fonts
	logger *log.Logger
	sheets map[string]*ebiten.Image
}

func NewSpriteCache(fonts *Fonts, logger *log.Logger) *SpriteCache {
	if logger == nil {
		logger = log.Default()
	}
	return &SpriteCache{fonts: fonts, logger: logger, sheets: make(map[string]*ebiten.Image)}
}

// Frame возвращает кадр листа и его размер. ok == false для неизвестного имени.
func (c *SpriteCache) Frame(name string, frame int) (img *ebiten.Image, w, h int, ok bool) {
	spec, ok := assets.Lookup(name)
	if !ok {
		return nil, 0, 0, false
	}
	sheet, cached := c.sheets[name]
	if !cached {
		sheet = c.paint(spec)
		c.sheets[name] = sheet
		c.logger.Debug("sprite painted", "name", name, "frames", spec.Frames)
	}
	r := frameRect(spec.Width, spec.Height, spec.Frames, frame)
	return sheet.SubImage(r).(*ebiten.Image), spec.Width, spec.Height, true
}

// Preload рисует все листы заранее, чтобы первый кадр не подтормаживал.
func (c *SpriteCache) Preload() {
	for _, spec := range assets.All() {
		c.Frame(spec.Name, 0)
	}
}

// Unload освобождает все листы.
func (c *SpriteCache) Unload() {
	for name, img := range c.sheets {
		img.Deallocate()
		delete(c.sheets, name)
	}
}

func (c *SpriteCache) paint(spec assets.Sprite) *ebiten.Image {
	img := ebiten.NewImage(spec.Width*spec.Frames, spec.Height)
	switch spec.Name {
	case assets.Background:
		paintBackground(img)
	case assets.Title:
		c.paintTitle(img)
	case assets.HowToPlay:
		c.paintHowToPlay(img)
	case assets.Ball:
		r := float32(spec.Width) / 2
		vector.DrawFilledCircle(img, r, r, r, config.BallColor, true)
	case assets.Paddle:
		paintPaddle(img, float32(spec.Width), float32(spec.Height))
	case assets.Block:
		for f := 0; f < spec.Frames; f++ {
			paintBlock(img, f, spec.Width, spec.Height)
		}
	default:
		img.Fill(color.White)
	}
	return img
}

func paintBackground(img *ebiten.Image) {
	img.Fill(config.BackgroundColor)
	const cell = 16
	b := img.Bounds()
	for x := 0; x <= b.Dx(); x += cell {
		vector.StrokeLine(img, float32(x), 0, float32(x), float32(b.Dy()), 1, config.GridColor, false)
	}
	for y := 0; y <= b.Dy(); y += cell {
		vector.StrokeLine(img, 0, float32(y), float32(b.Dx()), float32(y), 1, config.GridColor, false)
	}
}

func paintPaddle(img *ebiten.Image, w, h float32) {
	r := float32(config.PaddleCornerR)
	vector.DrawFilledRect(img, r, 0, w-2*r, h, config.PaddleColor, false)
	vector.DrawFilledRect(img, 0, r, w, h-2*r, config.PaddleColor, false)
	for _, x := range []float32{r, w - r} {
		for _, y := range []float32{r, h - r} {
			vector.DrawFilledCircle(img, x, y, r, config.PaddleColor, true)
		}
	}
	shade := Darken(config.PaddleColor, 0.6)
	vector.StrokeLine(img, r, h-1, w-r, h-1, 1, shade, false)
}

// paintBlock рисует белый блок, его раскрашивает tint при отрисовке.
// С каждым кадром трещин больше.
func paintBlock(img *ebiten.Image, frame, w, h int) {
	x0 := float32(frame * w)
	fw, fh := float32(w), float32(h)
	white := color.RGBA{255, 255, 255, 255}
	vector.DrawFilledRect(img, x0, 0, fw, fh, white, false)
	edge := Darken(white, 0.7)
	vector.StrokeRect(img, x0+0.5, 0.5, fw-1, fh-1, 1, edge, false)

	cracks := [][4]float32{
		{0.2, 0.0, 0.45, 0.6},
		{0.45, 0.6, 0.3, 1.0},
		{0.7, 0.0, 0.6, 0.5},
		{0.6, 0.5, 0.85, 1.0},
		{0.0, 0.4, 0.45, 0.6},
		{0.6, 0.5, 1.0, 0.35},
	}
	crack := Darken(white, 0.35)
	for i := 0; i < frame*2 && i < len(cracks); i++ {
		c := cracks[i]
		vector.StrokeLine(img, x0+c[0]*fw, c[1]*fh, x0+c[2]*fw, c[3]*fh, 1, crack, false)
	}
}

func (c *SpriteCache) paintTitle(img *ebiten.Image) {
	b := img.Bounds()
	w := float32(b.Dx())
	for i, clr := range defs.BlockPalette {
		x := float32(i) * w / float32(len(defs.BlockPalette))
		vector.DrawFilledRect(img, x+1, 84, w/float32(len(defs.BlockPalette))-2, 10, clr, false)
	}
	c.centered(img, "BREAKOUT", 24, draw.FontTitle, config.TitleColor)
	c.centered(img, "PARTY", 52, draw.FontTitle, Lighten(config.TitleColor, 0.4))
	vector.DrawFilledCircle(img, w/2, 106, 4, config.BallColor, true)
}

func (c *SpriteCache) paintHowToPlay(img *ebiten.Image) {
	paintBackground(img)
	lines := []struct {
		s    string
		y    float64
		font draw.Font
		clr  color.Color
	}{
		{"How To Play", 16, draw.FontTitle, config.TitleColor},
		{"Break every block, keep the ball alive.", 60, draw.FontText, config.TextColor},
		{"Player 1: Arrows, Enter, Escape", 90, draw.FontText, config.TextColor},
		{"Player 2: W A S D, Shift, Tab", 108, draw.FontText, config.TextColor},
		{"Gamepad: D-Pad or stick, A = Ok, B = Back", 126, draw.FontText, config.TextColor},
		{"Empty paddles are played by the computer.", 156, draw.FontText, config.DimTextColor},
		{"Press Ok to continue", 210, draw.FontText, config.HighlightColor},
	}
	for _, l := range lines {
		c.centered(img, l.s, l.y, l.font, l.clr)
	}
}

func (c *SpriteCache) centered(img *ebiten.Image, s string, y float64, font draw.Font, clr color.Color) {
	k := c.fonts.scaleOf(font)
	x := float64(img.Bounds().Dx())/2 - c.fonts.Advance(s, font)/2
	op := &text.DrawOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(img, s, c.fonts.face, op)
}
