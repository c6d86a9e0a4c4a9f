package debayer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	overlayWidth     = 800
	overlaySummaryH  = 60
	overlayMinHeight = 100
)

// RenderColorCastOverlay renders the converted frame with the 3x3 color cast
// analysis on top and writes it to a JPEG file.
func RenderColorCastOverlay(src image.Image, cast *ColorCastAnalysis, outputPath string) error {
	img, err := renderCastImage(src, cast)
	if err != nil {
		return err
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create overlay file: %w", err)
	}
	defer f.Close()

	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// RenderColorCastOverlayBytes renders the overlay and returns it as JPEG bytes.
func RenderColorCastOverlayBytes(src image.Image, cast *ColorCastAnalysis) ([]byte, error) {
	img, err := renderCastImage(src, cast)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderCastImage(src image.Image, cast *ColorCastAnalysis) (*image.RGBA, error) {
	if cast == nil {
		return nil, fmt.Errorf("no color cast analysis data")
	}
	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("empty source image")
	}

	scale := float64(overlayWidth) / float64(b.Dx())
	imgW := overlayWidth
	imgH := int(float64(b.Dy()) * scale)
	if imgH < overlayMinHeight {
		imgH = overlayMinHeight
	}
	img := image.NewRGBA(image.Rect(0, 0, imgW, imgH+overlaySummaryH))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.BiLinear.Scale(img, image.Rect(0, 0, imgW, imgH), src, b, draw.Src, nil)

	xLo, xHi := int(float64(imgW)*zoneEdgeFraction), int(float64(imgW)*(1-zoneEdgeFraction))
	yLo, yHi := int(float64(imgH)*zoneEdgeFraction), int(float64(imgH)*(1-zoneEdgeFraction))
	xBounds := [3][2]int{{0, xLo}, {xLo, xHi}, {xHi, imgW}}
	yBounds := [3][2]int{{0, yLo}, {yLo, yHi}, {yHi, imgH}}

	gridColor := color.RGBA{255, 255, 255, 180}
	for x := 0; x < imgW; x++ {
		img.Set(x, yLo, gridColor)
		img.Set(x, yHi, gridColor)
	}
	for y := 0; y < imgH; y++ {
		img.Set(xLo, y, gridColor)
		img.Set(xHi, y, gridColor)
	}

	face := basicfont.Face7x13
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			z := cast.Zones[zoneGrid[row][col]]
			x0, x1 := xBounds[col][0], xBounds[col][1]
			y0, y1 := yBounds[row][0], yBounds[row][1]
			cx, cy := (x0+x1)/2, (y0+y1)/2

			drawRect(img, x0+2, y0+2, x1-2, y1-2, castColor(z))

			textColor := color.RGBA{255, 255, 255, 255}
			drawCenteredText(img, face, z.Label, cx, cy-14, textColor)
			drawCenteredText(img, face, fmt.Sprintf("R/G: %.2f", z.RatioRG), cx, cy+2, textColor)
			drawCenteredText(img, face, fmt.Sprintf("B/G: %.2f", z.RatioBG), cx, cy+16, textColor)
		}
	}

	summaryColor := color.RGBA{220, 220, 220, 255}
	summaryY := imgH + 15
	castStr := fmt.Sprintf("Cast: %.1f%%  (worst: %s)", cast.CastPct, cast.WorstZone)
	gainStr := fmt.Sprintf("Gains: R=%.3f G=%.3f B=%.3f", cast.Gains.R, cast.Gains.G, cast.Gains.B)
	if !cast.Reliable {
		gainStr += "  [FRAME TOO SMALL - UNRELIABLE]"
	}
	drawText(img, face, castStr, 10, summaryY, summaryColor)
	drawText(img, face, gainStr, 10, summaryY+18, summaryColor)

	return img, nil
}

// castColor tints a zone border toward the channel that dominates it.
func castColor(z ZoneData) color.RGBA {
	if z.MeanG == 0 {
		return color.RGBA{40, 40, 40, 255}
	}
	rb := z.RatioRG - z.RatioBG
	t := math.Min(math.Abs(rb), 1)
	switch {
	case rb > 0.05:
		return color.RGBA{uint8(120 + t*135), 60, 60, 255}
	case rb < -0.05:
		return color.RGBA{60, 60, uint8(120 + t*135), 255}
	default:
		return color.RGBA{60, 160, 60, 255}
	}
}

func drawText(img *image.RGBA, face font.Face, s string, x, y int, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func drawCenteredText(img *image.RGBA, face font.Face, s string, cx, cy int, c color.RGBA) {
	advance := font.MeasureString(face, s)
	drawText(img, face, s, cx-advance.Round()/2, cy, c)
}

func drawRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		img.Set(x, y0, c)
		img.Set(x, y1, c)
	}
	for y := y0; y <= y1; y++ {
		img.Set(x0, y, c)
		img.Set(x1, y, c)
	}
}
