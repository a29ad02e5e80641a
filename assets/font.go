package assets

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	scoreFontSize = 56
	scoreFontDPI  = 72
)

// NewScoreFace loads the face used for the score digits
func NewScoreFace() (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse score font: %w", err)
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    scoreFontSize,
		DPI:     scoreFontDPI,
		Hinting: font.HintingFull,
	}), nil
}
