package fonts

import (
	"bytes"
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD   FontName = "hud"
	Menu  FontName = "menu"
	Title FontName = "title"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Face returns the text/v2 face used by ebitenui widgets.
func (f FontName) Face() text.Face {
	face, ok := faces[f]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", f))
	}
	return face
}

var (
	fonts = map[FontName]font.Face{}
	faces = map[FontName]text.Face{}
)

// LoadAll registers every face at its size from ttf. A nil or unparsable
// ttf falls back to Go Regular.
func LoadAll(ttf []byte, sizes map[FontName]float64) error {
	if ttf == nil {
		ttf = goregular.TTF
	}
	if _, err := truetype.Parse(ttf); err != nil {
		ttf = goregular.TTF
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("failed to load font source: %w", err)
	}

	for name, size := range sizes {
		LoadFontWithSize(name, ttf, size)
		faces[name] = &text.GoTextFace{Source: source, Size: size}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
