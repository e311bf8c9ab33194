package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Open returns the asset file system rooted at dir.
func Open(dir string) (fs.FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset path %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// SpriteLoader decodes and caches images from an asset file system.
type SpriteLoader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

func NewSpriteLoader(fsys fs.FS) *SpriteLoader {
	return &SpriteLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// Load returns the decoded image at path.
func (l *SpriteLoader) Load(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}
	if l.fsys == nil {
		return nil, fmt.Errorf("no asset file system for %s", path)
	}

	imgBytes, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

// LoadSprites loads every named image. Images that fail are left out of the
// result and reported together in the returned error.
func LoadSprites(fsys fs.FS, names ...string) (map[string]*ebiten.Image, error) {
	loader := NewSpriteLoader(fsys)
	sprites := make(map[string]*ebiten.Image, len(names))

	var errs []error
	for _, name := range names {
		img, err := loader.Load(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		sprites[name] = img
	}
	return sprites, errors.Join(errs...)
}

// ReadFont returns the raw bytes of a font file, or nil when it is missing.
func ReadFont(fsys fs.FS, path string) []byte {
	if fsys == nil {
		return nil
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		log.Printf("Warning: Could not load font %s: %v", path, err)
		return nil
	}
	return data
}
