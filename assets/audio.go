package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	fsys     fs.FS
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader reading from fsys
func NewAudioLoader(ctx *audio.Context, fsys fs.FS) *AudioLoader {
	return &AudioLoader{
		fsys:     fsys,
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// decodeStream returns a PCM stream for a .wav or .ogg file.
func (l *AudioLoader) decodeStream(path string) (io.ReadSeeker, int64, error) {
	if l.fsys == nil {
		return nil, 0, fmt.Errorf("no asset file system for %s", path)
	}
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		return stream, stream.Length(), nil

	case ".wav":
		stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, 0, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		return stream, stream.Length(), nil
	}
	return nil, 0, fmt.Errorf("unsupported audio format: %s", ext)
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(path string) error {
	if _, ok := l.sfxCache[path]; ok {
		return nil
	}

	stream, _, err := l.decodeStream(path)
	if err != nil {
		return err
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}

	l.sfxCache[path] = decoded
	return nil
}

// LoadSFX returns a new player each time. Several players may share one sample.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	if err := l.PreloadSFX(path); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[path]))
}

// LoadMusic returns a looping streaming player.
func (l *AudioLoader) LoadMusic(path string) (*audio.Player, error) {
	stream, length, err := l.decodeStream(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load music: %w", err)
	}

	loop := audio.NewInfiniteLoop(stream, length)
	return l.context.NewPlayer(loop)
}
