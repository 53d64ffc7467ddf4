package ph

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// Store is a keyed lookup of decoded assets. Names are slash-separated paths
// without an extension, e.g. "sfx/bounce".
type Store struct {
	images map[string]*ebiten.Image
	sounds map[string][]byte
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		images: make(map[string]*ebiten.Image),
		sounds: make(map[string][]byte),
	}
}

// Image returns the named image.
func (s *Store) Image(name string) (*ebiten.Image, bool) {
	img, ok := s.images[name]
	return img, ok
}

// Sound returns the named sound as decoded 16-bit stereo PCM.
func (s *Store) Sound(name string) ([]byte, bool) {
	pcm, ok := s.sounds[name]
	return pcm, ok
}

// SetImage stores an image under name.
func (s *Store) SetImage(name string, img *ebiten.Image) {
	s.images[name] = img
}

// SetSound stores decoded PCM under name.
func (s *Store) SetSound(name string, pcm []byte) {
	s.sounds[name] = pcm
}

// Len returns the number of stored assets.
func (s *Store) Len() int {
	return len(s.images) + len(s.sounds)
}

// LoadStore walks fsys and decodes every .png, .wav and .ogg file it finds.
// Sounds are resampled to sampleRate. Other files are skipped.
func LoadStore(fsys fs.FS, sampleRate int) (*Store, error) {
	s := NewStore()
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(path.Ext(p))
		name := strings.TrimSuffix(p, path.Ext(p))
		switch ext {
		case ".png":
			img, err := loadImage(fsys, p)
			if err != nil {
				return err
			}
			s.SetImage(name, img)
		case ".wav", ".ogg":
			pcm, err := loadSound(fsys, p, ext, sampleRate)
			if err != nil {
				return err
			}
			s.SetSound(name, pcm)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ph: load assets: %w", err)
	}
	return s, nil
}

func loadImage(fsys fs.FS, p string) (*ebiten.Image, error) {
	f, err := fsys.Open(p)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

func loadSound(fsys fs.FS, p, ext string, sampleRate int) ([]byte, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, err
	}
	var stream io.Reader
	if ext == ".wav" {
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	} else {
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return pcm, nil
}
