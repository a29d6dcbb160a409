package desktop

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-invaders/internal/assets"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// ImageProvider resolves asset ids to images read from a file system.
// Each file is decoded once; sets that list the same id share the frame.
// It is safe for concurrent use.
type ImageProvider struct {
	fsys     fs.FS
	newFrame func(image.Image) invaders.Frame

	mu    sync.Mutex
	cache map[string]invaders.Frame
}

// NewImageProvider returns a provider reading PNG files under dir.
func NewImageProvider(dir string) *ImageProvider {
	return newImageProvider(os.DirFS(dir), func(img image.Image) invaders.Frame {
		return ebiten.NewImageFromImage(img)
	})
}

func newImageProvider(fsys fs.FS, newFrame func(image.Image) invaders.Frame) *ImageProvider {
	return &ImageProvider{
		fsys:     fsys,
		newFrame: newFrame,
		cache:    make(map[string]invaders.Frame),
	}
}

// Resolve implements assets.Provider.
func (p *ImageProvider) Resolve(ctx context.Context, ids []string) ([]invaders.Frame, error) {
	frames := make([]invaders.Frame, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := p.load(id)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// Len returns the number of distinct images decoded so far.
func (p *ImageProvider) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cache)
}

func (p *ImageProvider) load(id string) (invaders.Frame, error) {
	p.mu.Lock()
	f, ok := p.cache[id]
	p.mu.Unlock()
	if ok {
		return f, nil
	}

	if !fs.ValidPath(id) {
		return nil, fmt.Errorf("%w: invalid path %q", assets.ErrUnknownAsset, id)
	}
	file, err := p.fsys.Open(id)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", assets.ErrUnknownAsset, id)
		}
		return nil, fmt.Errorf("failed to open image %s: %w", id, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", id, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if f, ok := p.cache[id]; ok {
		return f, nil
	}
	f = p.newFrame(img)
	p.cache[id] = f
	return f, nil
}
