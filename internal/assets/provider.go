// Package assets resolves sprite manifests into shared frame sets.
package assets

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// ErrUnknownAsset is returned when a provider has nothing for an asset id.
var ErrUnknownAsset = errors.New("unknown asset")

// Provider turns asset ids into frames, preserving the order of ids.
type Provider interface {
	Resolve(ctx context.Context, ids []string) ([]invaders.Frame, error)
}

// Load resolves every sprite set of the manifest in parallel. Optional sets
// missing from the manifest are absent from the result.
// All sets are resolved before Load returns; the first failure aborts the rest.
func Load(ctx context.Context, p Provider, m Manifest) (map[string]*invaders.FrameSet, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	sets := make([]*invaders.FrameSet, len(invaders.SetNames))
	for i, name := range invaders.SetNames {
		if len(m.Sets[name]) == 0 {
			continue
		}
		g.Go(func() error {
			frames, err := p.Resolve(ctx, m.Sets[name])
			if err != nil {
				return fmt.Errorf("sprite set %q: %w", name, err)
			}
			if len(frames) != len(m.Sets[name]) {
				return fmt.Errorf("sprite set %q: resolved %d of %d frames", name, len(frames), len(m.Sets[name]))
			}
			sets[i] = invaders.NewFrameSet(name, frames)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*invaders.FrameSet, len(sets))
	for _, fs := range sets {
		if fs != nil {
			out[fs.Name()] = fs
		}
	}
	return out, nil
}

// LoadSprites is Load followed by invaders.SpritesFromSets.
func LoadSprites(ctx context.Context, p Provider, m Manifest) (invaders.Sprites, error) {
	sets, err := Load(ctx, p, m)
	if err != nil {
		return invaders.Sprites{}, err
	}
	return invaders.SpritesFromSets(sets), nil
}
