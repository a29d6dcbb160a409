package assets

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// echoProvider returns each id as its own frame.
type echoProvider struct {
	calls   atomic.Int32
	missing string
}

func (p *echoProvider) Resolve(ctx context.Context, ids []string) ([]invaders.Frame, error) {
	p.calls.Add(1)
	out := make([]invaders.Frame, 0, len(ids))
	for _, id := range ids {
		if id == p.missing {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAsset, id)
		}
		out = append(out, id)
	}
	return out, nil
}

func testManifest() Manifest {
	m := Manifest{Sets: map[string][]string{}}
	for _, name := range invaders.SetNames {
		m.Sets[name] = []string{name + "/0", name + "/1", name + "/2"}
	}
	return m
}

func TestLoadResolvesEverySetInOrder(t *testing.T) {
	p := &echoProvider{}
	sets, err := Load(context.Background(), p, testManifest())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got := int(p.calls.Load()); got != len(invaders.SetNames) {
		t.Errorf("Resolve calls = %d, expected %d", got, len(invaders.SetNames))
	}
	for _, name := range invaders.SetNames {
		fs := sets[name]
		if fs.Name() != name {
			t.Errorf("set name = %q, expected %q", fs.Name(), name)
		}
		for i := 0; i < 3; i++ {
			if want := fmt.Sprintf("%s/%d", name, i); fs.At(i) != want {
				t.Errorf("%s frame %d = %v, expected %v", name, i, fs.At(i), want)
			}
		}
	}
}

func TestLoadFailsOnUnknownAsset(t *testing.T) {
	p := &echoProvider{missing: "enemy/1"}
	_, err := Load(context.Background(), p, testManifest())
	if !errors.Is(err, ErrUnknownAsset) {
		t.Fatalf("Load error = %v, expected ErrUnknownAsset", err)
	}
}

func TestLoadRejectsIncompleteManifest(t *testing.T) {
	m := testManifest()
	delete(m.Sets, invaders.SetProjectile)
	p := &echoProvider{}
	if _, err := Load(context.Background(), p, m); err == nil {
		t.Fatal("expected error for missing projectile set")
	}
	if p.calls.Load() != 0 {
		t.Error("provider should not be called for an invalid manifest")
	}
}

func TestLoadWithoutDamagedSets(t *testing.T) {
	m := testManifest()
	delete(m.Sets, invaders.SetPlayerDamaged)
	m.Sets[invaders.SetEnemyDamaged] = nil

	sp, err := LoadSprites(context.Background(), &echoProvider{}, m)
	if err != nil {
		t.Fatalf("LoadSprites error: %v", err)
	}
	if sp.Player.Damaged != nil || sp.Enemy.Damaged != nil {
		t.Fatalf("damaged sets = %v / %v, expected nil", sp.Player.Damaged, sp.Enemy.Damaged)
	}

	// A damaged enemy keeps drawing its normal frames.
	e := invaders.NewEnemy(100, sp)
	e.NotifyHit(invaders.StartHealth - invaders.DamagedThreshold)
	if e.Tier() != invaders.TierDamaged {
		t.Fatalf("tier = %v, expected %v", e.Tier(), invaders.TierDamaged)
	}
	if got := e.ActiveFrames().Name(); got != invaders.SetEnemy {
		t.Errorf("active frames = %q, expected %q", got, invaders.SetEnemy)
	}
}

func TestLoadSpritesAssemblesShipSets(t *testing.T) {
	sp, err := LoadSprites(context.Background(), &echoProvider{}, testManifest())
	if err != nil {
		t.Fatalf("LoadSprites error: %v", err)
	}
	if sp.Player.Explosion.Name() != invaders.SetPlayerExplosion {
		t.Errorf("player explosion = %q", sp.Player.Explosion.Name())
	}
	if sp.Enemy.Damaged.Name() != invaders.SetEnemyDamaged {
		t.Errorf("enemy damaged = %q", sp.Enemy.Damaged.Name())
	}
	if sp.Projectile.Len() != 3 {
		t.Errorf("projectile frames = %d, expected 3", sp.Projectile.Len())
	}
}

func TestDefaultManifestsAreComplete(t *testing.T) {
	img := DefaultImageManifest()
	if err := img.Validate(); err != nil {
		t.Errorf("image manifest: %v", err)
	}
	if got := img.Sets[invaders.SetPlayer][0]; got != "assets/player/player_000.png" {
		t.Errorf("first player frame = %q", got)
	}
	if got := len(img.Sets[invaders.SetProjectile]); got != 5 {
		t.Errorf("projectile frames = %d, expected 5", got)
	}
	if err := DefaultGlyphManifest().Validate(); err != nil {
		t.Errorf("glyph manifest: %v", err)
	}
}

func TestDefaultGlyphsCoverGlyphManifest(t *testing.T) {
	p := DefaultGlyphProvider()
	sets, err := Load(context.Background(), p, DefaultGlyphManifest())
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	bolt := sets[invaders.SetProjectile].At(invaders.InFlightFrame)
	sp, ok := bolt.(core.Sprite)
	if !ok {
		t.Fatalf("frame type = %T, expected core.Sprite", bolt)
	}
	if sp.Lines[0] != "|" {
		t.Errorf("in-flight glyph = %q, expected %q", sp.Lines[0], "|")
	}
}

func TestGlyphProvider(t *testing.T) {
	sheet := []byte(`
glyphs:
  a:
    color: red
    lines: ["<>"]
  b:
    lines: ["x", "y"]
`)
	p, err := NewGlyphProvider(sheet)
	if err != nil {
		t.Fatalf("NewGlyphProvider error: %v", err)
	}
	frames, err := p.Resolve(context.Background(), []string{"b", "a", "b"})
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(frames) != 3 {
		t.Fatalf("frames = %d, expected 3", len(frames))
	}
	a := frames[1].(core.Sprite)
	if a.Color != core.ColorRed || a.Width() != 2 {
		t.Errorf("a = %+v", a)
	}
	if b := frames[0].(core.Sprite); b.Height() != 2 || b.Color != core.ColorDefault {
		t.Errorf("b = %+v", b)
	}

	if _, err := p.Resolve(context.Background(), []string{"a", "zzz"}); !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("Resolve(zzz) error = %v, expected ErrUnknownAsset", err)
	}
}

func TestGlyphProviderRejectsEmptyGlyph(t *testing.T) {
	if _, err := NewGlyphProvider([]byte("glyphs:\n  a:\n    color: red\n")); err == nil {
		t.Error("expected error for glyph without lines")
	}
}

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte("sets:\n  enemy: [e0, e1]\n"))
	if err != nil {
		t.Fatalf("ParseManifest error: %v", err)
	}
	if got := m.Sets["enemy"]; len(got) != 2 || got[1] != "e1" {
		t.Errorf("enemy = %v", got)
	}
	if err := m.Validate(); err == nil {
		t.Error("Validate should fail for a partial manifest")
	}
}
