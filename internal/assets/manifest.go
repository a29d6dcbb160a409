package assets

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

//go:embed data/manifest_png.yaml
var defaultImageManifestYAML []byte

//go:embed data/manifest_glyph.yaml
var defaultGlyphManifestYAML []byte

// Manifest maps sprite-set names to ordered asset ids.
type Manifest struct {
	Sets map[string][]string `yaml:"sets"`
}

// ParseManifest decodes a YAML manifest.
func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return m, nil
}

// LoadManifest reads a manifest file, or returns fallback when path is empty.
func LoadManifest(path string, fallback Manifest) (Manifest, error) {
	if path == "" {
		return fallback, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return m, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// DefaultImageManifest lists the PNG frames shipped for the windowed frontend.
func DefaultImageManifest() Manifest {
	return mustParse(defaultImageManifestYAML)
}

// DefaultGlyphManifest lists the glyph frames used by the terminal frontend.
func DefaultGlyphManifest() Manifest {
	return mustParse(defaultGlyphManifestYAML)
}

func mustParse(data []byte) Manifest {
	m, err := ParseManifest(data)
	if err != nil {
		panic(err)
	}
	return m
}

// optionalSets may be left out of a manifest. Damaged ships then keep
// drawing their normal frames.
var optionalSets = map[string]bool{
	invaders.SetPlayerDamaged: true,
	invaders.SetEnemyDamaged:  true,
}

// Validate checks that every required set is present and non-empty.
func (m Manifest) Validate() error {
	for _, name := range invaders.SetNames {
		if len(m.Sets[name]) == 0 && !optionalSets[name] {
			return fmt.Errorf("manifest: sprite set %q is missing or empty", name)
		}
	}
	return nil
}
