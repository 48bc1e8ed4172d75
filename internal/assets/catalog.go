// Package assets resolves sprite names to sized terminal glyph handles.
//
// A handle only carries what the game needs from an image: its aspect ratio
// (so entity widths can be derived from a configured height) and what to draw
// in a terminal cell for each orientation.
package assets

import (
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/mousetrap/internal/config"
	"github.com/vovakirdan/mousetrap/internal/core"
)

// Handle is an opaque sized resource.
type Handle struct {
	name   string
	width  float64
	height float64
	glyphs map[core.Orientation]rune
	color  core.Color
	valid  bool
}

// Name returns the sprite name the handle was looked up with.
func (h Handle) Name() string { return h.name }

// Valid reports whether the sprite exists in the catalog.
func (h Handle) Valid() bool { return h.valid }

// Color returns the sprite's terminal color.
func (h Handle) Color() core.Color { return h.color }

// WidthFor returns the width that keeps the sprite's aspect at the given height.
func (h Handle) WidthFor(height float64) float64 {
	return height * h.width / h.height
}

// HeightFor returns the height that keeps the sprite's aspect at the given width.
func (h Handle) HeightFor(width float64) float64 {
	return width * h.height / h.width
}

// Glyph returns the rune drawn for the given facing.
func (h Handle) Glyph(o core.Orientation) rune {
	if r, ok := h.glyphs[o]; ok {
		return r
	}
	if r, ok := h.glyphs[core.OrientationUp]; ok {
		return r
	}
	return '?'
}

func invalidHandle(name string) Handle {
	return Handle{
		name:   name,
		width:  1,
		height: 1,
		glyphs: map[core.Orientation]rune{core.OrientationUp: '?'},
		color:  core.ColorMagenta,
	}
}

// Catalog maps sprite names to handles. Lookups are safe for concurrent use.
type Catalog struct {
	handles map[string]Handle
	logger  *log.Logger

	mu      sync.Mutex
	missing map[string]struct{}
}

// NewCatalog builds a catalog from sprite configuration. Malformed entries
// are logged and left out, so looking them up yields an invalid handle.
func NewCatalog(sprites map[string]config.SpriteConfig, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Catalog{
		handles: make(map[string]Handle, len(sprites)),
		logger:  logger,
		missing: make(map[string]struct{}),
	}
	for name, sc := range sprites {
		if sc.Width <= 0 || sc.Height <= 0 {
			logger.Error("sprite has no size", "sprite", name, "width", sc.Width, "height", sc.Height)
			continue
		}
		c.handles[name] = Handle{
			name:   name,
			width:  sc.Width,
			height: sc.Height,
			glyphs: parseGlyphs(sc),
			color:  core.ParseColor(sc.Color),
			valid:  true,
		}
	}
	return c
}

// Lookup returns the handle for name. Unknown names return an invalid
// placeholder and are reported once.
func (c *Catalog) Lookup(name string) Handle {
	if h, ok := c.handles[name]; ok {
		return h
	}

	c.mu.Lock()
	_, seen := c.missing[name]
	c.missing[name] = struct{}{}
	c.mu.Unlock()
	if !seen {
		c.logger.Error("unknown sprite", "sprite", name)
	}
	return invalidHandle(name)
}

// Missing lists every unknown name looked up so far, sorted.
func (c *Catalog) Missing() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	names := make([]string, 0, len(c.missing))
	for n := range c.missing {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

var orientationKeys = map[string]core.Orientation{
	"up":    core.OrientationUp,
	"down":  core.OrientationDown,
	"left":  core.OrientationLeft,
	"right": core.OrientationRight,
}

func parseGlyphs(sc config.SpriteConfig) map[core.Orientation]rune {
	glyphs := make(map[core.Orientation]rune, 4)
	if r := firstRune(sc.Glyph); r != 0 {
		for _, o := range orientationKeys {
			glyphs[o] = r
		}
	}
	for key, g := range sc.Glyphs {
		o, ok := orientationKeys[strings.ToLower(key)]
		if !ok {
			continue
		}
		if r := firstRune(g); r != 0 {
			glyphs[o] = r
		}
	}
	return glyphs
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}
