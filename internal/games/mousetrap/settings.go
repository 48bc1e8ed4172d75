package mousetrap

import (
	"github.com/vovakirdan/mousetrap/internal/assets"
	"github.com/vovakirdan/mousetrap/internal/config"
	"github.com/vovakirdan/mousetrap/internal/core"
	"github.com/vovakirdan/mousetrap/internal/games/mousetrap/layout"
)

const backgroundSprite = "background"

// settings is the loaded configuration with every derived size worked out.
type settings struct {
	field  layout.Field
	params layout.Params

	playerSize  core.Size
	playerSpeed float64
	trapSize    core.Size
	cheeseSize  core.Size

	cheeseClearance   float64
	cheeseTime        int
	maxPickupAttempts int

	timer      config.TimerConfig
	panSpeed   float64
	paw        config.PawConfig
	startLevel int

	playerSprite     assets.Handle
	trapSprite       assets.Handle
	cheeseSprite     assets.Handle
	backgroundSprite assets.Handle
	pawSprites       []assets.Handle
}

// newSettings resolves sprites and derives entity widths from their aspect.
func newSettings(cfg config.MousetrapConfig, catalog *assets.Catalog) settings {
	s := settings{
		field:             layout.FieldFromConfig(cfg.Field),
		params:            layout.ParamsFromConfig(cfg.Field, cfg.Generation),
		playerSpeed:       cfg.Player.Speed,
		cheeseClearance:   cfg.Cheese.Clearance,
		cheeseTime:        cfg.Cheese.TimeValue,
		maxPickupAttempts: cfg.Generation.MaxPickupAttempts,
		timer:             cfg.Timer,
		panSpeed:          cfg.Pan.Speed,
		paw:               cfg.Paw,
		startLevel:        max(cfg.StartLevel, 1),

		playerSprite:     catalog.Lookup(cfg.Player.Sprite),
		trapSprite:       catalog.Lookup(cfg.Traps.Sprite),
		cheeseSprite:     catalog.Lookup(cfg.Cheese.Sprite),
		backgroundSprite: catalog.Lookup(backgroundSprite),
	}

	s.playerSize = core.Size{W: s.playerSprite.WidthFor(cfg.Player.Height), H: cfg.Player.Height}
	s.trapSize = core.Size{W: s.trapSprite.WidthFor(cfg.Traps.Height), H: cfg.Traps.Height}
	s.cheeseSize = core.Size{W: s.cheeseSprite.WidthFor(cfg.Cheese.Height), H: cfg.Cheese.Height}

	for _, name := range cfg.Paw.Variants {
		s.pawSprites = append(s.pawSprites, catalog.Lookup(name))
	}
	if len(s.pawSprites) == 0 {
		s.pawSprites = append(s.pawSprites, catalog.Lookup("paw"))
	}
	return s
}
