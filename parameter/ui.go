package parameter

import "time"

// Layout & Margins
const (
	// CellWidth is terminal columns per grid cell, keeping cells roughly square
	CellWidth = 2

	// TopMargin holds the header line above the arena border
	TopMargin = 1

	// LeftMargin is padding left of the arena border
	LeftMargin = 1

	// PanelGap separates the arena border from the side panel
	PanelGap = 2

	// PanelWidth is the scoreboard column width
	PanelWidth = 34

	// FooterHeight holds the key help line
	FooterHeight = 1
)

// Glyphs
const (
	HeadChar      = '@'
	BodyChar      = '█'
	ReviveChar    = '+'
	PenetrateChar = '*'
)

// Refresh
const (
	// MinPickupBrightness is the dimmest a nearly expired pickup is drawn
	MinPickupBrightness = 0.35
)

// Messages
const (
	// StatusMessageTimeout is how long a HUD status line stays up
	StatusMessageTimeout = 2 * time.Second
)
