package common

const (
	// Gravity is the reference gravitational acceleration of the physics space
	// in world units per second squared. Gravity scales are relative to it.
	Gravity = 9.8

	TicksPerSecond = 60
	FixedDelta     = 1.0 / TicksPerSecond

	// TileSize is the edge length of a level tile in world units.
	TileSize = 1.0
	// PixelsPerUnit converts world units to screen pixels.
	PixelsPerUnit = 32.0

	BaseWidth  = 1280
	BaseHeight = 720
)
