package vt

import "log/slog"

// Core wires the parser and Screen backend together and is the type
// callers actually use. It is the sole owner of the grid and parser
// state (spec.md section 3's "Ownership"), mutated exclusively by
// Feed and Resize.
type Core struct {
	screen *Screen
	parser *parser
}

// NewCore creates a core sized width x height, per spec.md section 3's
// init(width, height) lifecycle entry point.
func NewCore(width, height int) *Core {
	s := NewScreen(width, height)
	return &Core{
		screen: s,
		parser: newParser(s),
	}
}

// Feed advances the parser by one byte. It never fails: spec.md's
// error handling design keeps malformed sequences from ever reaching
// the caller as an error.
func (c *Core) Feed(b byte) {
	c.parser.feed(b)
}

// Resize reallocates the grid, per spec.md section 4.1.
func (c *Core) Resize(w, h int) error {
	return c.screen.Resize(w, h)
}

// Screen exposes the render interface (spec.md section 6): read-only
// grid/cursor access, plus dirty flags the renderer clears once it has
// painted a frame.
func (c *Core) Screen() *Screen {
	return c.screen
}

// SetHostWriter installs the sink the parser calls for DA replies. A
// nil writer (the default) silently discards them.
func (c *Core) SetHostWriter(hw HostWriteFunc) {
	c.parser.hw = hw
}

// SetDiagnostics attaches an optional debug sink for parameters and
// escapes the core silently ignores; never required for correct
// operation.
func (c *Core) SetDiagnostics(l *slog.Logger) {
	c.parser.diag = l
	c.screen.SetDiagnostics(l)
}
