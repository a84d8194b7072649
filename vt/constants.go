// Package vt implements the byte-stream parser and screen-state backend
// for a DEC VT102 terminal emulator core. It owns no I/O: bytes come in
// through Feed, replies go out through a caller-supplied HostWriteFunc,
// and a renderer consumes the grid through Screen's read-only accessors.
package vt

// C0 control bytes handled from the Ground state.
const (
	ctrlBS  = 0x08 // backspace
	ctrlTAB = 0x09 // horizontal tab
	ctrlLF  = 0x0a // linefeed
	ctrlVT  = 0x0b // vertical tab, treated as linefeed
	ctrlFF  = 0x0c // form feed, treated as linefeed
	ctrlCR  = 0x0d // carriage return
	ctrlBEL = 0x07
	esc     = 0x1b
)

// CSI final bytes, per the dispatch table in spec.md section 4.2.
const (
	csiCUU  = 'A'
	csiCUD  = 'B'
	csiCUF  = 'C'
	csiCUB  = 'D'
	csiCHA  = 'G'
	csiCUP  = 'H'
	csiHVP  = 'f'
	csiED   = 'J'
	csiEL   = 'K'
	csiIL   = 'L'
	csiDL   = 'M'
	csiDCH  = 'P'
	csiDA   = 'c'
	csiSGR  = 'm'
	csiSTBM = 'r'
)

// deviceAttributesReply is the bit-exact DA reply: ESC [ ? 6 c.
var deviceAttributesReply = []byte{0x1b, 0x5b, 0x3f, 0x36, 0x63}

// Default and minimum screen dimensions.
const (
	DefaultWidth  = 80
	DefaultHeight = 24

	minWidth  = 10
	minHeight = 2
)

// maxParams is the number of CSI parameters the parser will accumulate
// before silently dropping the rest, per spec.md section 4.2.
const maxParams = 16

// Color indices, 0-7. Foreground default is white (7), background
// default is black (0).
const (
	ColorBlack = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

const (
	defaultFg = ColorWhite
	defaultBg = ColorBlack
)
