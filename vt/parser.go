package vt

import "log/slog"

// parserState is the discriminated parser state from spec.md section 3.
type parserState uint8

const (
	stateGround parserState = iota
	stateEscape
	stateCSI
)

// parser is the byte-driven Mealy-style state machine from spec.md
// section 4.2. It holds no grid state of its own; every recognized
// control sequence is dispatched straight to a backend, and DA replies
// go straight to a host writer.
type parser struct {
	state parserState

	params     *parameters
	privMarker byte
	csiFirst   bool // true only for the very next byte after '['

	b  backend
	hw HostWriteFunc

	diag *slog.Logger
}

func newParser(b backend) *parser {
	return &parser{
		state:  stateGround,
		params: newParameters(),
		b:      b,
	}
}

func (p *parser) logf(msg string, args ...any) {
	if p.diag != nil {
		p.diag.Debug(msg, args...)
	}
}

// feed advances the state machine by one byte, dispatching zero or
// more backend calls before returning. A single call is atomic with
// respect to the backend, per spec.md section 5.
func (p *parser) feed(b byte) {
	switch p.state {
	case stateGround:
		p.feedGround(b)
	case stateEscape:
		p.feedEscape(b)
	case stateCSI:
		p.feedCSI(b)
	}
}

func (p *parser) feedGround(b byte) {
	switch {
	case b == ctrlBS:
		p.b.Backspace()
	case b == ctrlTAB:
		p.b.HorizontalTab()
	case b == ctrlLF || b == ctrlVT || b == ctrlFF:
		p.b.Linefeed()
	case b == ctrlCR:
		p.b.CarriageReturn()
	case b == esc:
		p.params.reset()
		p.privMarker = 0
		p.state = stateEscape
	case b == 0x00 || b == ctrlBEL:
		// ignored C0 controls
	case b < 0x20:
		// other unlisted C0 controls: ignored
	default: // 0x20..0xFF
		p.b.DisplayChar(b)
	}
}

func (p *parser) feedEscape(b byte) {
	switch b {
	case '[':
		p.csiFirst = true
		p.state = stateCSI
	case 'D':
		p.b.Linefeed()
		p.state = stateGround
	case 'E':
		p.b.CarriageReturn()
		p.b.Linefeed()
		p.state = stateGround
	case 'M':
		p.b.ReverseIndex()
		p.state = stateGround
	case 'c':
		p.b.FullReset()
		p.state = stateGround
	default:
		p.logf("ignoring unsupported ESC dispatch", "final", string(b))
		p.state = stateGround
	}
}

func (p *parser) feedCSI(b byte) {
	first := p.csiFirst
	p.csiFirst = false

	switch {
	case b == '?' && first:
		p.privMarker = '?'
	case b >= '0' && b <= '9':
		p.params.digit(int(b - '0'))
	case b == ';':
		p.params.separator()
	case b >= 0x40 && b <= 0x7e:
		p.dispatchCSI(b)
		p.state = stateGround
	default:
		p.logf("aborting CSI sequence on unexpected byte", "b", b)
		p.state = stateGround
	}
}

// dispatchCSI applies the final-byte dispatch table from spec.md
// section 4.2. Private-marker sequences other than the ones identical
// to the public form are ignored, matching spec.md's "ignored" rule --
// none of the finals below have a distinct DEC-private meaning here.
func (p *parser) dispatchCSI(final byte) {
	priv := p.privMarker != 0
	params := p.params

	switch final {
	case csiCUU:
		if priv {
			break
		}
		n := max1(params.get(0, 0))
		p.b.MoveRelative(0, -n)
	case csiCUD:
		if priv {
			break
		}
		n := max1(params.get(0, 0))
		p.b.MoveRelative(0, n)
	case csiCUF:
		if priv {
			break
		}
		n := max1(params.get(0, 0))
		p.b.MoveRelative(n, 0)
	case csiCUB:
		if priv {
			break
		}
		n := max1(params.get(0, 0))
		p.b.MoveRelative(-n, 0)
	case csiCHA:
		if priv {
			break
		}
		n := max1(params.get(0, 0))
		p.b.MoveColumnAbsolute(n - 1)
	case csiCUP, csiHVP:
		if priv {
			break
		}
		p1 := max1(params.get(0, 0))
		p2 := max1(params.get(1, 0))
		p.b.MoveAbsolute(p2-1, p1-1)
	case csiED:
		if priv {
			break
		}
		switch params.get(0, 0) {
		case 0:
			p.b.EraseDisplayFromCursor()
		case 1:
			p.b.EraseDisplayToCursor()
		case 2:
			p.b.EraseDisplay()
		}
	case csiEL:
		if priv {
			break
		}
		switch params.get(0, 0) {
		case 0:
			p.b.EraseLineFromCursor()
		case 1:
			p.b.EraseLineToCursor()
		case 2:
			p.b.EraseLine()
		}
	case csiIL:
		if priv {
			break
		}
		p.b.InsertLines(max1(params.get(0, 0)))
	case csiDL:
		if priv {
			break
		}
		p.b.DeleteLines(max1(params.get(0, 0)))
	case csiDCH:
		if priv {
			break
		}
		p.b.DeleteCharacters(max1(params.get(0, 0)))
	case csiDA:
		if priv {
			break
		}
		p.hw.write(deviceAttributesReply)
	case csiSGR:
		if priv {
			break
		}
		if params.n == 0 {
			p.b.SelectGraphicRendition([]int{0})
		} else {
			p.b.SelectGraphicRendition(params.all())
		}
	case csiSTBM:
		if priv {
			break
		}
		top := max1(params.get(0, 0)) - 1
		bottomSet := params.has(1)
		bottom := 0
		if bottomSet {
			bottom = params.get(1, 0) - 1
		}
		p.b.SetMargins(top, bottom, bottomSet)
	default:
		p.logf("ignoring unsupported CSI final byte", "final", string(final))
	}
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
