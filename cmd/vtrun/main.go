// Command vtrun spawns a shell under a pty, feeds its output through a
// vt.Core, and paints the resulting grid to the real terminal. It is the
// I/O harness spec.md deliberately keeps out of the core: pty spawning,
// raw-mode handling and window-change tracking, and color rendering.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"

	"github.com/creack/pty"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/coredump-labs/vt102/logging"
	"github.com/coredump-labs/vt102/vt"
)

func main() {
	shell := flag.String("shell", envOr("SHELL", "/bin/sh"), "shell to spawn under the pty")
	logfile := flag.String("debuglog", "", "if set, write ignored-parameter/escape diagnostics here")
	flag.Parse()

	if err := run(*shell, *logfile); err != nil {
		fmt.Fprintln(os.Stderr, "vtrun:", err)
		os.Exit(1)
	}
}

func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func run(shell, logfile string) error {
	diag, err := logging.New(logfile, slog.LevelDebug)
	if err != nil {
		return fmt.Errorf("setting up diagnostics: %w", err)
	}

	w, h, err := term.GetSize(int(os.Stdin.Fd()))
	if err != nil {
		w, h = vt.DefaultWidth, vt.DefaultHeight
	}

	ptmx, err := pty.StartWithSize(exec.Command(shell), &pty.Winsize{Rows: uint16(h), Cols: uint16(w)})
	if err != nil {
		return fmt.Errorf("starting %s under a pty: %w", shell, err)
	}
	defer ptmx.Close()

	core := vt.NewCore(w, h)
	core.SetDiagnostics(diag)
	core.SetHostWriter(func(p []byte) { ptmx.Write(p) })

	orig, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("putting stdin in raw mode: %w", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), orig)

	resizeCh := make(chan winsize, 1)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)
	go watchResize(sigCh, ptmx, resizeCh)

	go io.Copy(ptmx, os.Stdin)

	r := &renderer{out: termenv.NewOutput(os.Stdout)}
	return pump(ptmx, core, r, resizeCh)
}

type winsize struct{ w, h int }

// watchResize computes the new terminal size and resizes the pty
// directly (an OS-level operation independent of the core), but only
// ever hands the size itself to pump over resizeCh: vt.Core and
// vt.Screen are documented as single-threaded with no internal locking
// (spec.md section 5), so every Core/Screen call — Feed, Resize, the
// render reads — must happen on the one goroutine that owns it, which
// is pump's, not this one. The channel is buffered 1 and always holds
// the latest size: a pending-but-unconsumed resize is replaced rather
// than queued, since only the most recent size matters.
func watchResize(sigCh <-chan os.Signal, ptmx *os.File, resizeCh chan winsize) {
	for range sigCh {
		w, h, err := term.GetSize(int(os.Stdin.Fd()))
		if err != nil {
			continue
		}
		pty.Setsize(ptmx, &pty.Winsize{Rows: uint16(h), Cols: uint16(w)})

		select {
		case resizeCh <- winsize{w, h}:
		default:
			select {
			case <-resizeCh:
			default:
			}
			resizeCh <- winsize{w, h}
		}
	}
}

// ptyChunk is one Read result handed from readPty to pump.
type ptyChunk struct {
	data []byte
	err  error
}

// readPty is the only goroutine that touches ptmx.Read; it owns no Core
// state, so it can block on I/O freely while pump's select loop stays
// responsive to resizeCh.
func readPty(ptmx *os.File, out chan<- ptyChunk) {
	buf := make([]byte, 4096)
	for {
		n, err := ptmx.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			out <- ptyChunk{data: data}
		}
		if err != nil {
			out <- ptyChunk{err: err}
			return
		}
	}
}

// pump is the single goroutine that owns core for its entire lifetime:
// every Feed, Resize, and Screen read happens here, driven by a select
// over pty output and pending resizes, so nothing else may touch core
// concurrently. spec.md's core performs no I/O of its own; this loop is
// the entire "I/O plumbing" caller spec.md section 1 assumes exists
// around it.
func pump(ptmx *os.File, core *vt.Core, r *renderer, resizeCh <-chan winsize) error {
	chunks := make(chan ptyChunk)
	go readPty(ptmx, chunks)

	for {
		select {
		case c := <-chunks:
			if len(c.data) > 0 {
				for _, b := range c.data {
					core.Feed(b)
				}
				r.paint(core.Screen())
			}
			if c.err != nil {
				if c.err == io.EOF {
					return nil
				}
				return c.err
			}
		case sz := <-resizeCh:
			core.Resize(sz.w, sz.h)
			r.paint(core.Screen())
		}
	}
}

// renderer turns a Screen's dirty rows into ANSI output using termenv's
// color profile detection, so truecolor terminals and dumb ones both get
// a rendering that matches their real capability.
type renderer struct {
	out *termenv.Output
}

var vtColorToANSI = [8]termenv.ANSIColor{
	termenv.ANSIBlack,
	termenv.ANSIRed,
	termenv.ANSIGreen,
	termenv.ANSIYellow,
	termenv.ANSIBlue,
	termenv.ANSIMagenta,
	termenv.ANSICyan,
	termenv.ANSIWhite,
}

func (r *renderer) paint(s *vt.Screen) {
	if !s.ScreenDirty() {
		return
	}

	var b strings.Builder
	for row := 0; row < s.Height(); row++ {
		if !s.DirtyLine(row) {
			continue
		}
		fmt.Fprintf(&b, "\x1b[%d;1H\x1b[2K", row+1)
		b.WriteString(r.renderRow(s, row))
	}
	fmt.Fprintf(&b, "\x1b[%d;%dH", s.CursorY()+1, s.CursorX()+1)

	io.WriteString(r.out, b.String())
	s.ClearDirty()
}

// renderRow groups the row into runs of matching fg/bg so termenv only
// emits a color escape at each attribute change, not per cell.
func (r *renderer) renderRow(s *vt.Screen, row int) string {
	width := s.Width()
	chars := s.Chars()
	attrs := s.Attrs()
	start := row * width

	var b strings.Builder
	runStart, runFg, runBg := 0, int(attrs[start]&0x07), int((attrs[start]>>4)&0x07)

	flush := func(end int) {
		if end <= runStart {
			return
		}
		text := string(chars[start+runStart : start+end])
		b.WriteString(r.out.String(text).Foreground(vtColorToANSI[runFg]).Background(vtColorToANSI[runBg]).String())
	}

	for col := 1; col < width; col++ {
		fg := int(attrs[start+col] & 0x07)
		bg := int((attrs[start+col] >> 4) & 0x07)
		if fg != runFg || bg != runBg {
			flush(col)
			runStart, runFg, runBg = col, fg, bg
		}
	}
	flush(width)

	return b.String()
}
