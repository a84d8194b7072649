package vt

// HostWriteFunc is the host-writer interface from spec.md section 6: a
// caller-supplied sink the parser invokes to send reply bytes (DA
// responses) back to the host program. The core never performs I/O of
// its own; a nil HostWriteFunc silently discards replies.
type HostWriteFunc func([]byte)

func (f HostWriteFunc) write(p []byte) {
	if f != nil {
		f(p)
	}
}
