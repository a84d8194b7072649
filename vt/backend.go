package vt

// backend is the capability set the parser drives. spec.md section 9
// calls for collapsing the source's per-operation function-pointer
// table into a single interface once dispatch is a direct method call;
// *Screen is the only implementation, but keeping the seam lets tests
// exercise the parser against a fake.
type backend interface {
	DisplayChar(ch byte)
	Backspace()
	HorizontalTab()
	Linefeed()
	CarriageReturn()

	MoveRelative(dx, dy int)
	MoveAbsolute(x, y int)
	MoveColumnAbsolute(x int)
	ReverseIndex()

	EraseLine()
	EraseLineToCursor()
	EraseLineFromCursor()
	EraseDisplay()
	EraseDisplayToCursor()
	EraseDisplayFromCursor()

	InsertLines(n int)
	DeleteLines(n int)
	DeleteCharacters(n int)

	SetMargins(top, bottom int, bottomSet bool)
	SelectGraphicRendition(params []int)

	FullReset()
}

var _ backend = (*Screen)(nil)
