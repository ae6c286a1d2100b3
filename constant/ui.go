package constant

// UIWidth is the rendered width of a UI panel in columns, not counting its frame.
const UIWidth = 62

// Frame strings. Each is exactly UIWidth+2 columns: one corner on either side.
const (
	UIBorder = "+==============================================================+"
	UILine   = "+--------------------------------------------------------------+"
)
