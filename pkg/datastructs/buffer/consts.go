package buffer

const (
	// defaultRingSlots is the number of slots a new Ring allocates up front.
	// The backing array doubles from here until it covers the bound.
	defaultRingSlots = 16
)
