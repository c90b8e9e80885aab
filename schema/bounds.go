package schema

// Bounds is the smallest and largest index ever written.
type Bounds struct {
	First uint16
	Last  uint16
}

// Morph widens b to include index and reports whether anything changed
func (b *Bounds) Morph(index uint16) bool {

	changes := 0

	if index < b.First {
		b.First = index
		changes += 1
	}
	if index > b.Last {
		b.Last = index
		changes += 1
	}

	return changes != 0
}
