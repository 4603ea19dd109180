package marina

import (
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

const maxNameLen = 127

// Boat is a single tracked vessel: its name, length in feet, where it is
// kept and the running balance its owner owes the marina.
type Boat struct {
	Name     string
	Length   int
	Location Location
	Owed     decimal.Decimal

	// assigned by the fleet on insert
	folded string
	seq    uint64
}

// NewBoat builds a record. Names longer than 127 bytes are truncated; a name
// must never contain the field delimiter, which is the caller's job to
// guarantee on input.
func NewBoat(name string, length int, loc Location, owed decimal.Decimal) *Boat {
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}

	return &Boat{
		Name:     name,
		Length:   length,
		Location: loc,
		Owed:     owed,
	}
}

func (b *Boat) clone() *Boat {
	var cp Boat
	if err := copier.Copy(&cp, b); err != nil {
		panic("could not copy boat: " + err.Error())
	}

	return &cp
}
