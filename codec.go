package marina

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var ErrLineMalformed = errors.New("record line malformed")

const fieldsPerLine = 5

// ParseLine maps one "name,length,kind,detail,owed" line to a Boat.
//
// The name may contain internal spaces but never a comma. An unrecognized
// kind word falls back to slip; the detail field is interpreted per kind
// with numeric text degrading to 0 when malformed. Structural failures
// (fewer than five fields, empty name, non-numeric length or amount) yield
// ErrLineMalformed so the caller can skip the line and keep going.
func ParseLine(line string) (*Boat, error) {
	line = strings.TrimRight(line, "\r\n")

	parts := strings.Split(line, ",")
	if len(parts) < fieldsPerLine {
		return nil, errors.Wrapf(ErrLineMalformed, "%d of %d fields in %q", len(parts), fieldsPerLine, line)
	}

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return nil, errors.Wrapf(ErrLineMalformed, "empty name in %q", line)
	}

	length, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, errors.Wrapf(ErrLineMalformed, "length %q in %q", parts[1], line)
	}

	owed, err := decimal.NewFromString(strings.TrimSpace(parts[4]))
	if err != nil {
		return nil, errors.Wrapf(ErrLineMalformed, "amount %q in %q", parts[4], line)
	}

	kind := ParseLocationKind(strings.TrimSpace(parts[2]))

	return NewBoat(name, length, parseLocation(kind, strings.TrimSpace(parts[3])), owed), nil
}

// SerializeLine is the inverse of ParseLine: five comma-separated fields,
// the kind as its canonical lowercase word, the amount owed with exactly two
// decimal digits.
func SerializeLine(b *Boat) string {
	return strings.Join([]string{
		b.Name,
		strconv.Itoa(b.Length),
		b.Location.Kind().String(),
		b.Location.detail(),
		b.Owed.StringFixed(2),
	}, ",")
}
