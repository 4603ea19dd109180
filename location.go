package marina

import (
	"strconv"
	"strings"
)

// LocationKind identifies where a boat is kept.
type LocationKind int

const (
	KindSlip LocationKind = iota
	KindLand
	KindTrailor
	KindStorage
)

// String returns the canonical lowercase wire word for the kind. Anything
// outside the enum falls back to "slip"; a closed Location variant never
// produces such a value.
func (k LocationKind) String() string {
	switch k {
	case KindSlip:
		return "slip"
	case KindLand:
		return "land"
	case KindTrailor:
		return "trailor"
	case KindStorage:
		return "storage"
	default:
		return "slip"
	}
}

// ParseLocationKind maps a kind word to its LocationKind. Comparison is
// case-insensitive; unrecognized words fall back to KindSlip rather than
// failing.
func ParseLocationKind(word string) LocationKind {
	switch strings.ToLower(word) {
	case "slip":
		return KindSlip
	case "land":
		return KindLand
	case "trailor":
		return KindTrailor
	case "storage":
		return KindStorage
	default:
		return KindSlip
	}
}

// Location is a closed variant: exactly one concrete shape of identifying
// detail exists per kind.
type Location interface {
	Kind() LocationKind
	detail() string
}

// Slip keeps a boat in a numbered slip.
type Slip struct {
	Number int
}

func (s Slip) Kind() LocationKind { return KindSlip }
func (s Slip) detail() string     { return strconv.Itoa(s.Number) }

// Land keeps a boat in a lettered bay on land.
type Land struct {
	Bay byte
}

func (l Land) Kind() LocationKind { return KindLand }
func (l Land) detail() string     { return string(rune(l.Bay)) }

// Trailor keeps a boat on a trailer identified by its license tag.
type Trailor struct {
	Tag string
}

func (t Trailor) Kind() LocationKind { return KindTrailor }
func (t Trailor) detail() string     { return t.Tag }

// Storage keeps a boat in a numbered storage space.
type Storage struct {
	Space int
}

func (s Storage) Kind() LocationKind { return KindStorage }
func (s Storage) detail() string     { return strconv.Itoa(s.Space) }

const maxTagLen = 31

// parseLocation builds the variant for kind from its raw detail text.
// Numeric details degrade to 0 on malformed text, license tags are truncated
// to 31 bytes.
func parseLocation(kind LocationKind, detail string) Location {
	switch kind {
	case KindLand:
		if detail == "" {
			return Land{}
		}
		return Land{Bay: detail[0]}
	case KindTrailor:
		if len(detail) > maxTagLen {
			detail = detail[:maxTagLen]
		}
		return Trailor{Tag: detail}
	case KindStorage:
		return Storage{Space: intOrZero(detail)}
	default:
		return Slip{Number: intOrZero(detail)}
	}
}

func intOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}

	return n
}
