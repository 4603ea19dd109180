package marina

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var ErrLedgerAlreadyClosed = errors.New("ledger already closed")

// Ledger is the public handle over the fleet and its backing file. It is
// single-user by design: one caller owns it from Open until the Closer runs.
type Ledger struct {
	fleet   *fleet
	p       *persistence
	cfg     *Config
	ignored int
	closed  bool
}

type Closer func() error

func NullCloser() error { return nil }

// Open loads the ledger file at path and returns the handle together with a
// Closer that saves and releases it. A missing file yields an empty ledger,
// not an error. A nil cfg means defaults.
func Open(path string, cfg *Config) (*Ledger, Closer, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	cfg.applyDefaults()

	l := &Ledger{
		fleet: newFleet(cfg),
		p:     newPersistence(path),
		cfg:   cfg,
	}

	ignored, err := l.p.load(func(b *Boat) error {
		return l.fleet.add(b)
	})
	if err != nil {
		return nil, NullCloser, err
	}

	l.ignored = ignored

	return l, l.close, nil
}

func (l *Ledger) close() error {
	if l.closed {
		return ErrLedgerAlreadyClosed
	}

	err := l.Flush()

	l.closed = true
	l.fleet = nil
	l.p = nil

	return err
}

// Flush rewrites the backing file with one line per boat in sorted order,
// fully replacing the previous content. The rewrite is skipped when the file
// already holds exactly this image.
func (l *Ledger) Flush() error {
	img := l.image()
	if l.p.unchanged(img) {
		return nil
	}

	return l.p.save(img)
}

func (l *Ledger) image() []byte {
	buf := &bytes.Buffer{}
	l.fleet.ascend(func(b *Boat) bool {
		buf.WriteString(SerializeLine(b))
		buf.WriteByte('\n')
		return true
	})

	return buf.Bytes()
}

// Add appends a boat, failing with ErrFleetFull at the capacity bound.
func (l *Ledger) Add(b *Boat) error {
	return l.fleet.add(b)
}

// Remove deletes the first boat matching name under case-insensitive
// comparison, or fails with ErrBoatNotFound.
func (l *Ledger) Remove(name string) error {
	return l.fleet.remove(name)
}

// Find returns a copy of the first boat matching name in sorted order.
func (l *Ledger) Find(name string) (*Boat, error) {
	b, err := l.fleet.findByName(name)
	if err != nil {
		return nil, err
	}

	return b.clone(), nil
}

// ApplyPayment subtracts amount from the matching boat's balance. See
// fleet.applyPayment for the boundary semantics.
func (l *Ledger) ApplyPayment(name string, amount decimal.Decimal) error {
	return l.fleet.applyPayment(name, amount)
}

// MonthlyUpdate applies the location-based monthly charge to every boat.
func (l *Ledger) MonthlyUpdate() {
	l.fleet.monthlyUpdate()
}

// SortedView returns copies of all boats ordered by case-insensitive name.
func (l *Ledger) SortedView() []Boat {
	return l.fleet.sortedView()
}

func (l *Ledger) Count() int {
	return l.fleet.count()
}

// IgnoredLines reports how many source lines were skipped during load.
func (l *Ledger) IgnoredLines() int {
	return l.ignored
}
