package marina

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/tidwall/btree"
)

var ErrFleetFull = errors.New("fleet is at capacity")
var ErrBoatNotFound = errors.New("no boat with that name")
var ErrOverpayment = errors.New("payment exceeds amount owed")

const castPanic = "how could a fleet item not be of type *Boat"

// fleet is the in-memory record store: boats held in a btree ordered by
// case-folded name so that iteration is always the sorted view.
type fleet struct {
	boats *btree.BTree
	cfg   *Config
	seq   uint64
}

func newFleet(cfg *Config) *fleet {
	return &fleet{
		boats: btree.NewNonConcurrent(byBoatName),
		cfg:   cfg,
	}
}

func (f *fleet) count() int {
	return f.boats.Len()
}

// add appends a boat if capacity allows. Same-name duplicates are not
// rejected; lookups only ever touch the first match in sorted order.
func (f *fleet) add(b *Boat) error {
	if f.boats.Len() >= f.cfg.Capacity {
		return errors.Wrapf(ErrFleetFull, "capacity %d", f.cfg.Capacity)
	}

	f.seq++
	b.seq = f.seq
	b.folded = foldName(b.Name)
	f.boats.Set(b)

	return nil
}

// findByName returns the first boat in sorted order whose name matches under
// case-insensitive comparison.
func (f *fleet) findByName(name string) (*Boat, error) {
	folded := foldName(name)

	var found *Boat
	f.boats.Ascend(&Boat{folded: folded}, func(i interface{}) bool {
		b, ok := i.(*Boat)
		if !ok {
			panic(castPanic)
		}

		if b.folded == folded {
			found = b
		}

		return false
	})

	if found == nil {
		return nil, errors.Wrapf(ErrBoatNotFound, "name %q", name)
	}

	return found, nil
}

func (f *fleet) remove(name string) error {
	b, err := f.findByName(name)
	if err != nil {
		return err
	}

	f.boats.Delete(b)

	return nil
}

// applyPayment subtracts amount from the balance of the first boat matching
// name. Paying the exact balance is allowed and zeroes it; paying more fails
// with ErrOverpayment and leaves the balance untouched.
func (f *fleet) applyPayment(name string, amount decimal.Decimal) error {
	b, err := f.findByName(name)
	if err != nil {
		return err
	}

	if amount.GreaterThan(b.Owed) {
		return errors.Wrapf(ErrOverpayment, "amount owed is %s", b.Owed.StringFixed(2))
	}

	b.Owed = b.Owed.Sub(amount)

	return nil
}

// monthlyUpdate charges every boat its per-foot monthly rate times its
// length. Pure accumulation, no failure mode.
func (f *fleet) monthlyUpdate() {
	f.ascend(func(b *Boat) bool {
		charge := f.cfg.Rate(b.Location.Kind()).Mul(decimal.NewFromInt(int64(b.Length)))
		b.Owed = b.Owed.Add(charge)
		return true
	})
}

// sortedView returns clones of all boats in sorted order; live records never
// leak out of the fleet.
func (f *fleet) sortedView() []Boat {
	view := make([]Boat, 0, f.boats.Len())
	f.ascend(func(b *Boat) bool {
		view = append(view, *b.clone())
		return true
	})

	return view
}

func (f *fleet) ascend(it func(b *Boat) bool) {
	f.boats.Ascend(nil, func(i interface{}) bool {
		b, ok := i.(*Boat)
		if !ok {
			panic(castPanic)
		}

		return it(b)
	})
}
