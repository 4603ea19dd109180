package marina

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

var ErrWriteFailed = errors.New("ledger file write failed")
var ErrSourceReadFailed = errors.New("ledger file read failed")

// persistence reads and rewrites the ledger file. File handles are scoped to
// each call and never held open between operations.
type persistence struct {
	path    string
	loadSum uint64
	loaded  bool
}

func newPersistence(path string) *persistence {
	return &persistence{path: path}
}

// load feeds every well-formed line to cb and reports how many lines were
// ignored: malformed lines and lines dropped by cb (over capacity) are
// skipped, never aborting the load. A missing file is not an error.
func (p *persistence) load(cb func(b *Boat) error) (ignored int, err error) {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}

		return 0, errors.Wrapf(ErrSourceReadFailed, "could not open %s: %s", p.path, err)
	}

	p.loadSum = xxhash.Sum64(raw)
	p.loaded = true

	sc := bufio.NewScanner(bytes.NewReader(raw))
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		b, parseErr := ParseLine(line)
		if parseErr != nil {
			ignored++
			continue
		}

		if cbErr := cb(b); cbErr != nil {
			ignored++
		}
	}

	if scErr := sc.Err(); scErr != nil {
		return ignored, errors.Wrapf(ErrSourceReadFailed, "could not read %s: %s", p.path, scErr)
	}

	return ignored, nil
}

// unchanged reports whether image is byte-identical to the file content seen
// at load, in which case a rewrite can be skipped.
func (p *persistence) unchanged(image []byte) bool {
	return p.loaded && xxhash.Sum64(image) == p.loadSum
}

// save rewrites the file with image through a temp file and a rename, so a
// failed write never corrupts the previous content.
func (p *persistence) save(image []byte) error {
	tmp := p.path + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(ErrWriteFailed, "could not create %s: %s", tmp, err)
	}

	if _, err := f.Write(image); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return errors.Wrapf(ErrWriteFailed, "could not write %s: %s", tmp, err)
	}

	if err := f.Sync(); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return errors.Wrapf(ErrWriteFailed, "could not sync %s: %s", tmp, err)
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(ErrWriteFailed, "could not close %s: %s", tmp, err)
	}

	if err := os.Rename(tmp, p.path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(ErrWriteFailed, "could not replace %s with %s: %s", p.path, tmp, err)
	}

	p.loadSum = xxhash.Sum64(image)
	p.loaded = true

	return nil
}
