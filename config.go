package marina

import (
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

const defaultCapacity = 120

// Default per-foot monthly rates.
var (
	defaultSlipRate    = decimal.RequireFromString("12.50")
	defaultLandRate    = decimal.RequireFromString("14.00")
	defaultTrailorRate = decimal.RequireFromString("25.00")
	defaultStorageRate = decimal.RequireFromString("11.20")
)

// Config carries the ledger's tunables: the soft capacity bound and the
// per-kind monthly rates. The zero value means "use defaults".
type Config struct {
	Capacity    int
	SlipRate    decimal.Decimal
	LandRate    decimal.Decimal
	TrailorRate decimal.Decimal
	StorageRate decimal.Decimal
}

func (cfg *Config) applyDefaults() {
	if cfg.Capacity == 0 {
		cfg.Capacity = defaultCapacity
	}

	if cfg.SlipRate.IsZero() {
		cfg.SlipRate = defaultSlipRate
	}

	if cfg.LandRate.IsZero() {
		cfg.LandRate = defaultLandRate
	}

	if cfg.TrailorRate.IsZero() {
		cfg.TrailorRate = defaultTrailorRate
	}

	if cfg.StorageRate.IsZero() {
		cfg.StorageRate = defaultStorageRate
	}
}

// Rate returns the per-foot monthly rate for kind. Anything outside the enum
// is charged the slip rate, in line with the kind word fallback.
func (cfg *Config) Rate(k LocationKind) decimal.Decimal {
	switch k {
	case KindLand:
		return cfg.LandRate
	case KindTrailor:
		return cfg.TrailorRate
	case KindStorage:
		return cfg.StorageRate
	default:
		return cfg.SlipRate
	}
}

var ErrConfigInvalid = errors.New("config file invalid")

// ConfigFromFile reads a JSON config file of the form
//
//	{"capacity": 200, "rates": {"slip": "13.00", "trailor": "27.50"}}
//
// Fields absent from the file keep their defaults.
func ConfigFromFile(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrConfigInvalid, "could not read %s: %s", path, err)
	}

	if !gjson.ValidBytes(raw) {
		return nil, errors.Wrapf(ErrConfigInvalid, "%s is not valid JSON", path)
	}

	cfg := &Config{}

	if v := gjson.GetBytes(raw, "capacity"); v.Exists() {
		cfg.Capacity = int(v.Int())
	}

	rates := []struct {
		path string
		dst  *decimal.Decimal
	}{
		{"rates.slip", &cfg.SlipRate},
		{"rates.land", &cfg.LandRate},
		{"rates.trailor", &cfg.TrailorRate},
		{"rates.storage", &cfg.StorageRate},
	}

	for _, r := range rates {
		v := gjson.GetBytes(raw, r.path)
		if !v.Exists() {
			continue
		}

		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return nil, errors.Wrapf(ErrConfigInvalid, "%s: %s", r.path, err)
		}

		*r.dst = d
	}

	cfg.applyDefaults()

	return cfg, nil
}
