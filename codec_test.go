package marina

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseLine(t *testing.T) {
	tt := []struct {
		name       string
		in         string
		wantName   string
		wantLength int
		wantLoc    Location
		wantOwed   string
	}{
		{
			name:       "slip",
			in:         "Big Brother,20,slip,27,1450.00",
			wantName:   "Big Brother",
			wantLength: 20,
			wantLoc:    Slip{Number: 27},
			wantOwed:   "1450.00",
		},
		{
			name:       "land",
			in:         "Vamoose,34,land,C,50.00",
			wantName:   "Vamoose",
			wantLength: 34,
			wantLoc:    Land{Bay: 'C'},
			wantOwed:   "50.00",
		},
		{
			name:       "trailor",
			in:         "Brooks,34,trailor,AAR666,99.00",
			wantName:   "Brooks",
			wantLength: 34,
			wantLoc:    Trailor{Tag: "AAR666"},
			wantOwed:   "99.00",
		},
		{
			name:       "storage",
			in:         "Gypsea,28,storage,52,0.00",
			wantName:   "Gypsea",
			wantLength: 28,
			wantLoc:    Storage{Space: 52},
			wantOwed:   "0.00",
		},
		{
			name:       "unknown kind word falls back to slip",
			in:         "Foo,10,submarine,5,0.00",
			wantName:   "Foo",
			wantLength: 10,
			wantLoc:    Slip{Number: 5},
			wantOwed:   "0.00",
		},
		{
			name:       "kind word is case-insensitive",
			in:         "Nap Time,26,SLIP,14,100.00",
			wantName:   "Nap Time",
			wantLength: 26,
			wantLoc:    Slip{Number: 14},
			wantOwed:   "100.00",
		},
		{
			name:       "non-numeric detail degrades to zero",
			in:         "Dinghy,9,storage,big,12.00",
			wantName:   "Dinghy",
			wantLength: 9,
			wantLoc:    Storage{Space: 0},
			wantOwed:   "12.00",
		},
		{
			name:       "license tag truncated to 31 bytes",
			in:         "Roamer,30,trailor," + strings.Repeat("Z", 40) + ",75.50",
			wantName:   "Roamer",
			wantLength: 30,
			wantLoc:    Trailor{Tag: strings.Repeat("Z", 31)},
			wantOwed:   "75.50",
		},
		{
			name:       "trailing newline stripped",
			in:         "Drifter,18,slip,3,20.00\r\n",
			wantName:   "Drifter",
			wantLength: 18,
			wantLoc:    Slip{Number: 3},
			wantOwed:   "20.00",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseLine(tc.in)
			require.NoError(t, err)

			assert.Equal(t, tc.wantName, b.Name)
			assert.Equal(t, tc.wantLength, b.Length)
			assert.Equal(t, tc.wantLoc, b.Location)
			assert.Equal(t, tc.wantOwed, b.Owed.StringFixed(2))
		})
	}
}

func Test_ParseLine_Malformed(t *testing.T) {
	tt := []struct {
		name string
		in   string
	}{
		{name: "three fields", in: "OnlyThree,20,slip"},
		{name: "empty line", in: ""},
		{name: "empty name", in: ",20,slip,27,100.00"},
		{name: "non-numeric length", in: "Skiff,xx,slip,27,100.00"},
		{name: "non-numeric amount", in: "Skiff,20,slip,27,lots"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			b, err := ParseLine(tc.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrLineMalformed))
			assert.Nil(t, b)
		})
	}
}

func Test_SerializeLine(t *testing.T) {
	tt := []struct {
		name string
		b    *Boat
		want string
	}{
		{
			name: "slip",
			b:    NewBoat("Big Brother", 20, Slip{Number: 27}, decimal.RequireFromString("1450")),
			want: "Big Brother,20,slip,27,1450.00",
		},
		{
			name: "land",
			b:    NewBoat("Vamoose", 34, Land{Bay: 'C'}, decimal.RequireFromString("50")),
			want: "Vamoose,34,land,C,50.00",
		},
		{
			name: "trailor",
			b:    NewBoat("Brooks", 34, Trailor{Tag: "AAR666"}, decimal.RequireFromString("99.005")),
			want: "Brooks,34,trailor,AAR666,99.01",
		},
		{
			name: "storage",
			b:    NewBoat("Gypsea", 28, Storage{Space: 52}, decimal.Zero),
			want: "Gypsea,28,storage,52,0.00",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SerializeLine(tc.b))
		})
	}
}

func Test_Codec_RoundTrip(t *testing.T) {
	lines := []string{
		"Big Brother,20,slip,27,1450.00",
		"Vamoose,34,land,C,50.00",
		"Brooks,34,trailor,AAR666,99.00",
		"Gypsea,28,storage,52,0.00",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			b, err := ParseLine(line)
			require.NoError(t, err)
			assert.Equal(t, line, SerializeLine(b))
		})
	}
}
