package cmd

import (
	"fmt"
	"io"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/nauticalventures/marina"
)

// displayAmount formats a balance for the screen, e.g. "$1,450.00".
func displayAmount(d decimal.Decimal) string {
	return money.New(d.Shift(2).IntPart(), money.USD).Display()
}

func locationColumn(loc marina.Location) string {
	switch v := loc.(type) {
	case marina.Slip:
		return fmt.Sprintf("   slip   # %2d", v.Number)
	case marina.Land:
		return fmt.Sprintf("   land      %c", v.Bay)
	case marina.Trailor:
		return fmt.Sprintf("trailor %6s", v.Tag)
	case marina.Storage:
		return fmt.Sprintf("storage   # %2d", v.Space)
	default:
		return "   slip   #  0"
	}
}

func printInventory(out io.Writer, ledger *marina.Ledger) {
	for _, b := range ledger.SortedView() {
		fmt.Fprintf(out, "%-22s %2d' %s   Owes %10s\n",
			b.Name, b.Length, locationColumn(b.Location), displayAmount(b.Owed))
	}

	fmt.Fprintln(out)
}
