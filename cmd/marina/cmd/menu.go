package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/nauticalventures/marina"
)

const (
	menuPrompt   = "(I)nventory, (A)dd, (R)emove, (P)ayment, (M)onth, e(X)it : "
	namePrompt   = "Please enter the boat name                               : "
	dataPrompt   = "Please enter the boat data in CSV format                 : "
	amountPrompt = "Please enter the amount to be paid                       : "
)

// runMenu drives the interactive loop. It owns all prompting and input
// trimming; the ledger only ever sees already-cleaned strings. EOF saves and
// exits like an explicit e(X)it.
func runMenu(in io.Reader, out io.Writer, ledger *marina.Ledger, closer marina.Closer) error {
	r := bufio.NewReader(in)

	fmt.Fprint(out, "\nWelcome to the Boat Management System\n-------------------------------------\n\n")

	for {
		fmt.Fprint(out, menuPrompt)

		line, readErr := r.ReadString('\n')
		choice := strings.TrimSpace(line)

		if choice == "" {
			if readErr != nil {
				return closer()
			}
			continue
		}

		switch strings.ToLower(choice)[0] {
		case 'i':
			printInventory(out, ledger)
		case 'a':
			addBoat(out, r, ledger)
			fmt.Fprintln(out)
		case 'r':
			removeBoat(out, r, ledger)
			fmt.Fprintln(out)
		case 'p':
			acceptPayment(out, r, ledger)
			fmt.Fprintln(out)
		case 'm':
			ledger.MonthlyUpdate()
			fmt.Fprintln(out)
		case 'x':
			fmt.Fprint(out, "\nExiting the Boat Management System\n\n")
			return closer()
		default:
			fmt.Fprintf(out, "Invalid option %s\n\n", choice)
		}

		if readErr != nil {
			return closer()
		}
	}
}

func readTrimmed(r *bufio.Reader) (string, bool) {
	line, err := r.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" && err != nil {
		return "", false
	}

	return line, true
}

func addBoat(out io.Writer, r *bufio.Reader, ledger *marina.Ledger) {
	fmt.Fprint(out, dataPrompt)

	line, ok := readTrimmed(r)
	if !ok {
		return
	}

	b, err := marina.ParseLine(line)
	if err != nil {
		fmt.Fprintln(out, "Invalid CSV format.")
		return
	}

	if err := ledger.Add(b); err != nil {
		if errors.Is(err, marina.ErrFleetFull) {
			fmt.Fprintln(out, "Cannot add new boat: the marina is full.")
			return
		}

		fmt.Fprintln(out, err.Error())
	}
}

func removeBoat(out io.Writer, r *bufio.Reader, ledger *marina.Ledger) {
	fmt.Fprint(out, namePrompt)

	name, ok := readTrimmed(r)
	if !ok {
		return
	}

	if err := ledger.Remove(name); err != nil {
		fmt.Fprintln(out, "No boat with that name")
	}
}

func acceptPayment(out io.Writer, r *bufio.Reader, ledger *marina.Ledger) {
	fmt.Fprint(out, namePrompt)

	name, ok := readTrimmed(r)
	if !ok {
		return
	}

	if _, err := ledger.Find(name); err != nil {
		fmt.Fprintln(out, "No boat with that name")
		return
	}

	fmt.Fprint(out, amountPrompt)

	raw, ok := readTrimmed(r)
	if !ok {
		return
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return
	}

	if err := ledger.ApplyPayment(name, amount); err != nil {
		if errors.Is(err, marina.ErrOverpayment) {
			b, findErr := ledger.Find(name)
			if findErr == nil {
				fmt.Fprintf(out, "That is more than the amount owed, %s\n", displayAmount(b.Owed))
			}
		}
	}
}
