package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/maryrojas/rentabilidad-go/internal/domain"
	"github.com/maryrojas/rentabilidad-go/internal/service"
)

// menuSession runs the 3-item interactive loop. A dataset that fails to load
// is reported per operation and never ends the session; a malformed quantity
// aborts only the current operation.
type menuSession struct {
	svc *service.ProfitabilityService
	in  *bufio.Scanner
	out io.Writer
}

func newMenuSession(svc *service.ProfitabilityService, in io.Reader, out io.Writer) *menuSession {
	return &menuSession{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

func (s *menuSession) run() error {
	for {
		fmt.Fprintln(s.out)
		fmt.Fprintln(s.out, "========================================")
		fmt.Fprintln(s.out, "        PROFITABILITY CONTROL")
		fmt.Fprintln(s.out, "========================================")
		fmt.Fprintln(s.out, "1. Top 5 channels and top 3 cities")
		fmt.Fprintln(s.out, "2. Minimum price simulator")
		fmt.Fprintln(s.out, "3. Exit")

		choice, ok := s.prompt("\nSelect (1-3): ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			s.runRanking()
		case "2":
			s.runSimulator()
		case "3":
			return nil
		}
	}
}

func (s *menuSession) runRanking() {
	fmt.Fprintln(s.out, "\n"+strings.Repeat("=", 50))

	// Show what exists so the user does not have to guess.
	types, err := s.svc.ProductTypes()
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprintf(s.out, "Egg types detected in the file: %s\n", strings.ToUpper(strings.Join(types, ", ")))

	productType, ok := s.prompt("Enter the EGG TYPE to analyze: ")
	if !ok {
		return
	}

	channels, err := s.svc.Ranking(productType, domain.MatchSubstring)
	if err != nil {
		s.reportError(err)
		return
	}
	if len(channels) == 0 {
		fmt.Fprintf(s.out, "No data found for %q in the allowed channels.\n", strings.TrimSpace(productType))
		return
	}

	fmt.Fprintf(s.out, "\n--- PROFITABILITY FOR EGG TYPE: %s ---\n", strings.ToUpper(strings.TrimSpace(productType)))
	for _, ch := range channels {
		fmt.Fprintf(s.out, "\nCHANNEL: %s | Mean EBITDA: %s\n", ch.Channel, formatMoney(ch.MeanEBITDA))
		for i, city := range ch.Cities {
			fmt.Fprintf(s.out, "      %d. %s (%s)\n", i+1, titleCity(city.City), formatMoney(city.MeanEBITDA))
		}
	}
}

func (s *menuSession) runSimulator() {
	fmt.Fprintln(s.out, "\n"+strings.Repeat("=", 50))

	productType, ok := s.prompt("Enter the EGG TYPE to sell: ")
	if !ok {
		return
	}

	rawQuantity, ok := s.prompt("Enter the QUANTITY of eggs: ")
	if !ok {
		return
	}
	quantity, err := strconv.ParseFloat(strings.TrimSpace(rawQuantity), 64)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid quantity.")
		return
	}

	rows, err := s.svc.Simulate(productType, domain.MatchSubstring, quantity)
	if err != nil {
		s.reportError(err)
		return
	}
	if len(rows) == 0 {
		fmt.Fprintf(s.out, "No records for %q.\n", strings.TrimSpace(productType))
		return
	}

	fmt.Fprintf(s.out, "\n--- MINIMUM SUGGESTED PRICE FOR %s UNITS ---\n", formatQuantity(quantity))
	for _, row := range rows {
		alert := ""
		if row.Alert {
			alert = " (high logistics cost)"
		}
		fmt.Fprintf(s.out, "[%s] %s:\n", row.Channel, titleCity(row.City))
		fmt.Fprintf(s.out, "   Suggested revenue: %s (unit price: %s)%s\n",
			formatMoney(row.SuggestedTotal), formatMoney(row.MeanPrice), alert)
	}
}

func (s *menuSession) prompt(label string) (string, bool) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *menuSession) reportError(err error) {
	var loadErr *domain.LoadError
	if errors.As(err, &loadErr) {
		fmt.Fprintf(s.out, "No dataset loaded: %v\n", err)
		return
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		fmt.Fprintf(s.out, "%v\n", err)
		return
	}

	fmt.Fprintf(s.out, "Error: %v\n", err)
}
