package analysis

import (
	"math"
	"sort"

	"github.com/maryrojas/rentabilidad-go/internal/domain"
)

// SimulatePrice computes, per (channel, city) group of the queried product
// type, the minimum suggested unit price (mean observed price), the total
// suggested revenue for the requested quantity, and a high-logistics alert.
//
// The alert baseline is the mean logistics cost over the whole product type,
// computed before the channel allowlist is applied; a group is flagged when
// its mean logistics cost exceeds baseline * alertThreshold.
//
// An empty result means no records matched. An invalid quantity returns a
// *domain.ValidationError.
func SimulatePrice(ds *domain.Dataset, q domain.Query, quantity, alertThreshold float64) ([]domain.SimulationRow, error) {
	if !(quantity > 0) || math.IsInf(quantity, 0) {
		return nil, &domain.ValidationError{
			Field:  "quantity",
			Reason: "must be a positive finite number",
		}
	}

	typed := filterProductType(ds.Records, q)
	if len(typed) == 0 {
		return nil, nil
	}

	// Baseline across the whole product type, not just allowed channels.
	var logSum float64
	for _, r := range typed {
		logSum += r.LogisticsTotal
	}
	logAvg := logSum / float64(len(typed))

	filtered := filterChannels(typed, q.Channels)
	if len(filtered) == 0 {
		return nil, nil
	}

	type agg struct {
		priceSum float64
		logSum   float64
		count    int
	}
	type groupKey struct{ channel, city string }

	groups := make(map[groupKey]*agg)
	for _, r := range filtered {
		k := groupKey{channel: r.Channel, city: r.City}
		a, ok := groups[k]
		if !ok {
			a = &agg{}
			groups[k] = a
		}
		a.priceSum += r.Price
		a.logSum += r.LogisticsTotal
		a.count++
	}

	rows := make([]domain.SimulationRow, 0, len(groups))
	for k, a := range groups {
		meanPrice := a.priceSum / float64(a.count)
		meanLog := a.logSum / float64(a.count)
		rows = append(rows, domain.SimulationRow{
			Channel:        k.channel,
			City:           k.city,
			MeanPrice:      meanPrice,
			SuggestedTotal: meanPrice * quantity,
			LogisticsTotal: meanLog,
			Alert:          meanLog > logAvg*alertThreshold,
		})
	}

	// Presentation order is not contractual but must be stable per input.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Channel != rows[j].Channel {
			return rows[i].Channel < rows[j].Channel
		}
		return rows[i].City < rows[j].City
	})

	return rows, nil
}
