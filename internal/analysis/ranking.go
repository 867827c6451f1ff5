package analysis

import (
	"sort"
	"strings"

	"github.com/maryrojas/rentabilidad-go/internal/dataset"
	"github.com/maryrojas/rentabilidad-go/internal/domain"
)

const (
	topChannels       = 5
	topCitiesPerGroup = 3
)

// RankChannels returns the top channels by mean EBITDA for the queried
// product type, each with its top cities. An empty result means no records
// matched; that is a normal outcome, not an error.
//
// Ordering is deterministic: descending mean, ties broken lexicographically
// ascending on the group name.
func RankChannels(ds *domain.Dataset, q domain.Query) []domain.ChannelRanking {
	filtered := filterChannels(filterProductType(ds.Records, q), q.Channels)
	if len(filtered) == 0 {
		return nil
	}

	channels := topMeans(filtered, topChannels,
		func(r domain.Record) string { return r.Channel })

	out := make([]domain.ChannelRanking, 0, len(channels))
	for _, ch := range channels {
		var channelRecs []domain.Record
		for _, r := range filtered {
			if r.Channel == ch.key {
				channelRecs = append(channelRecs, r)
			}
		}

		cityGroups := topMeans(channelRecs, topCitiesPerGroup,
			func(r domain.Record) string { return r.City })

		cities := make([]domain.CityRanking, 0, len(cityGroups))
		for _, g := range cityGroups {
			cities = append(cities, domain.CityRanking{City: g.key, MeanEBITDA: g.mean})
		}

		out = append(out, domain.ChannelRanking{
			Channel:    ch.key,
			MeanEBITDA: ch.mean,
			Cities:     cities,
		})
	}

	return out
}

type meanGroup struct {
	key  string
	mean float64
}

// topMeans groups records by key, computes the mean EBITDA per group and
// returns the best n groups.
func topMeans(records []domain.Record, n int, keyOf func(domain.Record) string) []meanGroup {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		k := keyOf(r)
		sums[k] += r.EBITDA
		counts[k]++
	}

	groups := make([]meanGroup, 0, len(sums))
	for k, sum := range sums {
		groups = append(groups, meanGroup{key: k, mean: sum / float64(counts[k])})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].mean != groups[j].mean {
			return groups[i].mean > groups[j].mean
		}
		return groups[i].key < groups[j].key
	})

	if len(groups) > n {
		groups = groups[:n]
	}
	return groups
}

// filterProductType keeps records whose product type matches the query,
// either as a case-insensitive substring (interactive shell) or exactly
// (dashboard selector).
func filterProductType(records []domain.Record, q domain.Query) []domain.Record {
	query := dataset.NormalizeProductType(q.ProductType)

	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		var ok bool
		switch q.Match {
		case domain.MatchExact:
			ok = r.ProductType == query
		default:
			ok = strings.Contains(r.ProductType, query)
		}
		if ok {
			out = append(out, r)
		}
	}
	return out
}

// filterChannels keeps records whose channel is in the allowlist.
func filterChannels(records []domain.Record, allowlist []string) []domain.Record {
	allowed := make(map[string]struct{}, len(allowlist))
	for _, ch := range allowlist {
		allowed[dataset.NormalizeChannel(ch)] = struct{}{}
	}

	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		if _, ok := allowed[r.Channel]; ok {
			out = append(out, r)
		}
	}
	return out
}
