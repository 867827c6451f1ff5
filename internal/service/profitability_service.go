package service

import (
	"sort"

	"github.com/maryrojas/rentabilidad-go/internal/analysis"
	"github.com/maryrojas/rentabilidad-go/internal/cache"
	"github.com/maryrojas/rentabilidad-go/internal/dataset"
	"github.com/maryrojas/rentabilidad-go/internal/domain"
)

// ProfitabilityService is the single entry point both shells call into. It
// owns the session dataset cache and runs the pure engines on the cached
// snapshot.
type ProfitabilityService struct {
	cache          *cache.DatasetCache
	dataFile       string
	channels       []string
	alertThreshold float64
}

func NewProfitabilityService(datasetCache *cache.DatasetCache, dataFile string, channels []string, alertThreshold float64) *ProfitabilityService {
	if datasetCache == nil {
		datasetCache = cache.NewDatasetCache(dataset.Load)
	}
	return &ProfitabilityService{
		cache:          datasetCache,
		dataFile:       dataFile,
		channels:       channels,
		alertThreshold: alertThreshold,
	}
}

// Ranking returns the top channels and cities by mean EBITDA for the product
// type. An empty slice is the distinct "no data for this query" outcome.
func (s *ProfitabilityService) Ranking(productType string, match domain.MatchMode) ([]domain.ChannelRanking, error) {
	ds, err := s.cache.Get(s.dataFile)
	if err != nil {
		return nil, err
	}

	return analysis.RankChannels(ds, domain.Query{
		ProductType: productType,
		Match:       match,
		Channels:    s.channels,
	}), nil
}

// Simulate returns suggested pricing per (channel, city) for the product type
// and quantity.
func (s *ProfitabilityService) Simulate(productType string, match domain.MatchMode, quantity float64) ([]domain.SimulationRow, error) {
	ds, err := s.cache.Get(s.dataFile)
	if err != nil {
		return nil, err
	}

	return analysis.SimulatePrice(ds, domain.Query{
		ProductType: productType,
		Match:       match,
		Channels:    s.channels,
	}, quantity, s.alertThreshold)
}

// ProductTypes returns the distinct normalized product types in the dataset,
// sorted. The shells build their selectors and prompts from this list.
func (s *ProfitabilityService) ProductTypes() ([]string, error) {
	ds, err := s.cache.Get(s.dataFile)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var types []string
	for _, r := range ds.Records {
		if r.ProductType == "" {
			continue
		}
		if _, ok := seen[r.ProductType]; ok {
			continue
		}
		seen[r.ProductType] = struct{}{}
		types = append(types, r.ProductType)
	}

	sort.Strings(types)
	return types, nil
}

// DatasetStatus exposes the load counters, including how many monetary cells
// were silently coerced to 0.0.
func (s *ProfitabilityService) DatasetStatus() (*domain.DatasetStatus, error) {
	ds, err := s.cache.Get(s.dataFile)
	if err != nil {
		return nil, err
	}

	return &domain.DatasetStatus{
		SourcePath:   ds.SourcePath,
		Rows:         len(ds.Records),
		CoercedCells: ds.CoercedCells,
	}, nil
}
