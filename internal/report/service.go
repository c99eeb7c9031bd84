package report

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Service memoizes FilterTransactions.
//
// Results are cached by a hash of the data version and all inputs that
// influence the result. Concurrent calls for the same key share one
// computation. Returned slices are shared and must not be modified.
type Service struct {
	localizer *Localizer
	cache     *lru.Cache[string, []Transaction]
	group     singleflight.Group
}

// NewService creates a Service. A cacheSize of zero or less disables caching.
func NewService(cacheSize int, l *Localizer) (*Service, error) {
	s := &Service{localizer: l}

	if cacheSize > 0 {
		cache, err := lru.New[string, []Transaction](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating report cache: %w", err)
		}
		s.cache = cache
	}

	return s, nil
}

// Localizer returns the Localizer of the service.
func (s *Service) Localizer() *Localizer {
	return s.localizer
}

// Query is the input of one report table computation.
type Query struct {
	// Version identifies the fund data. It must change whenever the data
	// changes. An empty version disables caching for the query.
	Version    string
	Fund       Fund
	TargetTime time.Time
	Filters    Filters
	TableType  TableType
}

// cacheKey hashes everything except the fund data itself, which is
// identified by the version.
func (q Query) cacheKey() (string, error) {
	b, err := json.Marshal(struct {
		Version   string
		FundType  FundType
		Target    string
		Filters   Filters
		TableType TableType
	}{q.Version, q.Fund.FundType, q.TargetTime.Format("2006-01"), q.Filters, q.TableType})
	if err != nil {
		return "", err
	}

	return Sha256String(string(b)), nil
}

// Transactions returns the rows of one report table.
func (s *Service) Transactions(q Query) []Transaction {
	compute := func() []Transaction {
		return FilterTransactions(q.Fund, q.TargetTime, &q.Filters, q.TableType, s.localizer)
	}

	if s.cache == nil || q.Version == "" {
		return compute()
	}

	key, err := q.cacheKey()
	if err != nil {
		log.Error().Err(err).Msg("report cache key")
		return compute()
	}

	if rows, ok := s.cache.Get(key); ok {
		return rows
	}

	v, _, _ := s.group.Do(key, func() (interface{}, error) {
		log.Debug().Str("key", key).Str("table", string(q.TableType)).Msg("report cache miss")

		rows := compute()
		s.cache.Add(key, rows)
		return rows, nil
	})

	return v.([]Transaction)
}

// Sha256String calculates the SHA256 hash of a given string and returns its string representation.
func Sha256String(input string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(input)))
}
