package selector

import (
	"bytes"
	"time"

	domainproduct "github.com/quartermill/reviewdesk/internal/domain/product"
	portselector "github.com/quartermill/reviewdesk/internal/port/selector"
)

var _ portselector.Selector = (*Service)(nil)

// Service picks the next product by SLA urgency. It is pure: no ledger or
// catalog access, just a decision over the candidates it is handed.
type Service struct {
	windows  map[domainproduct.Priority]time.Duration
	fallback time.Duration
}

// New builds a selector from per-priority SLA windows. Priorities absent from
// the map use fallback.
func New(windows map[domainproduct.Priority]time.Duration, fallback time.Duration) *Service {
	return &Service{windows: windows, fallback: fallback}
}

// Next returns the candidate closest to breaching its SLA deadline: the
// smallest positive slack wins; if every candidate is overdue, the most
// overdue (smallest slack) wins. Nil when candidates is empty.
//
// Ties on slack break on the lowest product ID (bytewise UUID compare) so
// repeated calls over identical input return the same product.
func (s *Service) Next(candidates []domainproduct.Product, now time.Time) *domainproduct.Product {
	var best *domainproduct.Product
	var bestSlack time.Duration

	for i := range candidates {
		c := &candidates[i]
		slack := s.window(c.Priority) - now.Sub(c.CreatedOn)

		if best == nil {
			best, bestSlack = c, slack
			continue
		}
		if better(slack, c.ID[:], bestSlack, best.ID[:]) {
			best, bestSlack = c, slack
		}
	}
	if best == nil {
		return nil
	}
	p := *best
	return &p
}

func (s *Service) window(p domainproduct.Priority) time.Duration {
	if w, ok := s.windows[p]; ok {
		return w
	}
	return s.fallback
}

// better reports whether candidate slack a beats current best slack b.
// Within-SLA (positive slack) always beats overdue; among within-SLA the
// smaller slack is more urgent; among overdue the more negative is.
// Either way the smaller slack wins, except that a positive slack beats any
// non-positive one.
func better(a time.Duration, aID []byte, b time.Duration, bID []byte) bool {
	aWithin, bWithin := a > 0, b > 0
	if aWithin != bWithin {
		return aWithin
	}
	if a != b {
		return a < b
	}
	return bytes.Compare(aID, bID) < 0
}
