package selector

import (
	"time"

	domainproduct "github.com/quartermill/reviewdesk/internal/domain/product"
)

// Selector picks the single best candidate for the next assignment.
// Only selects — implementations must not touch the ledger or the catalog.
type Selector interface {
	Next(candidates []domainproduct.Product, now time.Time) *domainproduct.Product
}
