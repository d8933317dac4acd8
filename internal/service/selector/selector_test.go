package selector_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainproduct "github.com/quartermill/reviewdesk/internal/domain/product"
	"github.com/quartermill/reviewdesk/internal/service/selector"
)

var testWindows = map[domainproduct.Priority]time.Duration{
	domainproduct.PriorityP1: 2 * time.Hour,
	domainproduct.PriorityP2: 12 * time.Hour,
}

const testFallback = 24 * time.Hour

func candidate(priority domainproduct.Priority, age time.Duration, now time.Time) domainproduct.Product {
	return domainproduct.Product{
		ID:        uuid.New(),
		Name:      "item",
		Priority:  priority,
		CreatedOn: now.Add(-age),
		Count:     1,
	}
}

func TestNext_EmptyReturnsNil(t *testing.T) {
	sel := selector.New(testWindows, testFallback)
	assert.Nil(t, sel.Next(nil, time.Now().UTC()))
	assert.Nil(t, sel.Next([]domainproduct.Product{}, time.Now().UTC()))
}

func TestNext_PicksSmallestPositiveSlack(t *testing.T) {
	// P1 aged 1h has 1h of slack left; P2 aged 1h has 11h. The P1 item is
	// closest to breaching its deadline and must win.
	now := time.Now().UTC()
	sel := selector.New(testWindows, testFallback)

	p1 := candidate(domainproduct.PriorityP1, time.Hour, now)
	p2 := candidate(domainproduct.PriorityP2, time.Hour, now)

	got := sel.Next([]domainproduct.Product{p2, p1}, now)
	require.NotNil(t, got)
	assert.Equal(t, p1.ID, got.ID)
}

func TestNext_WithinSLABeatsOverdue(t *testing.T) {
	now := time.Now().UTC()
	sel := selector.New(testWindows, testFallback)

	overdue := candidate(domainproduct.PriorityP1, 10*time.Hour, now) // slack -8h
	within := candidate(domainproduct.PriorityP2, time.Hour, now)     // slack +11h

	got := sel.Next([]domainproduct.Product{overdue, within}, now)
	require.NotNil(t, got)
	assert.Equal(t, within.ID, got.ID)
}

func TestNext_AllOverduePicksMostOverdue(t *testing.T) {
	// Slack -5h vs -1h: the -5h item is more overdue and wins.
	now := time.Now().UTC()
	sel := selector.New(testWindows, testFallback)

	overdue5h := candidate(domainproduct.PriorityP1, 7*time.Hour, now) // slack -5h
	overdue1h := candidate(domainproduct.PriorityP1, 3*time.Hour, now) // slack -1h

	got := sel.Next([]domainproduct.Product{overdue1h, overdue5h}, now)
	require.NotNil(t, got)
	assert.Equal(t, overdue5h.ID, got.ID)
}

func TestNext_UnrecognizedPriorityUsesFallbackWindow(t *testing.T) {
	now := time.Now().UTC()
	sel := selector.New(testWindows, testFallback)

	// Slack: unknown = 24h - 1h = 23h, P2 = 12h - 1h = 11h.
	unknown := candidate(domainproduct.Priority("P9"), time.Hour, now)
	p2 := candidate(domainproduct.PriorityP2, time.Hour, now)

	got := sel.Next([]domainproduct.Product{unknown, p2}, now)
	require.NotNil(t, got)
	assert.Equal(t, p2.ID, got.ID)
}

func TestNext_TieBreaksDeterministically(t *testing.T) {
	// Identical priority and age means identical slack; the lowest ID wins,
	// and repeated calls over the same input return the same product.
	now := time.Now().UTC()
	sel := selector.New(testWindows, testFallback)

	a := candidate(domainproduct.PriorityP2, time.Hour, now)
	b := candidate(domainproduct.PriorityP2, time.Hour, now)
	candidates := []domainproduct.Product{a, b}

	first := sel.Next(candidates, now)
	require.NotNil(t, first)
	for i := 0; i < 10; i++ {
		again := sel.Next(candidates, now)
		require.NotNil(t, again)
		assert.Equal(t, first.ID, again.ID)
	}

	// Reversed input order must not change the winner.
	reversed := sel.Next([]domainproduct.Product{b, a}, now)
	require.NotNil(t, reversed)
	assert.Equal(t, first.ID, reversed.ID)
}

func TestNext_DoesNotMutateInput(t *testing.T) {
	now := time.Now().UTC()
	sel := selector.New(testWindows, testFallback)

	a := candidate(domainproduct.PriorityP1, time.Hour, now)
	candidates := []domainproduct.Product{a}

	got := sel.Next(candidates, now)
	require.NotNil(t, got)
	got.Assigned = true

	assert.False(t, candidates[0].Assigned, "selector must return a copy")
}
