package workload_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainassignment "github.com/quartermill/reviewdesk/internal/domain/assignment"
	domainproduct "github.com/quartermill/reviewdesk/internal/domain/product"
	"github.com/quartermill/reviewdesk/internal/mocks"
	"github.com/quartermill/reviewdesk/internal/service/workload"
)

func newCalculator(t *testing.T) (*workload.Calculator, *mocks.MockAssignmentRepository, *mocks.MockProductRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ledger := mocks.NewMockAssignmentRepository(ctrl)
	catalog := mocks.NewMockProductRepository(ctrl)
	return workload.New(ledger, catalog), ledger, catalog
}

func TestOf_SumsActiveWeights(t *testing.T) {
	calc, ledger, catalog := newCalculator(t)
	agentID := uuid.New()

	p1 := domainproduct.Product{ID: uuid.New(), Count: 3}
	p2 := domainproduct.Product{ID: uuid.New(), Count: 5}

	ledger.EXPECT().ListActiveByAgent(gomock.Any(), agentID).Return([]domainassignment.Assignment{
		{ID: uuid.New(), AgentID: agentID, ProductID: p1.ID},
		{ID: uuid.New(), AgentID: agentID, ProductID: p2.ID},
	}, nil)
	catalog.EXPECT().GetByID(gomock.Any(), p1.ID).Return(p1, nil)
	catalog.EXPECT().GetByID(gomock.Any(), p2.ID).Return(p2, nil)

	got, err := calc.Of(context.Background(), agentID)
	require.NoError(t, err)
	assert.Equal(t, 8, got)
}

func TestOf_MissingCountWeighsOne(t *testing.T) {
	calc, ledger, catalog := newCalculator(t)
	agentID := uuid.New()

	p := domainproduct.Product{ID: uuid.New()} // zero Count — imported without one

	ledger.EXPECT().ListActiveByAgent(gomock.Any(), agentID).Return([]domainassignment.Assignment{
		{ID: uuid.New(), AgentID: agentID, ProductID: p.ID},
	}, nil)
	catalog.EXPECT().GetByID(gomock.Any(), p.ID).Return(p, nil)

	got, err := calc.Of(context.Background(), agentID)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestOf_NoActiveAssignmentsIsZero(t *testing.T) {
	calc, ledger, _ := newCalculator(t)
	agentID := uuid.New()

	ledger.EXPECT().ListActiveByAgent(gomock.Any(), agentID).Return(nil, nil)

	got, err := calc.Of(context.Background(), agentID)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestOf_LedgerErrorPropagates(t *testing.T) {
	calc, ledger, _ := newCalculator(t)

	ledger.EXPECT().ListActiveByAgent(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	_, err := calc.Of(context.Background(), uuid.New())
	require.Error(t, err)
}
