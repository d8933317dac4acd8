//go:build integration

package agent_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgagent "github.com/quartermill/reviewdesk/internal/adapter/postgres/agent"
	domainagent "github.com/quartermill/reviewdesk/internal/domain/agent"
	"github.com/quartermill/reviewdesk/internal/testutil"
)

func TestCreateAndGet(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgagent.New(pool)

	a := domainagent.New("reviewer-"+uuid.New().String()[:6], "reviewer@quartermill.test")
	created, err := repo.Create(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, a.ID, created.ID)
	assert.Equal(t, a.Name, created.Name)
	assert.Equal(t, a.Email, created.Email)

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Name, got.Name)
}

func TestGetByID_Unknown(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := pgagent.New(pool)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestList_ContainsCreated(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()
	repo := pgagent.New(pool)

	created, err := repo.Create(ctx, domainagent.New("reviewer-"+uuid.New().String()[:6], ""))
	require.NoError(t, err)

	agents, err := repo.List(ctx)
	require.NoError(t, err)

	var found bool
	for _, a := range agents {
		if a.ID == created.ID {
			found = true
		}
	}
	assert.True(t, found)
}
