package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigflow/pkg/domain"
)

func TestNewPaymentMethod(t *testing.T) {
	escrow, err := domain.NewPaymentMethod(domain.KindEscrow, 2500)
	require.NoError(t, err)
	assert.Equal(t, domain.KindEscrow, escrow.Kind())
	assert.Equal(t, 2500.0, escrow.Amount())

	direct, err := domain.NewPaymentMethod(domain.KindDirect, 100)
	require.NoError(t, err)
	assert.Equal(t, domain.KindDirect, direct.Kind())

	_, err = domain.NewPaymentMethod("Wire", 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown payment kind")
}

func TestEscrow_Process(t *testing.T) {
	confirmation := domain.NewEscrow(2500).Process()
	assert.Contains(t, confirmation, "Processing escrow payment of $2500.00")
	assert.Contains(t, confirmation, "Funds held in escrow")
}

func TestDirect_Process(t *testing.T) {
	confirmation := domain.NewDirect(937.5).Process()
	assert.Contains(t, confirmation, "Processing direct payment of $937.50")
	assert.Contains(t, confirmation, "transferred immediately")
}

func TestPartySummaries(t *testing.T) {
	client := domain.NewClient("Sara Chen", "sara@acme.io", "Acme Corp")
	assert.Equal(t, domain.RoleClient, client.Role())
	assert.Equal(t, "Client: Sara Chen (Acme Corp) - sara@acme.io", client.Summary())

	freelancer := domain.NewFreelancer("Jon Reyes", "jon@dev.io", "Go, SQL", 75)
	assert.Equal(t, domain.RoleFreelancer, freelancer.Role())
	assert.Equal(t, "Freelancer: Jon Reyes - Skills: Go, SQL - Rate: $75.00/hr - jon@dev.io", freelancer.Summary())
}
