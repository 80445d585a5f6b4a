package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gigflow/internal/manifest"
	"gigflow/pkg/domain"
)

const fixedManifest = `
name: Website Redesign
client:
  name: Sara Chen
  email: sara@acme.io
  company: Acme Corp
freelancer:
  name: Jon Reyes
  email: jon@dev.io
  skills: Go, SQL
  hourly_rate: 75
milestone:
  title: Website Redesign
  description: Full redesign of the marketing site
  type: fixed
  amount: 2500
payment:
  method: escrow
`

const hourlyManifest = `
name: Billing Integration
client:
  name: Sara Chen
  email: sara@acme.io
  company: Acme Corp
freelancer:
  name: Jon Reyes
  email: jon@dev.io
  skills: Go, SQL
  hourly_rate: 75
milestone:
  title: API Integration
  type: hourly
  hours_worked: 12.5
payment:
  method: direct
`

func TestParse_FixedPrice(t *testing.T) {
	project, err := manifest.Parse([]byte(fixedManifest))
	require.NoError(t, err)

	assert.Equal(t, "Website Redesign", project.Name)
	assert.Equal(t, "Acme Corp", project.Client.CompanyName)
	assert.Equal(t, 75.0, project.Freelancer.HourlyRate)

	m, ok := project.Milestone.(*domain.FixedPriceMilestone)
	require.True(t, ok, "expected fixed-price milestone, got %T", project.Milestone)
	assert.Equal(t, "Website Redesign", m.Title())
	assert.Equal(t, domain.KindEscrow, m.Payment().Kind())
	assert.False(t, m.Completed())
}

func TestParse_Hourly(t *testing.T) {
	project, err := manifest.Parse([]byte(hourlyManifest))
	require.NoError(t, err)

	m, ok := project.Milestone.(*domain.HourlyMilestone)
	require.True(t, ok, "expected hourly milestone, got %T", project.Milestone)
	assert.Equal(t, 12.5, m.HoursWorked())
	assert.Equal(t, domain.KindDirect, m.Payment().Kind())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "malformed yaml",
			yaml: "name: [unclosed",
			want: "failed to parse manifest",
		},
		{
			name: "missing name",
			yaml: "milestone:\n  title: X\n",
			want: "missing project name",
		},
		{
			name: "missing milestone",
			yaml: "name: P\n",
			want: "missing milestone block",
		},
		{
			name: "missing milestone title",
			yaml: "name: P\nmilestone:\n  type: fixed\n",
			want: "milestone missing title",
		},
		{
			name: "unknown milestone type",
			yaml: "name: P\nmilestone:\n  title: X\n  type: retainer\n",
			want: `unknown milestone type "retainer"`,
		},
		{
			name: "unknown payment method",
			yaml: "name: P\nmilestone:\n  title: X\npayment:\n  method: wire\n",
			want: `unknown payment method "wire"`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := manifest.Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParse_NegativeHoursRejected(t *testing.T) {
	_, err := manifest.Parse([]byte(`
name: P
freelancer:
  hourly_rate: 50
milestone:
  title: Support
  type: hourly
  hours_worked: -4
`))
	require.ErrorIs(t, err, domain.ErrInvalidHours)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fixedManifest), 0o644))

	project, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Website Redesign", project.Name)

	_, err = manifest.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}
