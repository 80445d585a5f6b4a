package domain

import "fmt"

// Party roles.
const (
	RoleClient     = "Client"
	RoleFreelancer = "Freelancer"
)

// Party is a participant in a project. The variant set is closed:
// Client and Freelancer. Parties carry identity data only; they have no
// behavior beyond display.
type Party interface {
	// Role returns the stable role discriminator (RoleClient or RoleFreelancer).
	Role() string

	// Summary returns a one-line human-readable description of the party.
	Summary() string
}

// Client is the party commissioning the work.
type Client struct {
	Name        string
	Email       string
	CompanyName string
}

// NewClient creates a Client. Fields are immutable after construction.
func NewClient(name, email, companyName string) *Client {
	return &Client{Name: name, Email: email, CompanyName: companyName}
}

func (c *Client) Role() string { return RoleClient }

func (c *Client) Summary() string {
	return fmt.Sprintf("Client: %s (%s) - %s", c.Name, c.CompanyName, c.Email)
}

// Freelancer is the party delivering the work.
type Freelancer struct {
	Name       string
	Email      string
	SkillSet   string
	HourlyRate float64
}

// NewFreelancer creates a Freelancer. Fields are immutable after construction.
func NewFreelancer(name, email, skillSet string, hourlyRate float64) *Freelancer {
	return &Freelancer{Name: name, Email: email, SkillSet: skillSet, HourlyRate: hourlyRate}
}

func (f *Freelancer) Role() string { return RoleFreelancer }

func (f *Freelancer) Summary() string {
	return fmt.Sprintf("Freelancer: %s - Skills: %s - Rate: $%.2f/hr - %s",
		f.Name, f.SkillSet, f.HourlyRate, f.Email)
}
