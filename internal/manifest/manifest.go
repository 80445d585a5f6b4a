// Package manifest loads project definitions from YAML files and assembles
// the domain aggregate. The milestone block is polymorphic on its "type"
// field, so it is decoded in two passes: YAML into a raw map, then
// mapstructure into the variant DTO.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"gigflow/pkg/domain"
)

// Milestone type discriminators accepted in manifests.
const (
	TypeFixed  = "fixed"
	TypeHourly = "hourly"
)

// Payment method discriminators accepted in manifests.
const (
	MethodEscrow = "escrow"
	MethodDirect = "direct"
)

// document is the raw YAML shape of a project manifest.
type document struct {
	Name       string         `yaml:"name"`
	Client     clientDTO      `yaml:"client"`
	Freelancer freelancerDTO  `yaml:"freelancer"`
	Milestone  map[string]any `yaml:"milestone"`
	Payment    paymentDTO     `yaml:"payment"`
}

type clientDTO struct {
	Name    string `yaml:"name"`
	Email   string `yaml:"email"`
	Company string `yaml:"company"`
}

type freelancerDTO struct {
	Name       string  `yaml:"name"`
	Email      string  `yaml:"email"`
	Skills     string  `yaml:"skills"`
	HourlyRate float64 `yaml:"hourly_rate"`
}

type paymentDTO struct {
	Method string `yaml:"method"`
}

// milestoneDTO is the superset of fields across milestone variants. It uses
// "mapstructure" tags because the block arrives as a raw map after the YAML
// pass.
type milestoneDTO struct {
	Type        string  `mapstructure:"type"`
	Title       string  `mapstructure:"title"`
	Description string  `mapstructure:"description"`
	Amount      float64 `mapstructure:"amount"`
	HoursWorked float64 `mapstructure:"hours_worked"`
}

// Parse decodes a YAML manifest into a ready-to-run project.
func Parse(data []byte) (*domain.Project, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("manifest missing project name")
	}
	if doc.Milestone == nil {
		return nil, fmt.Errorf("manifest missing milestone block")
	}

	payment, err := resolvePayment(doc.Payment)
	if err != nil {
		return nil, err
	}

	milestone, err := resolveMilestone(doc.Milestone, payment, doc.Freelancer.HourlyRate)
	if err != nil {
		return nil, err
	}

	client := domain.NewClient(doc.Client.Name, doc.Client.Email, doc.Client.Company)
	freelancer := domain.NewFreelancer(doc.Freelancer.Name, doc.Freelancer.Email,
		doc.Freelancer.Skills, doc.Freelancer.HourlyRate)

	return domain.NewProject(doc.Name, client, freelancer, milestone), nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	project, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid manifest %s: %w", path, err)
	}
	return project, nil
}

// resolvePayment maps the manifest method onto a placeholder payment method.
// The engine rebinds it with the real amount once calculated.
func resolvePayment(dto paymentDTO) (domain.PaymentMethod, error) {
	switch strings.ToLower(dto.Method) {
	case MethodEscrow, "":
		return domain.NewEscrow(0), nil
	case MethodDirect:
		return domain.NewDirect(0), nil
	default:
		return nil, fmt.Errorf("unknown payment method %q (want %q or %q)", dto.Method, MethodEscrow, MethodDirect)
	}
}

// resolveMilestone dispatches on the milestone type and constructs the
// matching variant. Hourly manifests route hours through the domain setter,
// so invalid hours fail here instead of surfacing mid-run.
func resolveMilestone(raw map[string]any, payment domain.PaymentMethod, hourlyRate float64) (domain.Milestone, error) {
	var dto milestoneDTO
	if err := mapstructure.Decode(raw, &dto); err != nil {
		return nil, fmt.Errorf("failed to decode milestone block: %w", err)
	}
	if dto.Title == "" {
		return nil, fmt.Errorf("milestone missing title")
	}

	switch strings.ToLower(dto.Type) {
	case TypeFixed, "":
		return domain.NewFixedPriceMilestone(dto.Title, dto.Description, payment, dto.Amount), nil

	case TypeHourly:
		m := domain.NewHourlyMilestone(dto.Title, dto.Description, payment, hourlyRate)
		if err := m.SetHoursWorked(dto.HoursWorked); err != nil {
			return nil, fmt.Errorf("milestone %q: %w", dto.Title, err)
		}
		return m, nil

	default:
		return nil, fmt.Errorf("unknown milestone type %q (want %q or %q)", dto.Type, TypeFixed, TypeHourly)
	}
}
