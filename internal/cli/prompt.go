package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gigflow/pkg/domain"
)

// prompter collects line-oriented answers from the terminal.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

func (p *prompter) ask(label, fallback string) string {
	if fallback != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, fallback)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	text, _ := p.in.ReadString('\n')
	text = strings.TrimSpace(text)
	if text == "" {
		return fallback
	}
	return text
}

func (p *prompter) askFloat(label string, fallback float64) float64 {
	for {
		text := p.ask(label, strconv.FormatFloat(fallback, 'f', -1, 64))
		value, err := strconv.ParseFloat(text, 64)
		if err != nil {
			fmt.Fprintf(p.out, "Please enter a number.\n")
			continue
		}
		return value
	}
}

// CollectProject interactively assembles a project from terminal answers.
// It is the flow behind "gigflow new".
func CollectProject(in io.Reader, out io.Writer) (*domain.Project, error) {
	p := newPrompter(in, out)

	fmt.Fprintln(out, "--- New Project ---")
	name := p.ask("Project name", "Untitled Project")

	fmt.Fprintln(out, "\nClient:")
	client := domain.NewClient(
		p.ask("  Name", ""),
		p.ask("  Email", ""),
		p.ask("  Company", ""),
	)

	fmt.Fprintln(out, "\nFreelancer:")
	freelancer := domain.NewFreelancer(
		p.ask("  Name", ""),
		p.ask("  Email", ""),
		p.ask("  Skills", ""),
		p.askFloat("  Hourly rate ($)", 50),
	)

	fmt.Fprintln(out, "\nPayment:")
	var payment domain.PaymentMethod
	switch strings.ToLower(p.ask("  Method (escrow/direct)", "escrow")) {
	case "direct":
		payment = domain.NewDirect(0)
	default:
		payment = domain.NewEscrow(0)
	}

	fmt.Fprintln(out, "\nMilestone:")
	title := p.ask("  Title", name)
	description := p.ask("  Description", "")

	var milestone domain.Milestone
	switch strings.ToLower(p.ask("  Type (fixed/hourly)", "fixed")) {
	case "hourly":
		m := domain.NewHourlyMilestone(title, description, payment, freelancer.HourlyRate)
		if err := m.SetHoursWorked(p.askFloat("  Hours worked", 0)); err != nil {
			return nil, err
		}
		milestone = m
	default:
		milestone = domain.NewFixedPriceMilestone(title, description, payment,
			p.askFloat("  Fixed amount ($)", 0))
	}

	return domain.NewProject(name, client, freelancer, milestone), nil
}
