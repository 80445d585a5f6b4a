package cli

import (
	"context"
	"fmt"

	"gigflow/pkg/domain"
)

// RunDemo executes two scripted workflows against the in-memory model: a
// fixed-price milestone paid through escrow, then an hourly milestone with
// no hours recorded to show the failure path.
func RunDemo(ctx context.Context, opts RunOptions) {
	client := domain.NewClient("Sara Chen", "sara@acme.io", "Acme Corp")
	freelancer := domain.NewFreelancer("Jon Reyes", "jon@dev.io", "Go, SQL", 75)

	fmt.Println("=== Demo 1: fixed-price milestone, escrow payment ===")
	RunProject(ctx, domain.NewProject("Website Redesign", client, freelancer,
		domain.NewFixedPriceMilestone("Website Redesign", "Full redesign of the marketing site",
			domain.NewEscrow(0), 2500),
	), opts)

	fmt.Println("\n=== Demo 2: hourly milestone with no hours (expected failure) ===")
	RunProject(ctx, domain.NewProject("Support Retainer", client, freelancer,
		domain.NewHourlyMilestone("Support Retainer", "Monthly support hours",
			domain.NewDirect(0), freelancer.HourlyRate),
	), opts)
}
