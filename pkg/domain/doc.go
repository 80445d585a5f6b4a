/*
Package domain contains the core models for the Gigflow engine.

It defines the fundamental entities of a freelance project workflow:
the parties (Client, Freelancer), the polymorphic Milestone and
PaymentMethod variant sets, the Receipt record, and the Report produced
by a run. This package is kept pure and free of external dependencies
like I/O or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Party: a Client or Freelancer participating in a project.
  - Milestone: a unit of deliverable work (FixedPrice or Hourly) that,
    once completed, determines the amount owed.
  - PaymentMethod: how a computed amount is transferred (Escrow or Direct).
  - Project: the aggregate owning one client, freelancer, and milestone.
  - Report: the outcome of a single workflow run.
*/
package domain
