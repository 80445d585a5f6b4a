/*
Package ports defines the driven ports (interfaces) for the Gigflow engine.

These interfaces decouple the workflow pipeline from external
implementations, allowing receipts to be persisted to various backends and
the engine to be exposed through different surfaces (CLI, HTTP).

# Key Interfaces

  - ReceiptSink: durable append-only destination for payment receipts.
  - ReceiptLister: optional capability for sinks that can read receipts back.
  - WorkflowRunner: the engine as seen by driving adapters.
*/
package ports
