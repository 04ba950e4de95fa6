// Package order contains the Order aggregate and its status state machine.
//
// An order owns its line set and a derived total amount, and progresses
// through PENDING, CONFIRMED, PROCESSING, READY_FOR_DELIVERY, IN_DELIVERY and
// DELIVERED, with CANCELLED reachable from every non-terminal state. All
// status changes are validated against a static transition table; DELIVERED
// and CANCELLED are terminal.
//
// Stock effects (debiting on creation, restoring on cancellation) are not
// applied here: the aggregate guards its own invariants while the stock
// ledger domain service and the command handlers coordinate cross-aggregate
// consistency.
package order
