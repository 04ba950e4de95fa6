package order

import (
	"errors"
	"time"

	"ordertrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is the aggregate root for a customer's purchase. It owns the ordered
// line set and drives the order-status state machine.
//
// Invariants:
//   - At least one line; every line has quantity > 0
//   - Total amount equals the sum of line subtotals as of the last pricing
//   - Status changes only through the transition table (see Status)
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is assigned by the record store on first save (0 before that)
	id int64

	// customerID references the ordering customer
	customerID int64

	// date is the placement date
	date time.Time

	// status is the current state in the order lifecycle
	status Status

	// totalAmount is derived from the lines at pricing time
	totalAmount decimal.Decimal

	// lines is the ordered line set (order matters only for display)
	lines []Line

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in PENDING status dated now.
// The lines are unpriced until Price is called; persisting an unpriced order
// records a zero total.
//
// Returns a validation error when customerID is missing or the line set is
// empty.
func NewOrder(customerID int64, lines []Line) (*Order, error) {
	o := &Order{
		status:        Pending,
		date:          time.Now(),
		totalAmount:   decimal.Zero,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
func RestoreOrder(
	id, customerID int64,
	date time.Time,
	status Status,
	totalAmount decimal.Decimal,
	lines []Line,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		id:            id,
		date:          date,
		status:        status,
		totalAmount:   totalAmount,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's identifier (0 until persisted).
func (o *Order) ID() int64 {
	return o.id
}

// AssignID records the identifier generated by the record store.
// Called once by the repository after the first save.
func (o *Order) AssignID(id int64) {
	o.id = id
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// Date returns the placement date.
func (o *Order) Date() time.Time {
	return o.date
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the derived order total as of the last pricing.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Lines returns a copy of the order's line set.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// IsCancelled reports whether the order is in CANCELLED status.
func (o *Order) IsCancelled() bool {
	return o.status == Cancelled
}

// Price re-prices every line from the supplied current product prices,
// overwriting each line's unit price snapshot, and recomputes the total.
//
// The prices map is keyed by product identifier. A line whose product is
// missing from the map fails the whole call with a not-found error and the
// order is left unchanged.
func (o *Order) Price(prices map[int64]decimal.Decimal) error {
	priced := make([]Line, len(o.lines))
	total := decimal.Zero

	for i, line := range o.lines {
		price, ok := prices[line.productID]
		if !ok {
			return errs.NewObjectNotFoundError("product", line.productID)
		}

		line.unitPrice = price
		priced[i] = line
		total = total.Add(line.Subtotal())
	}

	o.lines = priced
	o.totalAmount = total
	return nil
}

// ChangeStatus moves the order to next, subject to the transition table.
// This is the single entry point for every order status change, including
// the projection applied when the associated delivery progresses.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order to CANCELLED. Fails with ErrInvalidStatusTransition
// when the order is already DELIVERED or CANCELLED. Stock restoration is the
// caller's responsibility; the aggregate only guards the transition.
func (o *Order) Cancel() error {
	return o.ChangeStatus(Cancelled)
}

// ReplaceLines swaps the order's line set for a new one. The new lines are
// unpriced; callers must re-price the order afterwards.
func (o *Order) ReplaceLines(lines []Line) error {
	return o.setLines(lines)
}

// ChangeCustomer re-points the order at another customer.
func (o *Order) ChangeCustomer(customerID int64) error {
	return o.setCustomerID(customerID)
}

// ChangeDate overwrites the placement date.
func (o *Order) ChangeDate(date time.Time) {
	o.date = date
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsRequiredError("customerID")
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)

	return nil
}
