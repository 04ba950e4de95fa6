package commands

import (
	"errors"

	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var (
	ErrCreateCarrierCommandIsNotConstructed = errors.New(
		"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
	)
)

// CreateCarrierCommand represents a request to register a new carrier.
type CreateCarrierCommand struct {
	name  string
	phone string
	note  string

	guard guard.ConstructorGuard
}

// NewCreateCarrierCommand creates a command to register a carrier.
func NewCreateCarrierCommand(name, phone, note string) (CreateCarrierCommand, error) {
	if name == "" {
		return CreateCarrierCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateCarrierCommand{
		name:  name,
		phone: phone,
		note:  note,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

// Name returns the carrier name.
func (c CreateCarrierCommand) Name() string {
	return c.name
}

// Phone returns the carrier phone number.
func (c CreateCarrierCommand) Phone() string {
	return c.phone
}

// Note returns the free-form carrier note.
func (c CreateCarrierCommand) Note() string {
	return c.note
}
