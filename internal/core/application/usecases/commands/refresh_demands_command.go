package commands

import (
	"errors"

	"hatbazar/internal/pkg/guard"
)

var ErrRefreshDemandsCommandIsNotConstructed = errors.New(
	"RefreshDemandsCommand must be created via NewRefreshDemandsCommand constructor",
)

// RefreshDemandsCommand requests one pull of the full demand snapshot from
// the external backend, followed by urgency and hotspot evaluation. Fired by
// the demand refresh job on its schedule.
type RefreshDemandsCommand struct {
	guard guard.ConstructorGuard
}

// NewRefreshDemandsCommand creates a parameterless demand refresh command.
func NewRefreshDemandsCommand() RefreshDemandsCommand {
	return RefreshDemandsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
// Returns ErrRefreshDemandsCommandIsNotConstructed if validation fails.
func (c RefreshDemandsCommand) Validate() error {
	return c.guard.Validate(ErrRefreshDemandsCommandIsNotConstructed)
}
