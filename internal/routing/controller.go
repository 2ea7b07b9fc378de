package routing

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// State is a navigation state of the client-facing flow
type State string

const (
	// StateIdle is the initial state before an identity is available
	StateIdle State = "idle"
	// StateResolving means a landing resolution is in flight
	StateResolving State = "resolving"
	// StateCreateJoin shows the create/join flow (no memberships)
	StateCreateJoin State = "create_join"
	// StateWorkspaceView shows a specific workspace
	StateWorkspaceView State = "workspace_view"
	// StateError is entered on a resolution failure; not auto-retried
	StateError State = "error"
	// StateLoggedOut is terminal; the client redirects to authentication
	StateLoggedOut State = "logged_out"
)

// ErrInvalidTransition is returned when an event is not legal in the current state
var ErrInvalidTransition = errors.New("invalid state transition")

// Controller sequences identity resolution, landing outcomes, and explicit
// navigation. Resolution outcomes only apply while in StateResolving;
// explicit navigation between already-resolved workspaces transitions
// directly without re-resolving membership. Safe for concurrent use.
type Controller struct {
	mu          sync.Mutex
	state       State
	workspaceID uuid.UUID
}

// NewController creates a Controller in StateIdle
func NewController() *Controller {
	return &Controller{state: StateIdle}
}

// State returns the current state
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// WorkspaceID returns the workspace shown in StateWorkspaceView, or uuid.Nil
func (c *Controller) WorkspaceID() uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.workspaceID
}

// IdentityAvailable enters StateResolving. Legal from StateIdle and, via an
// explicit user re-trigger such as a reload, from StateError.
func (c *Controller) IdentityAvailable() error {
	return c.transition(StateResolving, uuid.Nil, StateIdle, StateError)
}

// ResolvedCreateJoin applies a create_join resolution outcome
func (c *Controller) ResolvedCreateJoin() error {
	return c.transition(StateCreateJoin, uuid.Nil, StateResolving)
}

// ResolvedWorkspace applies a workspace resolution outcome
func (c *Controller) ResolvedWorkspace(workspaceID uuid.UUID) error {
	return c.transition(StateWorkspaceView, workspaceID, StateResolving)
}

// ResolutionFailed enters StateError. Only reachable from StateResolving.
func (c *Controller) ResolutionFailed() error {
	return c.transition(StateError, uuid.Nil, StateResolving)
}

// NavigateToWorkspace switches to a workspace without re-resolving
// membership: from another workspace card, or out of the create/join flow
// after a successful create or join.
func (c *Controller) NavigateToWorkspace(workspaceID uuid.UUID) error {
	return c.transition(StateWorkspaceView, workspaceID, StateWorkspaceView, StateCreateJoin)
}

// Reresolve re-enters StateResolving from a workspace view, e.g. after a
// workspace was deleted and the remaining membership set must be recomputed
func (c *Controller) Reresolve() error {
	return c.transition(StateResolving, uuid.Nil, StateWorkspaceView, StateCreateJoin)
}

// Logout enters the terminal StateLoggedOut. Legal from every state except
// StateLoggedOut itself; all subsequent events fail.
func (c *Controller) Logout() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateLoggedOut {
		return fmt.Errorf("%w: already logged out", ErrInvalidTransition)
	}
	c.state = StateLoggedOut
	c.workspaceID = uuid.Nil
	return nil
}

func (c *Controller) transition(to State, workspaceID uuid.UUID, from ...State) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range from {
		if c.state == s {
			c.state = to
			c.workspaceID = workspaceID
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.state, to)
}
