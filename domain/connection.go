package domain

import "github.com/google/uuid"

// ConnectionID is the opaque handle of one live transport session.
type ConnectionID string

func NewConnectionID() ConnectionID {
	return ConnectionID(uuid.NewString())
}

func (c ConnectionID) String() string { return string(c) }
