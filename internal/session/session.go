// Package session holds the per invocation state of the toolchain,
// most importantly the selected target.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/retroenv/retrotarget/internal/target"
)

var (
	// ErrTargetAlreadySet is returned when the target of a session is set more than once.
	ErrTargetAlreadySet = errors.New("target already set")
	// ErrInvalidTarget is returned when setting a target identifier that is not a known target.
	ErrInvalidTarget = errors.New("invalid target")
)

// Session contains the state of a single toolchain invocation.
// The zero value is a session for target.None.
type Session struct {
	mu        sync.RWMutex
	target    target.ID
	targetSet bool
}

// New returns a new session that has no target selected yet.
func New() *Session {
	return &Session{}
}

// SetTarget selects the target of the session. A target can only be set
// once, all later calls fail.
func (s *Session) SetTarget(id target.ID) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidTarget, int(id))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.targetSet {
		return fmt.Errorf("%w: '%s'", ErrTargetAlreadySet, s.target)
	}
	s.target = id
	s.targetSet = true
	return nil
}

// Target returns the selected target, target.None if none was set.
func (s *Session) Target() target.ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target
}

// TargetSet returns whether a target has been selected.
func (s *Session) TargetSet() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.targetSet
}

// Properties returns the properties of the selected target.
func (s *Session) Properties() *target.Properties {
	return target.PropertiesOf(s.Target())
}

// HasCapability returns whether the selected target has the given capability.
func (s *Session) HasCapability(capability target.Capability) bool {
	return target.HasCapability(capability)
}
