// Package model provides state management shared by xgrove estimators.
package model

import (
	"github.com/grovelabs/xgrove/pkg/errors"
)

// StateManager tracks the fitted state of an estimator in a thread-safe way
// for readers: the flag and dimensions are written once at the end of Fit
// and only read afterwards, so concurrent Predict calls never race with each
// other.
type StateManager struct {
	fitted    bool
	nRows     int
	nAttrs    int
	modelName string
}

// NewStateManager creates a StateManager for the named estimator. The name
// appears in NotFittedError messages.
func NewStateManager(modelName string) *StateManager {
	return &StateManager{modelName: modelName}
}

// IsFitted returns whether the estimator has been fitted.
func (s *StateManager) IsFitted() bool {
	return s.fitted
}

// SetFitted marks the estimator as fitted with the training dimensions.
func (s *StateManager) SetFitted(nRows, nAttrs int) {
	s.fitted = true
	s.nRows = nRows
	s.nAttrs = nAttrs
}

// Reset clears the fitted state.
func (s *StateManager) Reset() {
	s.fitted = false
	s.nRows = 0
	s.nAttrs = 0
}

// Dimensions returns the row and attribute counts seen during fitting.
func (s *StateManager) Dimensions() (nRows, nAttrs int) {
	return s.nRows, s.nAttrs
}

// RequireFitted returns a NotFittedError naming the calling method if the
// estimator has not been fitted.
func (s *StateManager) RequireFitted(method string) error {
	if !s.fitted {
		return errors.NewNotFittedError(s.modelName, method)
	}
	return nil
}
