package PDDO1D

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks a horizon, spacing or order that cannot produce a stencil
	ErrConfiguration = errors.New("pddo: invalid configuration")
	// ErrSingularSystem marks a moment matrix that cannot be inverted
	ErrSingularSystem = errors.New("pddo: singular moment matrix")
)

// ConfigurationError names the parameter that failed validation
type ConfigurationError struct {
	Parameter string
	Value     float64
	Reason    string
}

func NewConfigurationError(parameter string, value float64, reason string) error {
	return &ConfigurationError{
		Parameter: parameter,
		Value:     value,
		Reason:    reason,
	}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v: %s = %v, %s", ErrConfiguration, e.Parameter, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}
