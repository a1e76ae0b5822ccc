package shell

import "fmt"

// ConfigurationError reports a navigation request that names a step the
// registry does not know. It indicates a wiring mistake, not visitor input.
type ConfigurationError struct {
	StepID string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unknown studio step %q", e.StepID)
}
