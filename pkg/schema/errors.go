package schema

import "fmt"

// Issue represents a single validation finding on one node field.
type Issue struct {
	NodeID string // ID of the offending node (may be empty)
	Field  string // Field name, e.g. "probability", "brackets.min"
	Reason string // Human-readable reason for the failure
	Value  any    // The offending value, when useful
}

func (i Issue) String() string {
	if i.Value == nil {
		return fmt.Sprintf("node %q field %q: %s", i.NodeID, i.Field, i.Reason)
	}
	return fmt.Sprintf("node %q field %q: %s (got %v)", i.NodeID, i.Field, i.Reason, i.Value)
}

// ConfigurationError aggregates every issue found in a preset. It is the
// only error class the engine surfaces: raised at validation time, before
// generation is ever attempted.
type ConfigurationError struct {
	Issues []Issue
}

func (e *ConfigurationError) Error() string {
	if len(e.Issues) == 1 {
		return e.Issues[0].String()
	}
	msg := fmt.Sprintf("%d configuration issues:\n", len(e.Issues))
	for i, issue := range e.Issues {
		msg += fmt.Sprintf("  %d. %s\n", i+1, issue.String())
	}
	return msg
}

// ConfigurationIssues returns the issues if err is a *ConfigurationError,
// otherwise nil.
func ConfigurationIssues(err error) []Issue {
	if cfg, ok := err.(*ConfigurationError); ok {
		return cfg.Issues
	}
	return nil
}
