package configarray

import "fmt"

// knownEnvNames lists the environment identifiers the validator accepts.
// Unknown names are reported as errors rather than silently accepted.
var knownEnvNames = map[string]bool{
	"browser":       true,
	"node":          true,
	"es2015":        true,
	"es2017":        true,
	"es2020":        true,
	"es2021":        true,
	"es2022":        true,
	"commonjs":      true,
	"worker":        true,
	"serviceworker": true,
	"jest":          true,
	"mocha":         true,
}

// ValidationError describes one problem found while validating a finalized
// ConfigArray. Field is the dotted path of the offending setting, e.g.
// "rules.no-undef" or "env.browzer".
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the schema of a fully composed ConfigArray: rule settings
// must have a recognizable severity, declared env names must be known, and
// global access modes must already have been normalized by ParseAccessMode
// (call sites build Globals only through that parser, so malformed aliases
// are caught at load time -- this pass re-checks the invariant holds).
//
// Validate accumulates every problem found rather than stopping at the
// first one.
func Validate(array *ConfigArray) []ValidationError {
	var errs []ValidationError
	if array == nil {
		return errs
	}

	for _, elem := range array.Elements {
		errs = append(errs, validateElement(elem)...)
		for _, ov := range elem.Overrides {
			errs = append(errs, validateOverride(ov)...)
		}
	}
	return errs
}

func validateElement(e *ConfigElement) []ValidationError {
	var errs []ValidationError
	for name := range e.Env {
		if !knownEnvNames[name] {
			errs = append(errs, ValidationError{
				Field:   "env." + name,
				Message: fmt.Sprintf("unrecognized environment %q in %s", name, e.Name),
			})
		}
	}
	for id, rule := range e.Rules {
		if rule.Severity != SeverityOff && rule.Severity != SeverityWarn && rule.Severity != SeverityError {
			errs = append(errs, ValidationError{
				Field:   "rules." + id,
				Message: "invalid severity",
			})
		}
	}
	for name, mode := range e.Globals {
		if mode != AccessOff && mode != AccessReadonly && mode != AccessWritable {
			errs = append(errs, ValidationError{Field: "globals." + name, Message: "invalid access mode"})
		}
	}
	return errs
}

func validateOverride(ov OverrideEntry) []ValidationError {
	var errs []ValidationError
	if len(ov.Files) == 0 {
		errs = append(errs, ValidationError{
			Field:   "overrides",
			Message: "override entry must declare at least one files pattern",
		})
	}
	for id, rule := range ov.Rules {
		if rule.Severity != SeverityOff && rule.Severity != SeverityWarn && rule.Severity != SeverityError {
			errs = append(errs, ValidationError{
				Field:   "overrides.rules." + id,
				Message: "invalid severity",
			})
		}
	}
	for name, mode := range ov.Globals {
		if mode != AccessOff && mode != AccessReadonly && mode != AccessWritable {
			errs = append(errs, ValidationError{Field: "overrides.globals." + name, Message: "invalid access mode"})
		}
	}
	return errs
}
