// Package validator provides explicit, rule-based validation.
//
// A Rule pairs a Check func with the ValidationError reported when the check
// fails. Apply runs every rule and aggregates the failures into
// ValidationErrors, which implements error and lists each failing field with
// its reason:
//
//	err := validator.Apply(
//	    validator.RequiredString("project_id", cfg.ProjectID),
//	    validator.InRange("threshold", cfg.Threshold, 0.0, 1.0),
//	    validator.MinNum("workers", cfg.Workers, 1),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // ...
//	    }
//	}
//
// ValidationErrors matches ErrValidationFailed with errors.Is and survives
// wrapping with errors.Join, so callers can fold it into their own error kinds.
package validator
