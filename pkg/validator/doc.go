// Package validator provides small, composable validation rules used at the
// boundary of mutable builders.
//
// A Rule pairs a Check function with the ValidationError reported when the
// check fails. Rules are evaluated with Apply, which collects every failure
// into a ValidationErrors slice that satisfies the error interface.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.OneOf("priority", priority, []string{"high", "normal"}),
//	    validator.Between("time_to_live", ttl, 0, 2419200),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // ...
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors can be recovered from wrapped errors with errors.As or the
// ExtractValidationErrors helper. Fields lists the failing field names.
//
// The package holds no state and is safe for concurrent use.
package validator
