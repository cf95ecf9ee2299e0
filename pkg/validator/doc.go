// Package validator holds the format checks applied to user input before any storage
// or cryptographic work happens.
//
// The credential predicates IsUsername, IsPassword and IsTwoFactorCode are pure
// functions used directly by the login flow. The same checks are also exposed as Rule
// values so handlers can validate a whole form in one call:
//
//	err := validator.ApplyFirst(
//	    validator.Required("assignment", form.Assignment),
//	    validator.PositiveInteger("assignment", form.Assignment),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    first, _ := verrs.First()
//	    // map first.Field to a status code
//	}
//
// ValidationErrors implements error and matches ErrValidationFailed with errors.Is.
package validator
