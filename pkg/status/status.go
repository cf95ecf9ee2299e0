package status

import (
	"net/http"
	"strconv"
)

// Code is the outcome of an API operation as reported to the client.
type Code int

const (
	Error                       Code = -1
	Success                     Code = 0
	MalformedInput              Code = 1
	UnknownUser                 Code = 2
	IncorrectPassword           Code = 3
	TwoFactorCodeRequired       Code = 4
	TwoFactorCodeIncorrect      Code = 5
	UserNotLoggedIn             Code = 6
	UsernameValidationFailure   Code = 7
	PasswordValidationFailure   Code = 8
	TwoFactorValidationFailure  Code = 9
	AssignmentIdentifierEmpty   Code = 10
	AssignmentScoreEmpty        Code = 11
	AssignmentIdentifierInvalid Code = 12
	AssignmentScoreInvalid      Code = 13
)

// Valid reports whether c is one of the declared codes.
func (c Code) Valid() bool {
	return c >= Error && c <= AssignmentScoreInvalid
}

// Int returns the wire value.
func (c Code) Int() int {
	return int(c)
}

// String returns the code name.
func (c Code) String() string {
	switch c {
	case Error:
		return "Error"
	case Success:
		return "Success"
	case MalformedInput:
		return "MalformedInput"
	case UnknownUser:
		return "UnknownUser"
	case IncorrectPassword:
		return "IncorrectPassword"
	case TwoFactorCodeRequired:
		return "TwoFactorCodeRequired"
	case TwoFactorCodeIncorrect:
		return "TwoFactorCodeIncorrect"
	case UserNotLoggedIn:
		return "UserNotLoggedIn"
	case UsernameValidationFailure:
		return "UsernameValidationFailure"
	case PasswordValidationFailure:
		return "PasswordValidationFailure"
	case TwoFactorValidationFailure:
		return "TwoFactorValidationFailure"
	case AssignmentIdentifierEmpty:
		return "AssignmentIdentifierEmpty"
	case AssignmentScoreEmpty:
		return "AssignmentScoreEmpty"
	case AssignmentIdentifierInvalid:
		return "AssignmentIdentifierInvalid"
	case AssignmentScoreInvalid:
		return "AssignmentScoreInvalid"
	}
	return "Code(" + strconv.Itoa(int(c)) + ")"
}

// HTTPStatus maps the code to the HTTP response status.
// Input and authentication failures are regular outcomes and travel with 200.
func (c Code) HTTPStatus() int {
	switch c {
	case Success,
		MalformedInput,
		UnknownUser,
		IncorrectPassword,
		TwoFactorCodeRequired,
		TwoFactorCodeIncorrect,
		UsernameValidationFailure,
		PasswordValidationFailure,
		TwoFactorValidationFailure,
		AssignmentIdentifierEmpty,
		AssignmentScoreEmpty,
		AssignmentIdentifierInvalid,
		AssignmentScoreInvalid:
		return http.StatusOK
	case UserNotLoggedIn:
		return http.StatusUnauthorized
	case Error:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// MarshalJSON encodes the code as its integer value.
func (c Code) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(c), 10), nil
}
