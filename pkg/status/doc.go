// Package status defines the closed set of outcome codes returned by the API.
//
// Every response carries exactly one Code in its envelope. Codes are integers on the wire
// and map onto an HTTP status through Code.HTTPStatus:
//
//	status.Success.HTTPStatus()         // 200
//	status.UserNotLoggedIn.HTTPStatus() // 401
//	status.Error.HTTPStatus()           // 500
package status
