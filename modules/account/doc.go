// Package account mounts the authentication endpoints of the API.
//
// POST /login accepts the form fields username, password and twoFactor, runs the
// auth.Authenticator login sequence against a per-request session.Guard and answers
// with the resulting status code and a null payload.
package account
