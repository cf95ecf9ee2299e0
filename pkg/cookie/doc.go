// Package cookie writes and reads HTTP cookies with secure defaults and HMAC signing.
//
// A Manager defaults every cookie to Path=/, Secure, HttpOnly and SameSite=Strict and
// omits Max-Age, so cookies live until the browser session ends. SetSigned appends an
// HMAC-SHA256 of the value and GetSigned rejects any cookie whose signature does not
// match one of the configured secrets.
//
//	m, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	m.SetSigned(w, "sessionIdentifier", token)
//	token, err := m.GetSigned(r, "sessionIdentifier")
package cookie
