// Package environment names the deployment environment the service runs in.
//
// The value is read from APP_ENV and parsed with Parse. It selects the logger format
// and level and relaxes nothing else: cookies stay Secure in every environment unless
// explicitly configured otherwise.
package environment
