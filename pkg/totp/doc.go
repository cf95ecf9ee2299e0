// Package totp implements RFC 6238 time-based one-time passwords for the login flow.
//
// A Generator computes six digit HMAC-SHA1 codes over a 30 second step and accepts the
// codes of the previous, current and next step so that modest clock drift between the
// server and the user's authenticator app is tolerated. The same Generator renders the
// otpauth:// enrollment URI that authenticator apps scan.
//
// Secrets are stored encrypted at rest. EncryptSecret and DecryptSecret seal them with
// AES-256-GCM under a key derived from the user's plaintext password (HKDF-SHA512 salted
// with a per-user nonce), so a secret can only be recovered while that user is logging in
// with the right password. DecryptSecret returns nil instead of an error on failure.
//
// # Usage
//
//	gen := totp.New(totp.WithIssuer("Degree Progression Dashboard"))
//
//	secret, _ := totp.GenerateSecret()
//	uri := gen.EnrollmentURI(secret, "alice")
//
//	ciphertext, nonce, _ := totp.EncryptSecret(secret, "Correct-Horse-42")
//	// ... persist ciphertext and nonce ...
//
//	plain := totp.DecryptSecret(ciphertext, nonce, "Correct-Horse-42")
//	ok := gen.Verify(plain, "123 456")
//
// # See Also
//
//   - RFC 4226: HMAC-Based One-Time Password (HOTP) Algorithm
//   - RFC 6238: Time-Based One-Time Password (TOTP) Algorithm
package totp
