// Package qrcode renders QR code images for second factor enrollment.
//
// An otpauth:// enrollment URI produced by the totp package is encoded as a PNG
// that authenticator apps can scan:
//
//	uri := gen.EnrollmentURI(secret, "alice")
//	if err := qrcode.WriteFile("alice.png", uri, 0); err != nil {
//		// handle error
//	}
//
// DataURI returns the same image as a data:image/png;base64 string for embedding
// in a page. Rendering is delegated to github.com/skip2/go-qrcode.
package qrcode
