// Command totpsecret prepares the credential columns of a users row.
//
// It validates the username and password, generates or decodes a second factor
// secret, encrypts the secret with the password and prints the values to store
// together with the enrollment URI. The URI is also written as a QR code PNG.
//
//	totpsecret --user alice --password 'Correct!Horse42' --qr alice.png
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
