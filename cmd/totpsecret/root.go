package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/progressdash/pkg/auth"
	"github.com/dmitrymomot/progressdash/pkg/base32"
	"github.com/dmitrymomot/progressdash/pkg/qrcode"
	"github.com/dmitrymomot/progressdash/pkg/totp"
	"github.com/dmitrymomot/progressdash/pkg/validator"
)

var (
	errInvalidUsername = errors.New("username must be 3 to 32 characters of letters, digits or underscore")
	errInvalidPassword = errors.New("password must be at least 12 characters with upper and lower case letters, two digits and a symbol")
	errInvalidSecret   = errors.New("secret is not valid base32")
)

type options struct {
	user     string
	password string
	secret   string
	qr       string
	issuer   string
	cost     int
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "totpsecret",
		Short:         "Generate the credential columns for a dashboard user",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return generate(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.user, "user", "u", "", "username the secret is enrolled for")
	f.StringVarP(&opts.password, "password", "p", "", "plaintext password that encrypts the secret")
	f.StringVarP(&opts.secret, "secret", "s", "", "existing base32 secret; a random one is generated when empty")
	f.StringVar(&opts.qr, "qr", "", "write the enrollment QR code PNG to this path")
	f.StringVar(&opts.issuer, "issuer", "Degree Progression Dashboard", "issuer label shown by authenticator apps")
	f.IntVar(&opts.cost, "cost", bcrypt.DefaultCost, "bcrypt cost of the printed password hash")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func generate(out io.Writer, opts options) error {
	if !validator.IsUsername(opts.user) {
		return errInvalidUsername
	}
	if !validator.IsPassword(opts.password) {
		return errInvalidPassword
	}

	secret, err := resolveSecret(opts.secret)
	if err != nil {
		return err
	}

	ciphertext, nonce, err := totp.EncryptSecret(secret, opts.password)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(opts.password, opts.cost)
	if err != nil {
		return err
	}

	uri := totp.New(totp.WithIssuer(opts.issuer)).EnrollmentURI(secret, opts.user)

	fmt.Fprintf(out, "secret:            %s\n", base32.Encode(secret))
	fmt.Fprintf(out, "enrollment uri:    %s\n", uri)
	fmt.Fprintf(out, "two_factor_secret: \\x%s\n", hex.EncodeToString(ciphertext))
	fmt.Fprintf(out, "two_factor_nonce:  \\x%s\n", hex.EncodeToString(nonce))
	fmt.Fprintf(out, "password_hash:     %s\n", hash)

	if opts.qr != "" {
		if err := qrcode.WriteFile(opts.qr, uri, 0); err != nil {
			return err
		}
		fmt.Fprintf(out, "qr code:           %s\n", opts.qr)
	}

	return nil
}

func resolveSecret(encoded string) ([]byte, error) {
	if encoded == "" {
		return totp.GenerateSecret()
	}
	secret, err := base32.Decode(encoded)
	if err != nil || len(secret) == 0 {
		return nil, errors.Join(errInvalidSecret, err)
	}
	return secret, nil
}
