// Package auth implements the username and password login sequence with an optional
// TOTP second factor.
//
// Authenticator.Login validates the submitted Credential, looks the user up through a
// UserFinder, verifies the password hash with a PasswordVerifier (bcrypt by default),
// checks the second factor when the user has one and finally asks a SessionEstablisher
// to bind a new session. The result is always one status.Code; an error accompanies
// status.Error only, for failures of the storage or session layer.
//
//	a := auth.New(usersRepo, totp.New(), auth.WithLogger(log))
//	code, err := a.Login(ctx, sessions.Guard(w, r), auth.Credential{
//	    Username:      r.FormValue("username"),
//	    Password:      r.FormValue("password"),
//	    TwoFactorCode: r.FormValue("twoFactor"),
//	})
//
// The user lookup is expected to decrypt the stored second factor secret with the
// submitted password (see totp.DecryptSecret). A wrong password therefore yields an
// empty secret, and the attempt fails at the password hash check that follows.
package auth
