// Package roble provides an authenticated HTTP client for the Roble
// backend platform.
//
// The client wraps login/refresh/logout and the CRUD verbs of the Roble
// database API, with a single refresh-and-retry cycle when an access token
// expires.
//
// # Basic Usage
//
//	c, err := roble.New("https://roble.example.com", "myproject")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if _, err := c.Login(ctx, "user@example.com", "secret"); err != nil {
//	    log.Fatal(err)
//	}
//
//	rows, err := c.GetAll(ctx, "users")
//
// # Configuration
//
// All configuration beyond the required base URL and project code is
// supplied as [Option] functions passed to [New]. [NewFromEnv] reads the
// required values from ROBLE_-prefixed environment variables instead.
//
// # Authentication
//
// [Client.Login] stores the access/refresh token pair returned by the
// backend; every subsequent request carries the access token as a bearer
// header. When a database request is rejected with 401 the client performs
// exactly one refresh-and-retry cycle before surfacing the failure, which
// transparently recovers from access-token expiry without risking a refresh
// loop. Register an observer with [Client.OnAccessTokenChange] to persist
// tokens across restarts, and restore them with [Client.SetTokens].
//
// # Errors
//
// Every failure surfaces as an [*Error] whose [ErrorKind] distinguishes
// the failure class; use [IsKind] or the Is helpers to branch on it.
//
// # Debugging
//
// Set ROBLE_DEBUG=true (or DEBUG=true) to dump every request and response
// through zerolog, or pass [WithDebugLogging] explicitly.
package roble
