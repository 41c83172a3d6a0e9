package client

import "github.com/kelseyhightower/envconfig"

// Environment variables consulted when no credentials are passed explicitly.
const (
	EnvTokenID     = "MUX_TOKEN_ID"
	EnvTokenSecret = "MUX_TOKEN_SECRET"
)

// Credentials is the Mux access token pair sent as HTTP Basic Auth
// (token ID as username, token secret as password). Immutable once a Client
// has been constructed from it.
type Credentials struct {
	TokenID     string
	TokenSecret string
}

func (cr Credentials) isZero() bool { return cr.TokenID == "" && cr.TokenSecret == "" }

// envCredentials mirrors the MUX_TOKEN_ID / MUX_TOKEN_SECRET variables.
type envCredentials struct {
	TokenID     string `envconfig:"TOKEN_ID"`
	TokenSecret string `envconfig:"TOKEN_SECRET"`
}

// resolveCredentials applies the documented precedence: explicit constructor
// values, then an injected environment snapshot, then the process
// environment. Either token may come back empty; that is accepted here and
// surfaces as an auth failure on the first request.
func resolveCredentials(explicit Credentials, environ map[string]string) Credentials {
	if !explicit.isZero() {
		return explicit
	}
	if environ != nil {
		return Credentials{TokenID: environ[EnvTokenID], TokenSecret: environ[EnvTokenSecret]}
	}
	var ec envCredentials
	// Plain string fields cannot fail to parse; absent vars stay empty.
	_ = envconfig.Process("MUX", &ec)
	return Credentials{TokenID: ec.TokenID, TokenSecret: ec.TokenSecret}
}
