// Where: internal/ports/result.go
// What: Outcome taxonomy for a single refresh invocation.
// Why: Callers branch on the outcome without parsing error strings.
package ports

import "errors"

// Result classifies the outcome of one refresh orchestration.
type Result int

const (
	// ResultSuccess means the token was fetched and stored.
	ResultSuccess Result = iota
	// ResultAuthRequired means credentials were invalid and the silent
	// re-authentication failed; a human has to run the interactive login.
	ResultAuthRequired
	// ResultTokenFetchFailed means the token request errored or returned
	// an empty token.
	ResultTokenFetchFailed
	// ResultStoreUpdateFailed means the credential store write-back failed.
	ResultStoreUpdateFailed
)

func (r Result) String() string {
	switch r {
	case ResultSuccess:
		return "success"
	case ResultAuthRequired:
		return "auth-required"
	case ResultTokenFetchFailed:
		return "token-fetch-failed"
	case ResultStoreUpdateFailed:
		return "store-update-failed"
	default:
		return "unknown"
	}
}

// Inspector sentinel errors.
var (
	// ErrConfigNotFound means the package manager's config file is absent.
	ErrConfigNotFound = errors.New("credential store config not found")
	// ErrTokenNotFound means the config exists but holds no token for the
	// configured source.
	ErrTokenNotFound = errors.New("no stored token for source")
)
