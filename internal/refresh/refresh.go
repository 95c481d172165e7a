// Where: internal/refresh/refresh.go
// What: The refresh orchestration: verify, re-auth, fetch, store.
// Why: One linear pass per invocation; retries belong to the scheduler, not here.
package refresh

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/catr-tool/catr/internal/ports"
)

// Orchestrator drives a single token refresh. Every state transition is
// logged; failures additionally surface as a desktop notification. Nothing
// is retried within one invocation.
type Orchestrator struct {
	Identity ports.IdentityClient
	Tokens   ports.TokenSource
	Store    ports.TokenStore
	Notifier ports.Notifier
	Log      *slog.Logger
	// Source names the credential slot, used in user-facing messages.
	Source string
}

// Run executes the refresh and classifies the outcome.
func (o *Orchestrator) Run(ctx context.Context) ports.Result {
	o.Log.Info("refresh started", "source", o.Source)

	if !o.Identity.IsValid(ctx) {
		o.Log.Info("credentials invalid, attempting silent re-authentication")
		if err := o.Identity.SilentLogin(ctx); err != nil {
			o.Log.Warn("silent re-authentication failed", "error", err)
			o.Notifier.Notify(false, "Token refresh failed",
				"Cloud session expired. Run 'catr login' to re-authenticate.")
			return ports.ResultAuthRequired
		}
		o.Log.Info("silent re-authentication succeeded")
	}

	token, err := o.Tokens.Fetch(ctx)
	if err != nil {
		o.Log.Error("token fetch failed", "error", err)
		o.Notifier.Notify(false, "Token refresh failed",
			fmt.Sprintf("Could not fetch a token for %s.", o.Source))
		return ports.ResultTokenFetchFailed
	}
	// Length of the actually fetched token; informational only.
	o.Log.Info("token fetched", "length", len(token))

	if err := o.Store.Update(ctx, token); err != nil {
		o.Log.Error("store update failed", "error", err)
		o.Notifier.Notify(false, "Token refresh failed",
			fmt.Sprintf("Could not update credential store for %s.", o.Source))
		return ports.ResultStoreUpdateFailed
	}

	o.Log.Info("refresh succeeded", "source", o.Source)
	o.Notifier.Notify(true, "Token refreshed",
		fmt.Sprintf("Credential store updated for %s.", o.Source))
	return ports.ResultSuccess
}
