package soundcloud

import (
	"context"
	"net/http"

	"golang.org/x/oauth2/clientcredentials"
)

// tokenURL is SoundCloud's OAuth token endpoint for the client credentials
// flow.
const tokenURL = "https://secure.soundcloud.com/oauth/token"

// NewAuthenticatedClient returns an http.Client that obtains and refreshes
// API tokens via the client credentials grant. The context governs token
// fetches for the lifetime of the client.
func NewAuthenticatedClient(ctx context.Context, clientID, clientSecret string) *http.Client {
	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     tokenURL,
	}
	return cfg.Client(ctx)
}
