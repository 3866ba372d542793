package firestore

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"golang.org/x/oauth2/google"

	"github.com/acdih/synaptic/pkg/settings"
)

// Scopes requested for the service account token.
var Scopes = []string{
	"https://www.googleapis.com/auth/datastore",
	"https://www.googleapis.com/auth/cloud-platform",
}

const defaultTokenURI = "https://oauth2.googleapis.com/token"

type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`
	TokenURI    string `json:"token_uri"`
}

// ServiceAccountJSON renders creds as a Google service-account key file.
// Escaped "\n" sequences in the private key, common when the key is stored
// in a single-line environment variable, are turned into real newlines.
func ServiceAccountJSON(creds settings.Credentials) ([]byte, error) {
	if creds.ProjectID == "" || creds.PrivateKey == "" || creds.ClientEmail == "" {
		return nil, errors.Join(ErrInvalidCredentials, settings.ErrMissingCredentials)
	}

	return json.Marshal(serviceAccount{
		Type:        "service_account",
		ProjectID:   creds.ProjectID,
		PrivateKey:  normalizePrivateKey(creds.PrivateKey),
		ClientEmail: creds.ClientEmail,
		TokenURI:    defaultTokenURI,
	})
}

// TokenCredentials turns creds into OAuth2 credentials for the Firestore scopes.
// No network call is made; the key is used when the first token is requested.
func TokenCredentials(ctx context.Context, creds settings.Credentials) (*google.Credentials, error) {
	raw, err := ServiceAccountJSON(creds)
	if err != nil {
		return nil, err
	}

	c, err := google.CredentialsFromJSON(ctx, raw, Scopes...)
	if err != nil {
		return nil, errors.Join(ErrInvalidCredentials, err)
	}
	return c, nil
}

func normalizePrivateKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}
