package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOAuthClient() *OAuthClientConfig {
	return &OAuthClientConfig{
		Installed: OAuthInstalled{
			ClientID:                "scheduler.apps.googleusercontent.com",
			ProjectID:               "meeting-scheduler",
			AuthURI:                 "https://accounts.google.com/o/oauth2/auth",
			TokenURI:                "https://oauth2.googleapis.com/token",
			AuthProviderX509CertURL: "https://www.googleapis.com/oauth2/v1/certs",
			ClientSecret:            "secret",
			RedirectURIs:            []string{"http://localhost"},
		},
	}
}

func TestValidateOAuthClient(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*OAuthClientConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(*OAuthClientConfig) {}},
		{name: "missing client id", mutate: func(c *OAuthClientConfig) { c.Installed.ClientID = "" }, wantErr: true},
		{name: "invalid auth uri", mutate: func(c *OAuthClientConfig) { c.Installed.AuthURI = "not-a-valid-url" }, wantErr: true},
		{name: "no redirect uris", mutate: func(c *OAuthClientConfig) { c.Installed.RedirectURIs = []string{} }, wantErr: true},
		{name: "invalid redirect uri", mutate: func(c *OAuthClientConfig) { c.Installed.RedirectURIs = []string{"not a valid uri"} }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validOAuthClient()
			tt.mutate(cfg)

			err := ValidateOAuthClient(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "validation failed")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadOAuthClientFromPath_ValidConfig(t *testing.T) {
	oauthPath := filepath.Join(t.TempDir(), "oauthClient.json")

	validOAuth := `{
  "installed": {
    "client_id": "scheduler.apps.googleusercontent.com",
    "project_id": "meeting-scheduler",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "auth_provider_x509_cert_url": "https://www.googleapis.com/oauth2/v1/certs",
    "client_secret": "secret",
    "redirect_uris": ["http://localhost"]
  }
}`
	require.NoError(t, os.WriteFile(oauthPath, []byte(validOAuth), 0644))

	cfg, err := LoadOAuthClientFromPath(oauthPath)
	require.NoError(t, err)

	assert.Equal(t, validOAuthClient(), cfg)
}

func TestLoadOAuthClientFromPath_InvalidJSON(t *testing.T) {
	oauthPath := filepath.Join(t.TempDir(), "invalid_oauth.json")
	require.NoError(t, os.WriteFile(oauthPath, []byte(`{"installed": {"client_id": "x" "project_id": "y"}}`), 0644))

	_, err := LoadOAuthClientFromPath(oauthPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse oauth client file")
}

func TestLoadOAuthClientWithEnv_NotFound(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := LoadOAuthClientWithEnv("nowhere")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "oauthClient.nowhere.json not found")
}
