package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInstalled() OAuthInstalled {
	return OAuthInstalled{
		ClientID:                "alerts.apps.googleusercontent.com",
		ProjectID:               "save-a-life",
		AuthURI:                 "https://accounts.google.com/o/oauth2/auth",
		TokenURI:                "https://oauth2.googleapis.com/token",
		AuthProviderX509CertURL: "https://www.googleapis.com/oauth2/v1/certs",
		ClientSecret:            "secret",
		RedirectURIs:            []string{"http://localhost"},
	}
}

func TestValidateOAuthClient(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*OAuthInstalled)
		wantErr bool
	}{
		{"valid", func(*OAuthInstalled) {}, false},
		{"missing client id", func(i *OAuthInstalled) { i.ClientID = "" }, true},
		{"missing secret", func(i *OAuthInstalled) { i.ClientSecret = "" }, true},
		{"auth uri not a url", func(i *OAuthInstalled) { i.AuthURI = "not-a-url" }, true},
		{"no redirect uris", func(i *OAuthInstalled) { i.RedirectURIs = nil }, true},
		{"bad redirect uri", func(i *OAuthInstalled) { i.RedirectURIs = []string{"not a uri"} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			installed := validInstalled()
			tt.mutate(&installed)

			err := ValidateOAuthClient(&OAuthClientConfig{Installed: installed})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "validation failed")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadOAuthClientFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oauthClient.test.json")
	contents := `{
  "installed": {
    "client_id": "alerts.apps.googleusercontent.com",
    "project_id": "save-a-life",
    "auth_uri": "https://accounts.google.com/o/oauth2/auth",
    "token_uri": "https://oauth2.googleapis.com/token",
    "auth_provider_x509_cert_url": "https://www.googleapis.com/oauth2/v1/certs",
    "client_secret": "secret",
    "redirect_uris": ["http://localhost"]
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg, err := LoadOAuthClientFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "save-a-life", cfg.Installed.ProjectID)
	assert.Equal(t, []string{"http://localhost"}, cfg.Installed.RedirectURIs)
}

func TestLoadOAuthClientFromPath_Errors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"installed": {"client_id": "x" "oops"}}`), 0644))

	incomplete := filepath.Join(dir, "incomplete.json")
	require.NoError(t, os.WriteFile(incomplete, []byte(`{"installed": {"client_id": "x"}}`), 0644))

	_, err := LoadOAuthClientFromPath(filepath.Join(dir, "missing.json"))
	assert.ErrorContains(t, err, "failed to read oauth client file")

	_, err = LoadOAuthClientFromPath(broken)
	assert.ErrorContains(t, err, "failed to parse oauth client file")

	_, err = LoadOAuthClientFromPath(incomplete)
	assert.ErrorContains(t, err, "validation failed")
}

func TestFindEnvFile_CurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	require.NoError(t, os.WriteFile("save_a_life_config.staging.yaml", []byte("store: {}"), 0644))

	path, err := findEnvFile("save_a_life_config", "staging", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "save_a_life_config.staging.yaml", path)

	_, err = findEnvFile("save_a_life_config", "prod", "yaml")
	assert.ErrorContains(t, err, "save_a_life_config.prod.yaml not found")
}

func TestTokenPath(t *testing.T) {
	path, err := TokenPath("test")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join(".save-a-life", "oauthToken.test.json")))

	path, err = TokenPath("")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "oauthToken.json"))
}
