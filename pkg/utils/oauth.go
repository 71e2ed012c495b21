package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/jakechorley/meeting-scheduler/internal/config"
)

const (
	AuthPort       = 3000
	authTimeout    = 5 * time.Minute
	callbackPath   = "/oauth/callback"
	tokenDirName   = ".meeting-scheduler/tokens"
	tokenFilePerms = 0600
	tokenDirPerms  = 0700
	tokenInfoURL   = "https://oauth2.googleapis.com/tokeninfo"
)

// ScopeSheets is the only Google scope the scheduler needs: reading availability and publishing schedules
const ScopeSheets = "https://www.googleapis.com/auth/spreadsheets"

var (
	tokenCache   *oauth2.Token
	tokenCacheMu sync.Mutex
)

func requiredScopes() []string {
	return []string{ScopeSheets}
}

// GetOAuthConfig creates an OAuth2 config from the OAuth client configuration,
// redirecting to the local callback server
func GetOAuthConfig(oauthCfg *config.OAuthClientConfig) (*oauth2.Config, error) {
	oauthConfigJSON, err := json.Marshal(oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal oauth config: %w", err)
	}

	googleConfig, err := google.ConfigFromJSON(oauthConfigJSON, requiredScopes()...)
	if err != nil {
		return nil, fmt.Errorf("failed to create google config: %w", err)
	}

	googleConfig.RedirectURL = fmt.Sprintf("http://localhost:%d%s", AuthPort, callbackPath)

	return googleConfig, nil
}

// missingScopes returns the required scopes absent from a space separated granted list
func missingScopes(granted string) []string {
	grantedScopes := strings.Fields(granted)
	var missing []string
	for _, required := range requiredScopes() {
		if !slices.Contains(grantedScopes, required) {
			missing = append(missing, required)
		}
	}
	return missing
}

// validateTokenScopes asks Google's tokeninfo endpoint which scopes the token carries
func validateTokenScopes(ctx context.Context, token *oauth2.Token) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, tokenInfoURL+"?access_token="+token.AccessToken, nil)
	if err != nil {
		return fmt.Errorf("failed to create tokeninfo request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call tokeninfo endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("tokeninfo request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenInfo struct {
		Scope string `json:"scope"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenInfo); err != nil {
		return fmt.Errorf("failed to decode tokeninfo response: %w", err)
	}

	if missing := missingScopes(tokenInfo.Scope); len(missing) > 0 {
		return fmt.Errorf("token is missing required scopes: %v", missing)
	}

	return nil
}

// GetTokenWithFlow returns a usable token for env, trying the in-memory cache, then the
// token file (refreshing it if expired), then the interactive browser flow.
// Only one flow runs at a time.
func GetTokenWithFlow(ctx context.Context, oauthConfig *oauth2.Config, env string, logger *zap.Logger) (*oauth2.Token, error) {
	tokenCacheMu.Lock()
	defer tokenCacheMu.Unlock()

	if tokenCache != nil && tokenCache.Valid() {
		return tokenCache, nil
	}

	if token := loadCachedToken(ctx, oauthConfig, env, logger); token != nil {
		tokenCache = token
		return token, nil
	}

	logger.Info("No valid token found, starting OAuth flow")

	authURL := oauthConfig.AuthCodeURL("state", oauth2.AccessTypeOffline)
	fmt.Printf("\nVisit this URL to authorize the scheduler:\n%s\n\n", authURL)

	code, err := listenForAuthCallback(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get authorization code: %w", err)
	}

	token, err := oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	if err := validateTokenScopes(ctx, token); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	if err := SaveTokenToFile(env, token); err != nil {
		logger.Warn("Failed to save token to file", zap.Error(err))
	}

	tokenCache = token
	return token, nil
}

// loadCachedToken returns the persisted token if it is valid (or refreshable) and carries
// every required scope. Unusable token files are deleted.
func loadCachedToken(ctx context.Context, oauthConfig *oauth2.Config, env string, logger *zap.Logger) *oauth2.Token {
	fileToken, err := LoadTokenFromFile(env)
	if err != nil {
		logger.Warn("Failed to load token from file", zap.Error(err))
		return nil
	}
	if fileToken == nil {
		return nil
	}

	token := fileToken
	if !fileToken.Valid() {
		if fileToken.RefreshToken == "" {
			return nil
		}
		refreshed, err := oauthConfig.TokenSource(ctx, fileToken).Token()
		if err != nil || refreshed.AccessToken == fileToken.AccessToken {
			logger.Debug("Token refresh failed", zap.Error(err))
			return nil
		}
		token = refreshed
	}

	if err := validateTokenScopes(ctx, token); err != nil {
		logger.Warn("Cached token is unusable, deleting it", zap.Error(err))
		if err := DeleteTokenFile(env); err != nil {
			logger.Warn("Failed to delete token file", zap.Error(err))
		}
		return nil
	}

	if token != fileToken {
		logger.Info("Token refreshed")
		if err := SaveTokenToFile(env, token); err != nil {
			logger.Warn("Failed to save refreshed token", zap.Error(err))
		}
	}

	return token
}

// listenForAuthCallback serves the redirect URL until an authorization code arrives
func listenForAuthCallback(ctx context.Context) (string, error) {
	codeChan := make(chan string, 1)
	errChan := make(chan error, 1)

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, authCallbackHandler(codeChan, errChan))

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", AuthPort),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	timeoutCtx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	var code string
	var authErr error

	select {
	case code = <-codeChan:
	case authErr = <-errChan:
	case <-timeoutCtx.Done():
		authErr = fmt.Errorf("authorization timeout after %v", authTimeout)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = server.Shutdown(shutdownCtx)

	if authErr != nil {
		return "", authErr
	}
	return code, nil
}

func authCallbackHandler(codeChan chan<- string, errChan chan<- error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			select {
			case errChan <- errors.New("no authorization code received"):
			default:
			}
			http.Error(w, "Authorization failed", http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><head><title>Authorized</title></head>`+
			`<body><h1>Meeting scheduler authorized</h1><p>You can close this window.</p></body></html>`)

		select {
		case codeChan <- code:
		default:
		}
	}
}

// ClearToken clears the token from memory cache
func ClearToken() {
	tokenCacheMu.Lock()
	defer tokenCacheMu.Unlock()
	tokenCache = nil
}

func tokenDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, tokenDirName), nil
}

func getTokenFilePath(env string) (string, error) {
	dir, err := tokenDir()
	if err != nil {
		return "", err
	}
	if env == "" {
		env = "default"
	}
	return filepath.Join(dir, fmt.Sprintf("token-%s.json", env)), nil
}

// LoadTokenFromFile loads the persisted token for env. A missing file yields nil, nil.
func LoadTokenFromFile(env string) (*oauth2.Token, error) {
	tokenPath, err := getTokenFilePath(env)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(tokenPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}

	return &token, nil
}

// SaveTokenToFile persists the token for env with owner-only permissions
func SaveTokenToFile(env string, token *oauth2.Token) error {
	dir, err := tokenDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, tokenDirPerms); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	tokenPath, err := getTokenFilePath(env)
	if err != nil {
		return err
	}

	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	if err := os.WriteFile(tokenPath, data, tokenFilePerms); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// DeleteTokenFile deletes the token file for env
func DeleteTokenFile(env string) error {
	tokenPath, err := getTokenFilePath(env)
	if err != nil {
		return err
	}

	if err := os.Remove(tokenPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete token file: %w", err)
	}

	return nil
}
