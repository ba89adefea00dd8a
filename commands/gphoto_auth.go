package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/ccfrost/gpsync/gpsyncconfig"
)

// --- OAuth2 & Client Setup ---

const (
	// Full library scope: listing albums needs more than appendonly.
	googlePhotosScope = "https://www.googleapis.com/auth/photoslibrary"
	tokenFileName     = "google_photos_token.json"
)

// oauthConfig builds the oauth2 configuration from the validated app
// credentials.
func oauthConfig(config gpsyncconfig.GPsyncConfig) (*oauth2.Config, error) {
	if err := config.GooglePhotos.Validate(); err != nil {
		return nil, err
	}

	redirectURI := config.GooglePhotos.RedirectURI
	if redirectURI == "" {
		redirectURI = "http://localhost:8080"
		fmt.Printf("Warning: google_photos.redirect_uri not set in config, using default: %s\n", redirectURI)
	}

	return &oauth2.Config{
		ClientID:     config.GooglePhotos.ClientId,
		ClientSecret: config.GooglePhotos.ClientSecret,
		RedirectURL:  redirectURI,
		Scopes:       []string{googlePhotosScope},
		Endpoint:     google.Endpoint,
	}, nil
}

// CreateAuth runs the web-based authorization flow unconditionally and
// saves the resulting token next to the config file, replacing any token
// already there.
func CreateAuth(ctx context.Context, config gpsyncconfig.GPsyncConfig, configDir string) error {
	conf, err := oauthConfig(config)
	if err != nil {
		return err
	}

	tokenFilePath, err := getTokenFilePath(configDir)
	if err != nil {
		return fmt.Errorf("failed to get token file path: %w", err)
	}

	token, err := getTokenFromWeb(ctx, conf)
	if err != nil {
		return err
	}
	if err := saveToken(tokenFilePath, token); err != nil {
		return fmt.Errorf("failed to save token to %s: %w", tokenFilePath, err)
	}
	fmt.Printf("Token obtained and saved successfully to %s\n", tokenFilePath)
	return nil
}

// GetAuthenticatedClient creates an authenticated HTTP client using OAuth2
// credentials. It handles token loading, refreshing, and saving. Takes
// configDir to locate the token file.
func GetAuthenticatedClient(ctx context.Context, config gpsyncconfig.GPsyncConfig, configDir string) (*http.Client, error) {
	conf, err := oauthConfig(config)
	if err != nil {
		return nil, err
	}

	tokenFilePath, err := getTokenFilePath(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to get token file path: %w", err)
	}

	token := &oauth2.Token{}
	tokenFile, err := os.Open(tokenFilePath)
	if err == nil {
		err = json.NewDecoder(tokenFile).Decode(token)
		tokenFile.Close()
		if err != nil {
			fmt.Printf("Error reading token file (%s), requesting new token: %v\n", tokenFilePath, err)
			token = nil // Force getting a new token
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to open token file %s: %w", tokenFilePath, err)
	} else {
		token = nil
	}

	if token == nil || !token.Valid() {
		fmt.Println("OAuth token is invalid or missing, starting auth flow...")
		newToken, err := getTokenFromWeb(ctx, conf)
		if err != nil {
			return nil, err
		}
		token = newToken
		if err := saveToken(tokenFilePath, token); err != nil {
			// Log error but continue, maybe token is still usable in memory
			fmt.Printf("Warning: Failed to save token to %s: %v\n", tokenFilePath, err)
		}
		fmt.Printf("Token obtained and saved successfully to %s\n", tokenFilePath)
	}

	return conf.Client(ctx, token), nil
}

// getTokenFilePath constructs the path to the token file based on the config directory.
func getTokenFilePath(configDir string) (string, error) {
	if configDir == "." || configDir == "" {
		return "", fmt.Errorf("config directory path is empty or invalid")
	}
	return filepath.Join(configDir, tokenFileName), nil
}

// saveToken saves the OAuth2 token to the specified file path.
func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token: %w", err)
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

// getTokenFromWeb guides the user through the web-based OAuth2 flow.
func getTokenFromWeb(ctx context.Context, conf *oauth2.Config) (*oauth2.Token, error) {
	authURL := conf.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the "+
		"authorization code: \n%v\n", authURL)

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		return nil, fmt.Errorf("unable to read authorization code: %w", err)
	}

	tok, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web: %w", err)
	}
	return tok, nil
}
