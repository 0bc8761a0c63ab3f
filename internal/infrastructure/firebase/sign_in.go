package firebase

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

type signInResponse struct {
	IDToken string `json:"idToken"`
	LocalID string `json:"localId"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithEmailPassword exchanges credentials for a Firebase ID token
// through the Identity Toolkit REST API; the Admin SDK has no
// password-verification call.
func (f *FirebaseAuthClient) SignInWithEmailPassword(email, password string) (string, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s?key=%s", signInEndpoint, f.apiKey)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var result signInResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		if result.Error != nil {
			return "", fmt.Errorf("sign in failed: %s", result.Error.Message)
		}
		return "", fmt.Errorf("sign in failed: status %d", resp.StatusCode)
	}

	return result.IDToken, nil
}
