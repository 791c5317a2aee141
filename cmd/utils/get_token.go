// get_token runs the OAuth consent flow once and prints the refresh token
// used by MAIL_TRANSPORT=gmail.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"

	"boardingpass-service/internal/infrastructure/oauth"
	"boardingpass-service/pkg/logger"

	"github.com/joho/godotenv"
)

const callbackAddr = "localhost:8090"

func main() {
	log := logger.NewLogger("info")

	godotenv.Load()
	clientID := os.Getenv("GMAIL_CLIENT_ID")
	clientSecret := os.Getenv("GMAIL_CLIENT_SECRET")
	if clientID == "" || clientSecret == "" {
		log.Fatal("GMAIL_CLIENT_ID and GMAIL_CLIENT_SECRET must be set")
	}

	gmailOAuth := oauth.NewGmailOAuth(clientID, clientSecret, "", log).
		WithRedirectURL("http://" + callbackAddr + "/oauth2callback")

	state := randomState()
	done := make(chan string, 1)

	http.HandleFunc("/oauth2callback", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			http.Error(w, "Invalid state parameter", http.StatusBadRequest)
			return
		}

		token, err := gmailOAuth.ExchangeCode(context.Background(), r.URL.Query().Get("code"))
		if err != nil {
			http.Error(w, fmt.Sprintf("Failed to exchange code: %v", err), http.StatusInternalServerError)
			return
		}

		fmt.Fprintf(w, "Authentication successful! You can close this window.")
		offerToken(done, token.RefreshToken)
	})

	fmt.Printf("Open this URL in your browser:\n%s\n", gmailOAuth.GenerateAuthURL(state))

	go func() {
		if err := http.ListenAndServe(callbackAddr, nil); err != nil {
			log.Fatal("Callback server error", "error", err)
		}
	}()

	fmt.Printf("\nGMAIL_REFRESH_TOKEN=%s\n\n", <-done)
}

func randomState() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// offerToken hands the first refresh token to main; later callbacks are dropped
func offerToken(done chan<- string, token string) bool {
	select {
	case done <- token:
		return true
	default:
		return false
	}
}
