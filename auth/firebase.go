package auth

import (
	"context"
	"log"
	"os"

	firebase "firebase.google.com/go"
	firebaseauth "firebase.google.com/go/auth"
)

var (
	firebaseAuth *firebaseauth.Client
	projectID    string
)

// InitFirebase sets up the Firebase Auth client used to verify ID tokens.
// Credentials come from GOOGLE_APPLICATION_CREDENTIALS.
func InitFirebase(ctx context.Context) error {
	projectID = os.Getenv("FIREBASE_PROJECT_ID")

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return err
	}
	firebaseAuth, err = app.Auth(ctx)
	if err != nil {
		return err
	}
	log.Println("✅ Firebase auth initialized")
	return nil
}
