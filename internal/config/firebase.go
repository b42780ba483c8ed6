package config

import (
	"os"
	"sync"
)

type FirebaseConfig struct {
	ProjectID       string
	CredentialsFile string
}

var (
	firebaseConfig *FirebaseConfig
	firebaseOnce   sync.Once
)

func LoadFirebaseConfig() *FirebaseConfig {
	firebaseOnce.Do(func() {
		firebaseConfig = &FirebaseConfig{
			ProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
			CredentialsFile: os.Getenv("FIREBASE_CREDENTIALS_FILE"),
		}
	})
	return firebaseConfig
}
