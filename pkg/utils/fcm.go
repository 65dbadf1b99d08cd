package utils

import (
	"context"
	"log"
	"os"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

var fcmClient *messaging.Client

// InitFCM wires up Firebase Cloud Messaging. Optional: when no credentials
// file is configured, push notifications are silently disabled.
func InitFCM() {
	credPath := os.Getenv("FCM_CREDENTIALS_FILE")
	if credPath == "" {
		log.Println("FCM_CREDENTIALS_FILE not set, push notifications disabled")
		return
	}

	opt := option.WithCredentialsFile(credPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.Printf("Error initializing firebase app: %v", err)
		return
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		log.Printf("Error getting messaging client: %v", err)
		return
	}

	fcmClient = client
	log.Println("Firebase Cloud Messaging ready")
}

// SendNotification pushes a message to a single device token.
func SendNotification(token string, title string, body string, data map[string]string) error {
	if fcmClient == nil || token == "" {
		return nil
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	_, err := fcmClient.Send(context.Background(), message)
	if err != nil {
		log.Printf("Error sending notification: %s", err)
		return err
	}
	return nil
}
