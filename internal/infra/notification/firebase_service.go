// Package notification implements the Messenger interface on Firebase Cloud
// Messaging through the Admin SDK.
package notification

import (
	"context"
	"encoding/json"
	"strings"

	"twashell/config"
	"twashell/internal/domain/entity"
	"twashell/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// multicastLimit is the provider's per-request token ceiling.
const multicastLimit = 500

type firebaseMessenger struct {
	client *messaging.Client
	link   string
}

// serviceAccount is the minimal credential document built from the inline
// project-id/client-email/private-key configuration.
type serviceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`
}

// NewFirebaseMessenger creates a Messenger backed by Firebase Cloud
// Messaging. Credentials come from a service account file when configured,
// otherwise from the inline credential fields. link, when non-empty, is
// attached to webpush messages as the click-through URL.
func NewFirebaseMessenger(ctx context.Context, cfg *config.FirebaseConfig, link string) (service.Messenger, error) {
	opt, err := credentialsOption(cfg)
	if err != nil {
		return nil, err
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get messaging client")
	}

	return &firebaseMessenger{
		client: client,
		link:   link,
	}, nil
}

// HasAdminCredentials reports whether the config carries enough to build the
// admin client: a service account file path, or the full inline credential set.
func HasAdminCredentials(cfg *config.FirebaseConfig) bool {
	if cfg == nil {
		return false
	}
	if cfg.CredentialsPath != "" {
		return true
	}

	return cfg.ProjectID != "" && cfg.ClientEmail != "" && cfg.PrivateKey != ""
}

func credentialsOption(cfg *config.FirebaseConfig) (option.ClientOption, error) {
	if cfg.CredentialsPath != "" {
		return option.WithCredentialsFile(cfg.CredentialsPath), nil
	}

	if cfg.ProjectID == "" || cfg.ClientEmail == "" || cfg.PrivateKey == "" {
		return nil, errors.New("firebase admin credentials not configured")
	}

	account := serviceAccount{
		Type:      "service_account",
		ProjectID: cfg.ProjectID,
		// Environment values carry the key with escaped newlines.
		ClientEmail: cfg.ClientEmail,
		PrivateKey:  strings.ReplaceAll(cfg.PrivateKey, `\n`, "\n"),
	}

	raw, err := json.Marshal(account)
	if err != nil {
		return nil, errors.Wrap(err, "marshal service account")
	}

	return option.WithCredentialsJSON(raw), nil
}

// Send delivers a push notification to a single registration token.
func (m *firebaseMessenger) Send(ctx context.Context, token, title, body string, data map[string]string) (string, error) {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:    data,
		Webpush: m.webpushConfig(),
	}

	messageID, err := m.client.Send(ctx, message)
	if err != nil {
		return "", errors.Wrap(err, "send notification")
	}

	return messageID, nil
}

// SendMulticast delivers a push notification to multiple registration tokens
// and reports per-token receipts.
func (m *firebaseMessenger) SendMulticast(ctx context.Context, tokens []string, title, body string, data map[string]string) (*entity.DispatchOutcome, error) {
	if len(tokens) == 0 {
		return &entity.DispatchOutcome{}, nil
	}
	if len(tokens) > multicastLimit {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), multicastLimit)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data:    data,
		Webpush: m.webpushConfig(),
	}

	response, err := m.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "send multicast notification")
	}

	outcome := &entity.DispatchOutcome{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
		Responses:    make([]entity.SendReceipt, 0, len(response.Responses)),
	}
	for _, sendResponse := range response.Responses {
		receipt := entity.SendReceipt{
			Success:   sendResponse.Success,
			MessageID: sendResponse.MessageID,
		}
		if sendResponse.Error != nil {
			receipt.Error = sendResponse.Error.Error()
		}
		outcome.Responses = append(outcome.Responses, receipt)
	}

	return outcome, nil
}

func (m *firebaseMessenger) webpushConfig() *messaging.WebpushConfig {
	if m.link == "" {
		return nil
	}

	return &messaging.WebpushConfig{
		FCMOptions: &messaging.WebpushFCMOptions{
			Link: m.link,
		},
	}
}
