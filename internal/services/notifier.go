package services

import (
	"context"
	"fmt"

	appconfig "github.com/mosorio19/Lomito/internal/config"
	"github.com/mosorio19/Lomito/internal/models"

	"github.com/rs/zerolog/log"
	"github.com/sideshow/apns2"
	"github.com/sideshow/apns2/payload"
	"github.com/sideshow/apns2/token"
)

// APNsClient sends push notifications to a device token.
type APNsClient struct {
	client *apns2.Client
	topic  string
}

// NewAPNsClient builds an APNs token-based client. Returns nil (no
// error) when no key path is configured, which disables push.
func NewAPNsClient(cfg appconfig.APNsConfig) (*APNsClient, error) {
	if cfg.KeyPath == "" {
		return nil, nil
	}

	authKey, err := token.AuthKeyFromFile(cfg.KeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load APNs auth key: %w", err)
	}

	t := &token.Token{
		AuthKey: authKey,
		KeyID:   cfg.KeyID,
		TeamID:  cfg.TeamID,
	}

	client := apns2.NewTokenClient(t)
	if cfg.Production {
		client = client.Production()
	} else {
		client = client.Development()
	}

	return &APNsClient{client: client, topic: cfg.Topic}, nil
}

// Push sends an alert notification to a device token.
func (c *APNsClient) Push(deviceToken, title, body string) error {
	notification := &apns2.Notification{
		DeviceToken: deviceToken,
		Topic:       c.topic,
		Payload:     payload.NewPayload().AlertTitle(title).AlertBody(body),
	}

	res, err := c.client.Push(notification)
	if err != nil {
		return fmt.Errorf("failed to push notification: %w", err)
	}
	if !res.Sent() {
		return fmt.Errorf("push rejected: %s", res.Reason)
	}
	return nil
}

// Notifier fans out adoption events to the pet owner over the WebSocket
// hub and, when the owner registered a device token, over APNs. Delivery
// is best-effort: failures are logged and never propagated.
type Notifier struct {
	hub      *WSHub
	apns     *APNsClient
	accounts AccountStore
}

// NewNotifier creates a notifier. apns may be nil when push is disabled.
func NewNotifier(hub *WSHub, apns *APNsClient, accounts AccountStore) *Notifier {
	return &Notifier{hub: hub, apns: apns, accounts: accounts}
}

// AdoptionRequested tells the pet owner that someone wants to adopt
// their pet.
func (n *Notifier) AdoptionRequested(ctx context.Context, pet *models.Pet, request *models.AdoptionRequest) {
	event := WSEvent{
		Type:          "adoption_requested",
		RequestID:     request.ID,
		PetID:         pet.ID,
		PetName:       pet.Name,
		FromAccountID: request.AccountID,
		Message:       request.Message,
	}
	if err := n.hub.SendToAccount(pet.OwnerID, event); err != nil {
		log.Debug().
			Err(err).
			Str("owner_id", pet.OwnerID).
			Msg("Owner not reachable over WebSocket")
	}

	if n.apns == nil {
		return
	}
	owner, err := n.accounts.GetByID(ctx, pet.OwnerID)
	if err != nil {
		log.Error().Err(err).Str("owner_id", pet.OwnerID).Msg("Failed to load owner for push")
		return
	}
	if owner.PushToken == nil {
		return
	}
	if err := n.apns.Push(*owner.PushToken, "Adoption request", fmt.Sprintf("Someone wants to adopt %s", pet.Name)); err != nil {
		log.Error().
			Err(err).
			Str("owner_id", pet.OwnerID).
			Str("pet_id", pet.ID).
			Msg("Failed to push adoption notification")
	}
}
