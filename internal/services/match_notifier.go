package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	redisclient "github.com/talentbridge/talentbridge-backend/internal/clients/redis"
	"github.com/talentbridge/talentbridge-backend/internal/logger"
	"github.com/talentbridge/talentbridge-backend/internal/matching"
	"github.com/talentbridge/talentbridge-backend/internal/platform/sendgrid"
	"github.com/talentbridge/talentbridge-backend/internal/repos"
	"github.com/talentbridge/talentbridge-backend/internal/sse"
	"github.com/talentbridge/talentbridge-backend/internal/types"
)

// MatchNotifier is the outbound collaborator of the batch driver. The driver
// treats every method as fire-and-forget: failures are logged by the caller
// and never abort a batch.
type MatchNotifier interface {
	SendMatchingWithFeedback(ctx context.Context, email, firstName, offerTitle, offerSlug string, score int, matchedSkills []string, feedback matching.Feedback) error
	CreateInAppNotification(ctx context.Context, userID uuid.UUID, notifType, title, message, link string, data map[string]any) error
	PublishMatchComputed(ctx context.Context, offerID, talentID uuid.UUID, score int)
}

// EmailSender is the slice of the sendgrid client the notifier needs.
type EmailSender interface {
	SendMatchAlert(ctx context.Context, email, firstName, offerTitle, offerSlug string, score int, matchedSkills []string, feedback matching.Feedback) error
}

type matchNotifier struct {
	log              *logger.Logger
	email            EmailSender
	notificationRepo repos.NotificationRepo
	bus              redisclient.MatchBus
	hub              *sse.SSEHub
}

func NewMatchNotifier(log *logger.Logger, email EmailSender, notificationRepo repos.NotificationRepo, bus redisclient.MatchBus, hub *sse.SSEHub) MatchNotifier {
	return &matchNotifier{
		log:              log.With("service", "MatchNotifier"),
		email:            email,
		notificationRepo: notificationRepo,
		bus:              bus,
		hub:              hub,
	}
}

func (n *matchNotifier) SendMatchingWithFeedback(ctx context.Context, email, firstName, offerTitle, offerSlug string, score int, matchedSkills []string, feedback matching.Feedback) error {
	if n.email == nil {
		return fmt.Errorf("email sender not configured")
	}
	return n.email.SendMatchAlert(ctx, email, firstName, offerTitle, offerSlug, score, matchedSkills, feedback)
}

func (n *matchNotifier) CreateInAppNotification(ctx context.Context, userID uuid.UUID, notifType, title, message, link string, data map[string]any) error {
	if n.notificationRepo == nil {
		return fmt.Errorf("notification repo not configured")
	}
	var raw datatypes.JSON
	if len(data) > 0 {
		encoded, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal notification data: %w", err)
		}
		raw = datatypes.JSON(encoded)
	}
	_, err := n.notificationRepo.Create(ctx, nil, &types.Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
		Link:    link,
		Data:    raw,
	})
	return err
}

// PublishMatchComputed pushes the event to the local hub and, when a redis
// bus is wired, to every other API instance. Best effort on both legs.
func (n *matchNotifier) PublishMatchComputed(ctx context.Context, offerID, talentID uuid.UUID, score int) {
	msg := sse.SSEMessage{
		Channel: sse.MatchFeedChannel,
		Event:   sse.SSEEventMatchComputed,
		Data: map[string]any{
			"offer_id":  offerID,
			"talent_id": talentID,
			"score":     score,
		},
	}
	if n.hub != nil {
		n.hub.Broadcast(msg)
	}
	if n.bus != nil {
		if err := n.bus.Publish(ctx, msg); err != nil {
			n.log.Warn("Failed to publish match event", "error", err)
		}
	}
}

// MatchAlertMailer renders the candidate-facing match email over the
// transactional email client.
type MatchAlertMailer struct {
	log      *logger.Logger
	client   sendgrid.Client
	siteBase string
}

func NewMatchAlertMailer(log *logger.Logger, client sendgrid.Client, siteBase string) *MatchAlertMailer {
	return &MatchAlertMailer{
		log:      log.With("service", "MatchAlertMailer"),
		client:   client,
		siteBase: strings.TrimRight(siteBase, "/"),
	}
}

func (m *MatchAlertMailer) SendMatchAlert(ctx context.Context, email, firstName, offerTitle, offerSlug string, score int, matchedSkills []string, feedback matching.Feedback) error {
	if m.client == nil {
		return fmt.Errorf("sendgrid client not configured")
	}

	subject := fmt.Sprintf("New mission match: %s (%d%%)", offerTitle, score)
	link := fmt.Sprintf("%s/offres/%s", m.siteBase, offerSlug)

	var body strings.Builder
	fmt.Fprintf(&body, "Hello %s,\n\n", firstName)
	fmt.Fprintf(&body, "Your profile matches the mission %q at %d%%.\n", offerTitle, score)
	if len(matchedSkills) > 0 {
		fmt.Fprintf(&body, "Matched skills: %s.\n", strings.Join(matchedSkills, ", "))
	}
	if len(feedback.ExperienceGaps) > 0 {
		fmt.Fprintf(&body, "Skills to highlight or acquire: %s.\n", strings.Join(feedback.ExperienceGaps, ", "))
	}
	if feedback.RateTooHigh && feedback.TargetRateRange != "" {
		fmt.Fprintf(&body, "Note: the client budget is %s.\n", feedback.TargetRateRange)
	}
	fmt.Fprintf(&body, "\nSee the mission: %s\n", link)

	_, err := m.client.Send(ctx, sendgrid.SendEmailRequest{
		To:         []sendgrid.EmailAddress{{Email: email, Name: firstName}},
		Subject:    subject,
		Text:       body.String(),
		Categories: []string{"match-alert"},
	})
	return err
}
