package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/talentbridge/talentbridge-backend/internal/logger"
	"github.com/talentbridge/talentbridge-backend/internal/matching"
	"github.com/talentbridge/talentbridge-backend/internal/repos"
	"github.com/talentbridge/talentbridge-backend/internal/types"
)

const (
	// DefaultMinScore is the persistence floor of the create-only batch
	// path.
	DefaultMinScore = 60
	// notificationFloor gates candidate notifications independently of the
	// configurable minScore: a run with minScore 40 persists 40+ matches
	// but still only notifies at 60+.
	notificationFloor = 60
	// DefaultBestMatchesLimit bounds the best-matches projection.
	DefaultBestMatchesLimit = 20
	// scoreWorkers bounds concurrent scoring within one batch run. Scoring
	// is pure and sub-millisecond; writes stay on the collecting goroutine
	// so per-pair persistence remains serialized.
	scoreWorkers = 4
)

// MatchView is the lightweight projection returned by GetBestMatchesForOffer.
type MatchView struct {
	TalentID      uuid.UUID          `json:"talent_id"`
	FirstName     string             `json:"first_name"`
	LastName      string             `json:"last_name"`
	Score         int                `json:"score"`
	Details       matching.SubScores `json:"details"`
	MatchedSkills []string           `json:"matched_skills"`
	MissingSkills []string           `json:"missing_skills"`
	Analysis      string             `json:"analysis"`
}

type MatchingService interface {
	// MatchTalentsForOffer scores every eligible talent against the offer,
	// persists pairs scoring at least minScore (create-only; existing
	// pairs are skipped), and notifies talents scoring at least 60 when
	// notify is set. Returns the results that were persisted.
	MatchTalentsForOffer(ctx context.Context, offerID uuid.UUID, minScore int, notify bool) ([]matching.MatchResult, error)
	// UpdateMatchesForTalent recomputes and upserts the match row for
	// every published offer, with no score floor and no notifications.
	// Returns the number of refreshed rows.
	UpdateMatchesForTalent(ctx context.Context, talentID uuid.UUID) (int, error)
	GetBestMatchesForOffer(ctx context.Context, offerID uuid.UUID, limit int) ([]MatchView, error)
	// ClassifyCategory is exposed for profile-import code that assigns a
	// category after CV parsing.
	ClassifyCategory(title string, skills []string) matching.Category
}

type matchingService struct {
	db            *gorm.DB
	log           *logger.Logger
	talentRepo    repos.TalentRepo
	offerRepo     repos.OfferRepo
	matchRepo     repos.MatchRepo
	notifier      MatchNotifier
	offerLinkBase string
}

func NewMatchingService(db *gorm.DB, log *logger.Logger, talentRepo repos.TalentRepo, offerRepo repos.OfferRepo, matchRepo repos.MatchRepo, notifier MatchNotifier, offerLinkBase string) MatchingService {
	return &matchingService{
		db:            db,
		log:           log.With("service", "MatchingService"),
		talentRepo:    talentRepo,
		offerRepo:     offerRepo,
		matchRepo:     matchRepo,
		notifier:      notifier,
		offerLinkBase: offerLinkBase,
	}
}

func (ms *matchingService) MatchTalentsForOffer(ctx context.Context, offerID uuid.UUID, minScore int, notify bool) ([]matching.MatchResult, error) {
	offer, err := ms.offerRepo.GetByID(ctx, nil, offerID)
	if err != nil {
		return nil, fmt.Errorf("load offer %s: %w", offerID, err)
	}
	if minScore <= 0 {
		minScore = DefaultMinScore
	}

	talents, err := ms.talentRepo.GetMatchable(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("load matchable talents: %w", err)
	}

	// Drop pairs evaluated by a previous run before scoring anything.
	candidates := make([]*types.Talent, 0, len(talents))
	for _, talent := range talents {
		existing, err := ms.matchRepo.GetByOfferAndTalent(ctx, nil, offer.ID, talent.ID)
		if err != nil {
			ms.log.Warn("Failed to check existing match, skipping pair",
				"offer_id", offer.ID, "talent_id", talent.ID, "error", err)
			continue
		}
		if existing != nil {
			continue
		}
		candidates = append(candidates, talent)
	}

	results := ms.scoreAll(ctx, candidates, offer)

	created := make([]matching.MatchResult, 0, len(results))
	for i, result := range results {
		if result == nil || result.Score < minScore {
			continue
		}
		talent := candidates[i]

		row, err := types.NewMatchFromResult(offer.ID, *result)
		if err != nil {
			ms.log.Warn("Failed to encode match, skipping pair",
				"offer_id", offer.ID, "talent_id", talent.ID, "error", err)
			continue
		}
		row, err = ms.matchRepo.Create(ctx, nil, row)
		if err != nil {
			ms.log.Warn("Failed to persist match, skipping pair",
				"offer_id", offer.ID, "talent_id", talent.ID, "error", err)
			continue
		}
		created = append(created, *result)
		ms.notifier.PublishMatchComputed(ctx, offer.ID, talent.ID, result.Score)

		// The row is durable at this point; a failed send must not undo
		// or block anything.
		if notify && result.Score >= notificationFloor {
			ms.notifyTalent(ctx, talent, offer, row, *result)
		}
	}

	ms.log.Info("Matching run finished",
		"offer_id", offer.ID,
		"candidates", len(candidates),
		"created", len(created),
		"min_score", minScore,
	)
	return created, nil
}

// scoreAll scores candidate pairs concurrently. Each result lands at the
// index of its talent; a pair that panics on malformed data is logged and
// left nil so its siblings complete.
func (ms *matchingService) scoreAll(ctx context.Context, candidates []*types.Talent, offer *types.Offer) []*matching.MatchResult {
	results := make([]*matching.MatchResult, len(candidates))
	offerSnap := offer.Snapshot()

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(scoreWorkers)
	for i, talent := range candidates {
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					ms.log.Error("Scoring panicked, skipping pair",
						"offer_id", offer.ID, "talent_id", talent.ID, "panic", r)
				}
			}()
			result := matching.Score(talent.Snapshot(), offerSnap)
			results[i] = &result
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (ms *matchingService) notifyTalent(ctx context.Context, talent *types.Talent, offer *types.Offer, row *types.Match, result matching.MatchResult) {
	if err := ms.notifier.SendMatchingWithFeedback(ctx,
		talent.Email, talent.FirstName, offer.Title, offer.Slug,
		result.Score, result.MatchedRequired, result.Feedback,
	); err != nil {
		ms.log.Warn("Failed to send match email",
			"offer_id", offer.ID, "talent_id", talent.ID, "error", err)
	}

	link := fmt.Sprintf("%s/offres/%s", ms.offerLinkBase, offer.Slug)
	if err := ms.notifier.CreateInAppNotification(ctx,
		talent.ID, types.NotificationTypeNewMatch,
		"New mission match",
		fmt.Sprintf("Your profile matches %q at %d%%", offer.Title, result.Score),
		link,
		map[string]any{"offer_id": offer.ID, "score": result.Score},
	); err != nil {
		ms.log.Warn("Failed to create in-app notification",
			"offer_id", offer.ID, "talent_id", talent.ID, "error", err)
	}

	if err := ms.matchRepo.MarkNotified(ctx, nil, row.ID, time.Now()); err != nil {
		ms.log.Warn("Failed to mark match notified",
			"offer_id", offer.ID, "talent_id", talent.ID, "error", err)
	}
}

func (ms *matchingService) UpdateMatchesForTalent(ctx context.Context, talentID uuid.UUID) (int, error) {
	talent, err := ms.talentRepo.GetByID(ctx, nil, talentID)
	if err != nil {
		return 0, fmt.Errorf("load talent %s: %w", talentID, err)
	}

	offers, err := ms.offerRepo.GetPublished(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("load published offers: %w", err)
	}

	talentSnap := talent.Snapshot()
	refreshed := 0
	for _, offer := range offers {
		result := matching.Score(talentSnap, offer.Snapshot())
		row, err := types.NewMatchFromResult(offer.ID, result)
		if err != nil {
			ms.log.Warn("Failed to encode match, skipping pair",
				"offer_id", offer.ID, "talent_id", talent.ID, "error", err)
			continue
		}
		if _, err := ms.matchRepo.Upsert(ctx, nil, row); err != nil {
			ms.log.Warn("Failed to upsert match, skipping pair",
				"offer_id", offer.ID, "talent_id", talent.ID, "error", err)
			continue
		}
		refreshed++
	}

	ms.log.Info("Talent matrix refreshed", "talent_id", talent.ID, "offers", len(offers), "refreshed", refreshed)
	return refreshed, nil
}

func (ms *matchingService) GetBestMatchesForOffer(ctx context.Context, offerID uuid.UUID, limit int) ([]MatchView, error) {
	if _, err := ms.offerRepo.GetByID(ctx, nil, offerID); err != nil {
		return nil, fmt.Errorf("load offer %s: %w", offerID, err)
	}
	if limit <= 0 {
		limit = DefaultBestMatchesLimit
	}

	matches, err := ms.matchRepo.GetByOfferOrderedByScore(ctx, nil, offerID, limit)
	if err != nil {
		return nil, fmt.Errorf("load matches: %w", err)
	}

	talentIDs := make([]uuid.UUID, 0, len(matches))
	for _, m := range matches {
		talentIDs = append(talentIDs, m.TalentID)
	}
	talents, err := ms.talentRepo.GetByIDs(ctx, nil, talentIDs)
	if err != nil {
		return nil, fmt.Errorf("load talents: %w", err)
	}
	talentByID := make(map[uuid.UUID]*types.Talent, len(talents))
	for _, t := range talents {
		talentByID[t.ID] = t
	}

	views := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		details, err := m.DecodeScoreDetails()
		if err != nil {
			ms.log.Warn("Corrupt score details, serving zero breakdown",
				"match_id", m.ID, "error", err)
		}
		view := MatchView{
			TalentID:      m.TalentID,
			Score:         m.Score,
			Details:       details,
			MatchedSkills: []string(m.MatchedSkills),
			MissingSkills: []string(m.MissingSkills),
			Analysis:      m.Analysis,
		}
		if t, ok := talentByID[m.TalentID]; ok {
			view.FirstName = t.FirstName
			view.LastName = t.LastName
		}
		views = append(views, view)
	}
	return views, nil
}

func (ms *matchingService) ClassifyCategory(title string, skills []string) matching.Category {
	return matching.Classify(title, skills)
}
