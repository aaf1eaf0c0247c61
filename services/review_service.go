package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"tienda-live/contract"
	"tienda-live/domain"
	"tienda-live/domain/event"
	"tienda-live/errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IReviewService interface {
	Submit(ctx context.Context, cmd SubmitReviewCommand) (domain.Review, error)
	Approve(ctx context.Context, id domain.ReviewID) (domain.Review, error)
	ListPending(ctx context.Context, storeID domain.StoreID) ([]domain.Review, error)
	ListPublished(ctx context.Context, storeID domain.StoreID, limit, page int) (PublishedReviews, error)
	Delete(ctx context.Context, id domain.ReviewID) error
	Stats(ctx context.Context, storeID domain.StoreID) (domain.ReviewStats, error)
}

const defaultReviewPageSize = 10

// PublishedReviews is one page of approved reviews plus figures over all of them.
type PublishedReviews struct {
	Reviews []domain.Review      `json:"comentarios"`
	Summary domain.ReviewSummary `json:"estadisticas"`
}

type SubmitReviewCommand struct {
	StoreID       domain.StoreID
	CustomerName  string
	CustomerPhone string
	Comment       string
	Rating        *int
}

// ReviewService keeps customer reviews hidden until a store admin approves them.
// Comments are censored and tagged with their language on the way in.
type ReviewService struct {
	log        *slog.Logger
	repository contract.IReviewRepository
	moderator  contract.IReviewModerator
	gateway    contract.IGateway
	now        func() time.Time
}

func NewReviewService(
	log *slog.Logger,
	repository contract.IReviewRepository,
	moderator contract.IReviewModerator,
	gateway contract.IGateway,
) *ReviewService {
	return &ReviewService{log: log, repository: repository, moderator: moderator, gateway: gateway, now: time.Now}
}

func (s *ReviewService) Submit(ctx context.Context, cmd SubmitReviewCommand) (domain.Review, error) {
	comment := strings.TrimSpace(cmd.Comment)
	if cmd.StoreID == "" {
		return domain.Review{}, fmt.Errorf("%w: store is required", errors.ErrInvalidRequest)
	}
	if utf8.RuneCountInString(comment) < domain.MinReviewLength {
		return domain.Review{}, fmt.Errorf("%w: comment needs at least %d characters", errors.ErrInvalidRequest, domain.MinReviewLength)
	}
	if cmd.Rating != nil && (*cmd.Rating < 1 || *cmd.Rating > 5) {
		return domain.Review{}, fmt.Errorf("%w: rating must be between 1 and 5", errors.ErrInvalidRequest)
	}

	review := domain.Review{
		ID:            domain.ReviewID(uuid.NewString()),
		StoreID:       cmd.StoreID,
		CustomerName:  strings.TrimSpace(cmd.CustomerName),
		CustomerPhone: strings.TrimSpace(cmd.CustomerPhone),
		Comment:       comment,
		Rating:        cmd.Rating,
		CreatedAt:     s.now(),
	}
	if s.moderator != nil {
		review.Comment, review.Censored, review.Language = s.moderator.Moderate(comment)
	}

	if err := s.repository.Create(ctx, review); err != nil {
		return domain.Review{}, err
	}
	if review.Censored {
		s.log.Info("Review censored", "store", review.StoreID, "review", review.ID)
	}
	s.gateway.NotifyStoreAdmins(ctx, review.StoreID, event.ReviewSubmitted, event.Fields{
		"comentarioId":  review.ID,
		"clienteNombre": review.CustomerName,
		"calificacion":  review.Rating,
		"censurado":     review.Censored,
	})
	return review, nil
}

func (s *ReviewService) Approve(ctx context.Context, id domain.ReviewID) (domain.Review, error) {
	return s.repository.Approve(ctx, id)
}

func (s *ReviewService) ListPending(ctx context.Context, storeID domain.StoreID) ([]domain.Review, error) {
	return s.repository.ListPending(ctx, storeID)
}

// ListPublished never exposes customer phones.
func (s *ReviewService) ListPublished(ctx context.Context, storeID domain.StoreID, limit, page int) (PublishedReviews, error) {
	approved, err := s.repository.ListApproved(ctx, storeID)
	if err != nil {
		return PublishedReviews{}, err
	}
	if limit <= 0 {
		limit = defaultReviewPageSize
	}
	if page <= 0 {
		page = 1
	}
	reviews := []domain.Review{}
	if start := (page - 1) * limit; start < len(approved) {
		reviews = lo.Map(approved[start:min(start+limit, len(approved))], func(r domain.Review, _ int) domain.Review {
			r.CustomerPhone = ""
			return r
		})
	}
	return PublishedReviews{Reviews: reviews, Summary: domain.SummarizeReviews(approved)}, nil
}

func (s *ReviewService) Delete(ctx context.Context, id domain.ReviewID) error {
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("Review deleted", "review", id)
	return nil
}

func (s *ReviewService) Stats(ctx context.Context, storeID domain.StoreID) (domain.ReviewStats, error) {
	approved, err := s.repository.ListApproved(ctx, storeID)
	if err != nil {
		return domain.ReviewStats{}, err
	}
	pending, err := s.repository.ListPending(ctx, storeID)
	if err != nil {
		return domain.ReviewStats{}, err
	}
	stats := domain.NewReviewStats(approved, pending)
	stats.Recent = lo.Map(stats.Recent, func(r domain.Review, _ int) domain.Review {
		r.CustomerPhone = ""
		return r
	})
	return stats, nil
}
