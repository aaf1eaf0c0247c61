package storage

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"tienda-live/domain"
	"tienda-live/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// Key layout:
//
//	review:{id}                        -> Review
//	review-pending:{storeID}:{id}      -> nil
//	review-approved:{storeID}:{id}     -> nil
const (
	reviewPrefix         = "review:"
	reviewPendingPrefix  = "review-pending:"
	reviewApprovedPrefix = "review-approved:"
)

func reviewKey(id domain.ReviewID) string { return reviewPrefix + string(id) }

func reviewPendingKey(storeID domain.StoreID, id domain.ReviewID) string {
	return reviewPendingPrefixOf(storeID) + string(id)
}

func reviewPendingPrefixOf(storeID domain.StoreID) string {
	return fmt.Sprintf("%s%s:", reviewPendingPrefix, keyPart(storeID.String()))
}

func reviewApprovedKey(storeID domain.StoreID, id domain.ReviewID) string {
	return reviewApprovedPrefixOf(storeID) + string(id)
}

func reviewApprovedPrefixOf(storeID domain.StoreID) string {
	return fmt.Sprintf("%s%s:", reviewApprovedPrefix, keyPart(storeID.String()))
}

type ReviewRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewReviewRepository(db *badger.DB, log *slog.Logger) *ReviewRepository {
	return &ReviewRepository{db: db, log: log}
}

func (r *ReviewRepository) Create(_ context.Context, review domain.Review) error {
	if review.ID == "" {
		review.ID = domain.ReviewID(uuid.NewString())
	}
	return persistence(r.db.Update(func(txn *badger.Txn) error {
		index := reviewPendingKey(review.StoreID, review.ID)
		if review.Approved {
			index = reviewApprovedKey(review.StoreID, review.ID)
		}
		if err := txn.Set([]byte(index), nil); err != nil {
			return err
		}
		return setJSON(txn, reviewKey(review.ID), review)
	}))
}

func (r *ReviewRepository) Approve(_ context.Context, id domain.ReviewID) (domain.Review, error) {
	var review domain.Review
	err := r.db.Update(func(txn *badger.Txn) error {
		if err := getJSON(txn, reviewKey(id), &review, errors.ErrReviewNotFound); err != nil {
			return err
		}
		review.Approved = true
		if err := txn.Delete([]byte(reviewPendingKey(review.StoreID, id))); err != nil {
			return err
		}
		if err := txn.Set([]byte(reviewApprovedKey(review.StoreID, id)), nil); err != nil {
			return err
		}
		return setJSON(txn, reviewKey(id), review)
	})
	if err != nil {
		return domain.Review{}, persistence(err, errors.ErrReviewNotFound)
	}
	return review, nil
}

// Delete removes a review, published or not.
func (r *ReviewRepository) Delete(_ context.Context, id domain.ReviewID) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		var review domain.Review
		if err := getJSON(txn, reviewKey(id), &review, errors.ErrReviewNotFound); err != nil {
			return err
		}
		for _, key := range []string{
			reviewPendingKey(review.StoreID, id),
			reviewApprovedKey(review.StoreID, id),
			reviewKey(id),
		} {
			if err := txn.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
	return persistence(err, errors.ErrReviewNotFound)
}

// ListPending returns the reviews waiting for approval, oldest first.
func (r *ReviewRepository) ListPending(_ context.Context, storeID domain.StoreID) ([]domain.Review, error) {
	reviews, err := r.list(reviewPendingPrefixOf(storeID))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.Before(reviews[j].CreatedAt)
	})
	return reviews, nil
}

// ListApproved returns the published reviews, newest first.
func (r *ReviewRepository) ListApproved(_ context.Context, storeID domain.StoreID) ([]domain.Review, error) {
	reviews, err := r.list(reviewApprovedPrefixOf(storeID))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
	return reviews, nil
}

func (r *ReviewRepository) list(prefix string) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.View(func(txn *badger.Txn) error {
		for _, key := range keysWithPrefix(txn, prefix, 0) {
			id := domain.ReviewID(strings.TrimPrefix(key, prefix))
			var review domain.Review
			if err := getJSON(txn, reviewKey(id), &review, errors.ErrReviewNotFound); err != nil {
				r.log.Warn("Dangling review index", "key", key, "error", err)
				continue
			}
			reviews = append(reviews, review)
		}
		return nil
	})
	if err != nil {
		return nil, persistence(err)
	}
	return reviews, nil
}
