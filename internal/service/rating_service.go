package service

import (
	"context"

	"gourmet-order/internal/model"
	"gourmet-order/internal/session"

	"github.com/rs/zerolog"
)

// ratingService implements RatingService.
type ratingService struct {
	logger zerolog.Logger
}

// NewRatingService creates a new rating service.
func NewRatingService(logger zerolog.Logger) RatingService {
	return &ratingService{
		logger: logger.With().Str("service", "rating").Logger(),
	}
}

// SubmitRating applies stars to every unrated order row of the dish and
// removes the dish from the pending set. Ratings are immutable once set, so
// a second submission for the same dish updates nothing.
func (s *ratingService) SubmitRating(ctx context.Context, sess *session.Session, dish string, stars int) (*model.RatingResponse, error) {
	if stars < 1 || stars > 5 {
		s.logger.Warn().
			Str("session_id", sess.ID.String()).
			Str("dish", dish).
			Int("stars", stars).
			Msg("invalid rating value")
		return nil, model.ErrInvalidRating
	}

	updated := sess.FillRatings(dish, stars)
	if updated == 0 {
		s.logger.Debug().
			Str("session_id", sess.ID.String()).
			Str("dish", dish).
			Msg("no rating outstanding for dish")
	} else {
		s.logger.Info().
			Str("session_id", sess.ID.String()).
			Str("dish", dish).
			Int("stars", stars).
			Int("updated", updated).
			Msg("rating submitted")
	}

	return &model.RatingResponse{
		Dish:    dish,
		Stars:   stars,
		Updated: updated,
	}, nil
}

// PendingDishes returns the dishes awaiting a rating.
func (s *ratingService) PendingDishes(ctx context.Context, sess *session.Session) []string {
	return sess.PendingDishes()
}
