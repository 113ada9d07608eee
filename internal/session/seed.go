package session

import (
	"math/rand"
	"time"

	"gourmet-order/internal/catalog"
	"gourmet-order/internal/model"

	"github.com/google/uuid"
)

// Seeder returns a seed function that populates a fresh session with n
// synthetic historical orders, so the dashboard shows meaningful numbers
// before the first real checkout. Rows are drawn from the catalog, spread
// over the trailing year and all carry a rating (weighted towards 5), so
// none of them ever appears in the pending-rating set.
func Seeder(cat *catalog.Catalog, n int) func(*Session) {
	if n <= 0 {
		return nil
	}

	return func(s *Session) {
		items := cat.Items(catalog.Filter{})
		now := time.Now()
		rows := make([]model.Order, 0, n)

		for i := 0; i < n; i++ {
			item := items[rand.Intn(len(items))]
			rating := seedRating()
			rows = append(rows, model.Order{
				ID:        uuid.New(),
				Dish:      item.Name,
				Category:  item.Category,
				Amount:    item.Price,
				Rating:    &rating,
				CreatedAt: seedTimestamp(now),
			})
		}

		s.seedOrders(rows)
	}
}

// seedRating draws a rating with the demo distribution: 10% threes,
// 30% fours, 60% fives.
func seedRating() int {
	switch r := rand.Float64(); {
	case r < 0.1:
		return 3
	case r < 0.4:
		return 4
	default:
		return 5
	}
}

// seedTimestamp picks a random instant within the trailing 365 days,
// starting yesterday so seeded rows never land in the future.
func seedTimestamp(now time.Time) time.Time {
	date := now.AddDate(0, 0, -(rand.Intn(365) + 1))
	return time.Date(date.Year(), date.Month(), date.Day(),
		rand.Intn(24), rand.Intn(60), 0, 0, date.Location())
}
