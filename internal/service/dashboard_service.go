package service

import (
	"context"
	"sort"
	"time"

	"gourmet-order/internal/model"
	"gourmet-order/internal/session"

	"github.com/rs/zerolog"
)

// Sentinels returned by dashboard queries over an empty history.
const (
	NoDish     = "N/A"
	NoPeakHour = -1
)

// defaultWindowDays is the trailing window used by the combined report for
// the revenue series and the most-liked dish.
const defaultWindowDays = 30

// dashboardService implements DashboardService. Every query takes a fresh
// snapshot of the order history and recomputes; nothing is cached.
type dashboardService struct {
	now    func() time.Time
	logger zerolog.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(logger zerolog.Logger) DashboardService {
	return &dashboardService{
		now:    time.Now,
		logger: logger.With().Str("service", "dashboard").Logger(),
	}
}

func (s *dashboardService) TotalRevenue(ctx context.Context, sess *session.Session) float64 {
	return totalRevenue(sess.OrdersSnapshot())
}

func (s *dashboardService) TodayRevenue(ctx context.Context, sess *session.Session) float64 {
	orders := sess.OrdersSnapshot()
	return totalRevenue(filterOnDay(orders, s.now()))
}

func (s *dashboardService) TotalOrders(ctx context.Context, sess *session.Session) int {
	return sess.OrderCount()
}

func (s *dashboardService) TodayOrders(ctx context.Context, sess *session.Session) int {
	return len(filterOnDay(sess.OrdersSnapshot(), s.now()))
}

func (s *dashboardService) AverageOrderValue(ctx context.Context, sess *session.Session) float64 {
	return averageOrderValue(sess.OrdersSnapshot())
}

func (s *dashboardService) AverageRating(ctx context.Context, sess *session.Session) float64 {
	return averageRating(sess.OrdersSnapshot())
}

func (s *dashboardService) DailyRevenueSeries(ctx context.Context, sess *session.Session, windowDays int) []model.DailyRevenue {
	return dailyRevenueSeries(sess.OrdersSnapshot(), windowDays)
}

func (s *dashboardService) CategoryPopularity(ctx context.Context, sess *session.Session) []model.CategoryCount {
	return categoryPopularity(sess.OrdersSnapshot())
}

func (s *dashboardService) OrdersByHour(ctx context.Context, sess *session.Session) []model.HourCount {
	return ordersByHour(sess.OrdersSnapshot())
}

func (s *dashboardService) RatingDistribution(ctx context.Context, sess *session.Session) []model.RatingCount {
	return ratingDistribution(sess.OrdersSnapshot())
}

func (s *dashboardService) MostLikedDish(ctx context.Context, sess *session.Session, windowDays int) string {
	return mostLikedDish(sess.OrdersSnapshot(), windowDays, s.now())
}

// Report assembles the full dashboard payload from one snapshot.
func (s *dashboardService) Report(ctx context.Context, sess *session.Session) *model.DashboardReport {
	orders := sess.OrdersSnapshot()
	now := s.now()
	today := filterOnDay(orders, now)

	s.logger.Debug().
		Str("session_id", sess.ID.String()).
		Int("orders", len(orders)).
		Msg("dashboard recomputed")

	return &model.DashboardReport{
		Summary: model.DashboardSummary{
			TotalRevenue:      totalRevenue(orders),
			TodayRevenue:      totalRevenue(today),
			TotalOrders:       len(orders),
			TodayOrders:       len(today),
			AverageOrderValue: averageOrderValue(orders),
			AverageRating:     averageRating(orders),
			PeakHour:          peakHour(orders),
			TopCategory:       topCategory(orders),
		},
		DailyRevenue:       dailyRevenueSeries(orders, defaultWindowDays),
		CategoryPopularity: categoryPopularity(orders),
		OrdersByHour:       ordersByHour(orders),
		RatingDistribution: ratingDistribution(orders),
		MostLikedDish:      mostLikedDish(orders, defaultWindowDays, now),
	}
}

// The helpers below are pure functions over an order snapshot.

func totalRevenue(orders []model.Order) float64 {
	var total float64
	for _, o := range orders {
		total += o.Amount
	}
	return total
}

// filterOnDay keeps the orders placed on the same calendar day as ref.
func filterOnDay(orders []model.Order, ref time.Time) []model.Order {
	y, m, d := ref.Date()
	var out []model.Order
	for _, o := range orders {
		oy, om, od := o.CreatedAt.Date()
		if oy == y && om == m && od == d {
			out = append(out, o)
		}
	}
	return out
}

func averageOrderValue(orders []model.Order) float64 {
	if len(orders) == 0 {
		return 0
	}
	return totalRevenue(orders) / float64(len(orders))
}

// averageRating is the mean over rated rows only. Unrated rows are excluded
// from the mean, not counted as zero.
func averageRating(orders []model.Order) float64 {
	var sum, count int
	for _, o := range orders {
		if o.Rated() {
			sum += *o.Rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// dailyRevenueSeries sums revenue per calendar date and returns the last
// windowDays dates present, ascending. Dates with no orders do not appear.
func dailyRevenueSeries(orders []model.Order, windowDays int) []model.DailyRevenue {
	if windowDays <= 0 {
		return nil
	}

	byDate := make(map[string]float64)
	for _, o := range orders {
		byDate[o.CreatedAt.Format("2006-01-02")] += o.Amount
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	if len(dates) > windowDays {
		dates = dates[len(dates)-windowDays:]
	}

	series := make([]model.DailyRevenue, len(dates))
	for i, date := range dates {
		series[i] = model.DailyRevenue{Date: date, Revenue: byDate[date]}
	}
	return series
}

// categoryPopularity counts orders per category, descending. Ties break
// alphabetically so the output is deterministic.
func categoryPopularity(orders []model.Order) []model.CategoryCount {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.Category]++
	}

	out := make([]model.CategoryCount, 0, len(counts))
	for category, count := range counts {
		out = append(out, model.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// ordersByHour counts orders per hour of day, all 24 buckets.
func ordersByHour(orders []model.Order) []model.HourCount {
	var counts [24]int
	for _, o := range orders {
		counts[o.CreatedAt.Hour()]++
	}

	out := make([]model.HourCount, 24)
	for hour := 0; hour < 24; hour++ {
		out[hour] = model.HourCount{Hour: hour, Count: counts[hour]}
	}
	return out
}

// ratingDistribution counts rated rows per star value, 1 through 5.
func ratingDistribution(orders []model.Order) []model.RatingCount {
	var counts [6]int
	for _, o := range orders {
		if o.Rated() && *o.Rating >= 1 && *o.Rating <= 5 {
			counts[*o.Rating]++
		}
	}

	out := make([]model.RatingCount, 5)
	for stars := 1; stars <= 5; stars++ {
		out[stars-1] = model.RatingCount{Stars: stars, Count: counts[stars]}
	}
	return out
}

// mostLikedDish returns the dish with the highest mean rating among rated
// rows in the trailing window, or the NoDish sentinel when the window holds
// nothing rated. Ties break alphabetically.
func mostLikedDish(orders []model.Order, windowDays int, now time.Time) string {
	cutoff := now.AddDate(0, 0, -windowDays)

	sums := make(map[string]int)
	counts := make(map[string]int)
	for _, o := range orders {
		if !o.Rated() || o.CreatedAt.Before(cutoff) {
			continue
		}
		sums[o.Dish] += *o.Rating
		counts[o.Dish]++
	}

	best := NoDish
	var bestMean float64
	for dish, count := range counts {
		mean := float64(sums[dish]) / float64(count)
		if best == NoDish || mean > bestMean || (mean == bestMean && dish < best) {
			best = dish
			bestMean = mean
		}
	}
	return best
}

// peakHour is the hour of day with the most orders, or NoPeakHour for an
// empty history. Ties resolve to the earliest hour.
func peakHour(orders []model.Order) int {
	if len(orders) == 0 {
		return NoPeakHour
	}

	var counts [24]int
	for _, o := range orders {
		counts[o.CreatedAt.Hour()]++
	}

	best := 0
	for hour := 1; hour < 24; hour++ {
		if counts[hour] > counts[best] {
			best = hour
		}
	}
	return best
}

// topCategory is the category with the most orders, or NoDish for an empty
// history.
func topCategory(orders []model.Order) string {
	pop := categoryPopularity(orders)
	if len(pop) == 0 {
		return NoDish
	}
	return pop[0].Category
}
