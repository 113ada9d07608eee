package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gourmet-order/internal/model"
	"gourmet-order/internal/session"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDashboardService is a mock implementation of DashboardService.
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) TotalRevenue(ctx context.Context, sess *session.Session) float64 {
	return m.Called(ctx, sess).Get(0).(float64)
}

func (m *MockDashboardService) TodayRevenue(ctx context.Context, sess *session.Session) float64 {
	return m.Called(ctx, sess).Get(0).(float64)
}

func (m *MockDashboardService) TotalOrders(ctx context.Context, sess *session.Session) int {
	return m.Called(ctx, sess).Int(0)
}

func (m *MockDashboardService) TodayOrders(ctx context.Context, sess *session.Session) int {
	return m.Called(ctx, sess).Int(0)
}

func (m *MockDashboardService) AverageOrderValue(ctx context.Context, sess *session.Session) float64 {
	return m.Called(ctx, sess).Get(0).(float64)
}

func (m *MockDashboardService) AverageRating(ctx context.Context, sess *session.Session) float64 {
	return m.Called(ctx, sess).Get(0).(float64)
}

func (m *MockDashboardService) DailyRevenueSeries(ctx context.Context, sess *session.Session, windowDays int) []model.DailyRevenue {
	return m.Called(ctx, sess, windowDays).Get(0).([]model.DailyRevenue)
}

func (m *MockDashboardService) CategoryPopularity(ctx context.Context, sess *session.Session) []model.CategoryCount {
	return m.Called(ctx, sess).Get(0).([]model.CategoryCount)
}

func (m *MockDashboardService) OrdersByHour(ctx context.Context, sess *session.Session) []model.HourCount {
	return m.Called(ctx, sess).Get(0).([]model.HourCount)
}

func (m *MockDashboardService) RatingDistribution(ctx context.Context, sess *session.Session) []model.RatingCount {
	return m.Called(ctx, sess).Get(0).([]model.RatingCount)
}

func (m *MockDashboardService) MostLikedDish(ctx context.Context, sess *session.Session, windowDays int) string {
	return m.Called(ctx, sess, windowDays).String(0)
}

func (m *MockDashboardService) Report(ctx context.Context, sess *session.Session) *model.DashboardReport {
	return m.Called(ctx, sess).Get(0).(*model.DashboardReport)
}

func TestDashboardHandler_Report(t *testing.T) {
	mockService := new(MockDashboardService)
	h := NewDashboardHandler(mockService, zerolog.Nop())

	report := &model.DashboardReport{
		Summary: model.DashboardSummary{
			TotalRevenue:  13.00,
			TotalOrders:   3,
			AverageRating: 4.0,
			PeakHour:      12,
			TopCategory:   "Mixed",
		},
		MostLikedDish: "Tiramisu",
	}

	req, sess := newSessionRequest(t, http.MethodGet, "/api/dashboard", "")
	mockService.On("Report", mock.Anything, sess).Return(report)

	rec := httptest.NewRecorder()
	h.Report(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.DashboardReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 13.00, resp.Summary.TotalRevenue)
	assert.Equal(t, "Tiramisu", resp.MostLikedDish)
	assert.Equal(t, 12, resp.Summary.PeakHour)
}

func TestDashboardHandler_Report_MethodNotAllowed(t *testing.T) {
	h := NewDashboardHandler(new(MockDashboardService), zerolog.Nop())

	req, _ := newSessionRequest(t, http.MethodPost, "/api/dashboard", "")
	rec := httptest.NewRecorder()
	h.Report(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
