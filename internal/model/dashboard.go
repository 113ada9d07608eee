package model

// DailyRevenue is revenue summed over one calendar date.
type DailyRevenue struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Revenue float64 `json:"revenue"`
}

// CategoryCount is an order count for one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// HourCount is an order count for one hour of day.
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// RatingCount is an order count for one rating value.
type RatingCount struct {
	Stars int `json:"stars"`
	Count int `json:"count"`
}

// DashboardSummary is the dashboard's headline metric row plus the insights
// panel. Zero values and sentinels stand in for empty history: averages are
// 0, PeakHour is -1 and TopCategory is "N/A".
type DashboardSummary struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TodayRevenue      float64 `json:"todayRevenue"`
	TotalOrders       int     `json:"totalOrders"`
	TodayOrders       int     `json:"todayOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	AverageRating     float64 `json:"averageRating"`
	PeakHour          int     `json:"peakHour"`
	TopCategory       string  `json:"topCategory"`
}

// DashboardReport is the full dashboard payload.
type DashboardReport struct {
	Summary            DashboardSummary `json:"summary"`
	DailyRevenue       []DailyRevenue   `json:"dailyRevenue"`
	CategoryPopularity []CategoryCount  `json:"categoryPopularity"`
	OrdersByHour       []HourCount      `json:"ordersByHour"`
	RatingDistribution []RatingCount    `json:"ratingDistribution"`
	MostLikedDish      string           `json:"mostLikedDish"`
}
