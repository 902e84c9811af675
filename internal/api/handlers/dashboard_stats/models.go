package dashboard_stats

import "github.com/LeesureYatchs/Leisure-Yatchs/internal/service/bookings/models"

// DashboardResponse feeds the admin dashboard in one call
type DashboardResponse struct {
	Bookings      *models.StatsResponse `json:"bookings"`
	YachtCount    int                   `json:"yachtCount"`
	ActiveOffers  int                   `json:"activeOffers"`
	OpenEnquiries int                   `json:"openEnquiries"`
}
