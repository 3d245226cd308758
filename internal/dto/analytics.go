package dto

import "github.com/yukikurage/task-tracker-api/internal/services"

// SummaryDTO represents the global analytics in API responses
type SummaryDTO struct {
	Total     int64     `json:"total"`
	Completed int64     `json:"completed"`
	Open      int64     `json:"open"`
	Overdue   int64     `json:"overdue"`
	Upcoming  []TaskDTO `json:"upcoming"`
}

// UserStatsDTO represents per-user analytics in API responses
type UserStatsDTO struct {
	User      UserDTO `json:"user"`
	Assigned  int64   `json:"assigned"`
	Completed int64   `json:"completed"`
	Overdue   int64   `json:"overdue"`
}

func ToSummaryDTO(summary services.Summary) SummaryDTO {
	return SummaryDTO{
		Total:     summary.Total,
		Completed: summary.Completed,
		Open:      summary.Open,
		Overdue:   summary.Overdue,
		Upcoming:  ToTaskDTOs(summary.Upcoming),
	}
}

func ToUserStatsDTO(stats services.UserStats) UserStatsDTO {
	return UserStatsDTO{
		User:      ToUserDTO(stats.User),
		Assigned:  stats.Assigned,
		Completed: stats.Completed,
		Overdue:   stats.Overdue,
	}
}
