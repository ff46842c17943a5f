package ports

import "go.trai.ch/rescheduler/internal/core/domain"

// StatsSource reports router statistics.
//
//go:generate mockgen -source=stats.go -destination=mocks/mock_stats.go -package=mocks
type StatsSource interface {
	Stats() domain.RouterStats
}
