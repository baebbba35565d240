package usecase

import (
	"context"

	"bloodbridge/internal/domain/entity"
)

// WorkflowCounters holds per-status record counts for one workflow.
type WorkflowCounters struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// DashboardOverview is the admin landing view: the full stock snapshot
// plus request and donation counters.
type DashboardOverview struct {
	Stock     map[entity.BloodGroup]int `json:"stock"`
	Requests  WorkflowCounters          `json:"requests"`
	Donations WorkflowCounters          `json:"donations"`
}

// DashboardUsecase aggregates read-only views for admin dashboards.
type DashboardUsecase interface {
	// Overview returns a point-in-time stock snapshot and per-status
	// counters for requests and donations.
	Overview(ctx context.Context) (*DashboardOverview, error)
}
