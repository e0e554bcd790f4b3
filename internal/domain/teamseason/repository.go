package teamseason

import "context"

type Repository interface {
	ListGoals(ctx context.Context, filter GoalsFilter) ([]Goals, error)
	ListRecords(ctx context.Context, filter RecordFilter) ([]Record, error)
	ListPoints(ctx context.Context, filter PointsFilter) ([]Points, error)
	ListEfficiency(ctx context.Context, filter EfficiencyFilter) ([]Efficiency, error)
}
