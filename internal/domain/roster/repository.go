package roster

import "context"

type Repository interface {
	// ListRosters computes attribution from appearances on every call.
	ListRosters(ctx context.Context, filter Filter) ([]Entry, error)
	// ListMaterializedRosters reads the precomputed team_roster view.
	ListMaterializedRosters(ctx context.Context, filter Filter) ([]Entry, error)
	RefreshMaterializedRosters(ctx context.Context) error
}
