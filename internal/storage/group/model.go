package group

import "context"

// Group represents a taxonomy group record.
type Group struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	SortOrder int    `db:"sort_order"`
}

// GroupCreate is the input for creating a new group.
type GroupCreate struct {
	Name      string
	SortOrder int
}

// IGroupReader defines read operations over the groups table.
// Find methods return nil (not an error) when no row matches.
type IGroupReader interface {
	FindByID(ctx context.Context, id int64) (*Group, error)
	FindByName(ctx context.Context, name string) (*Group, error)
	List(ctx context.Context) ([]*Group, error)
}

// IGroupWriter defines mutations over the groups table.
type IGroupWriter interface {
	IGroupReader
	Insert(ctx context.Context, create *GroupCreate) (int64, error)
	UpdateSortOrder(ctx context.Context, id int64, sortOrder int) error
}
