package category

import "context"

// Category represents a taxonomy category record.
type Category struct {
	ID          int64  `db:"id"`
	GroupID     int64  `db:"group_id"`
	Name        string `db:"name"`
	SortOrder   int    `db:"sort_order"`
	ReportClass string `db:"report_class"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	GroupID     int64
	Name        string
	SortOrder   int
	ReportClass string
}

// ICategoryReader defines read operations over the categories table,
// including the storage-backed integrity predicates shared by every
// mutating operation. Find methods return nil when no row matches.
type ICategoryReader interface {
	FindByID(ctx context.Context, id int64) (*Category, error)
	FindByName(ctx context.Context, name string) (*Category, error)
	FindInGroupByName(ctx context.Context, groupID int64, name string) (*Category, error)
	MaxSortOrder(ctx context.Context, groupID int64) (int, error)
	IsProtected(ctx context.Context, id int64) (bool, error)
	DeletedSentinelID(ctx context.Context) (int64, error)
	ListAll(ctx context.Context) ([]*Category, error)
}

// ICategoryWriter defines mutations over the categories table.
type ICategoryWriter interface {
	ICategoryReader
	Insert(ctx context.Context, create *CategoryCreate) (int64, error)
	UpdateName(ctx context.Context, id int64, name string) error
	UpdateGroup(ctx context.Context, id int64, groupID int64, sortOrder int) error
	Delete(ctx context.Context, id int64) error
}
