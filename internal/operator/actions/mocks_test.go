package actions

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/storage/assignment"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/group"
	"github.com/carson-networks/ledger-server/internal/storage/note"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

// Hand-rolled mocks of the per-entity storage interfaces, so actions can be
// exercised without a database.

type mockGroupTable struct {
	mock.Mock
}

var _ group.IGroupWriter = (*mockGroupTable)(nil)

func (m *mockGroupTable) FindByID(ctx context.Context, id int64) (*group.Group, error) {
	args := m.Called(ctx, id)
	grp, _ := args.Get(0).(*group.Group)
	return grp, args.Error(1)
}

func (m *mockGroupTable) FindByName(ctx context.Context, name string) (*group.Group, error) {
	args := m.Called(ctx, name)
	grp, _ := args.Get(0).(*group.Group)
	return grp, args.Error(1)
}

func (m *mockGroupTable) List(ctx context.Context) ([]*group.Group, error) {
	args := m.Called(ctx)
	groups, _ := args.Get(0).([]*group.Group)
	return groups, args.Error(1)
}

func (m *mockGroupTable) Insert(ctx context.Context, create *group.GroupCreate) (int64, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockGroupTable) UpdateSortOrder(ctx context.Context, id int64, sortOrder int) error {
	args := m.Called(ctx, id, sortOrder)
	return args.Error(0)
}

type mockCategoryTable struct {
	mock.Mock
}

var _ category.ICategoryWriter = (*mockCategoryTable)(nil)

func (m *mockCategoryTable) FindByID(ctx context.Context, id int64) (*category.Category, error) {
	args := m.Called(ctx, id)
	cat, _ := args.Get(0).(*category.Category)
	return cat, args.Error(1)
}

func (m *mockCategoryTable) FindByName(ctx context.Context, name string) (*category.Category, error) {
	args := m.Called(ctx, name)
	cat, _ := args.Get(0).(*category.Category)
	return cat, args.Error(1)
}

func (m *mockCategoryTable) FindInGroupByName(ctx context.Context, groupID int64, name string) (*category.Category, error) {
	args := m.Called(ctx, groupID, name)
	cat, _ := args.Get(0).(*category.Category)
	return cat, args.Error(1)
}

func (m *mockCategoryTable) MaxSortOrder(ctx context.Context, groupID int64) (int, error) {
	args := m.Called(ctx, groupID)
	return args.Int(0), args.Error(1)
}

func (m *mockCategoryTable) IsProtected(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCategoryTable) DeletedSentinelID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryTable) ListAll(ctx context.Context) ([]*category.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]*category.Category)
	return cats, args.Error(1)
}

func (m *mockCategoryTable) Insert(ctx context.Context, create *category.CategoryCreate) (int64, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryTable) UpdateName(ctx context.Context, id int64, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

func (m *mockCategoryTable) UpdateGroup(ctx context.Context, id int64, groupID int64, sortOrder int) error {
	args := m.Called(ctx, id, groupID, sortOrder)
	return args.Error(0)
}

func (m *mockCategoryTable) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockAssignmentTable struct {
	mock.Mock
}

var _ assignment.IAssignmentWriter = (*mockAssignmentTable)(nil)

func (m *mockAssignmentTable) FindByTxn(ctx context.Context, txnID int64) (*assignment.Assignment, error) {
	args := m.Called(ctx, txnID)
	link, _ := args.Get(0).(*assignment.Assignment)
	return link, args.Error(1)
}

func (m *mockAssignmentTable) Insert(ctx context.Context, txnID, categoryID int64, assignedAt time.Time) error {
	args := m.Called(ctx, txnID, categoryID, assignedAt)
	return args.Error(0)
}

func (m *mockAssignmentTable) Update(ctx context.Context, txnID, categoryID int64, assignedAt time.Time) error {
	args := m.Called(ctx, txnID, categoryID, assignedAt)
	return args.Error(0)
}

func (m *mockAssignmentTable) RepointCategory(ctx context.Context, fromCategoryID, toCategoryID int64, assignedAt time.Time) (int, error) {
	args := m.Called(ctx, fromCategoryID, toCategoryID, assignedAt)
	return args.Int(0), args.Error(1)
}

type mockTransactionReader struct {
	mock.Mock
}

var _ transaction.ITransactionReader = (*mockTransactionReader)(nil)

func (m *mockTransactionReader) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockTransactionReader) List(ctx context.Context, filter *transaction.Filter) ([]*transaction.Row, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]*transaction.Row)
	return rows, args.Error(1)
}

func (m *mockTransactionReader) CountByTaxonomy(ctx context.Context, groupName, categoryName string, start, end time.Time) (int, error) {
	args := m.Called(ctx, groupName, categoryName, start, end)
	return args.Int(0), args.Error(1)
}

type mockNoteTable struct {
	mock.Mock
}

var _ note.INoteWriter = (*mockNoteTable)(nil)

func (m *mockNoteTable) FindByTxn(ctx context.Context, txnID int64) (*note.Note, error) {
	args := m.Called(ctx, txnID)
	row, _ := args.Get(0).(*note.Note)
	return row, args.Error(1)
}

func (m *mockNoteTable) Insert(ctx context.Context, txnID int64, text string, updatedAt time.Time) error {
	args := m.Called(ctx, txnID, text, updatedAt)
	return args.Error(0)
}

func (m *mockNoteTable) Update(ctx context.Context, txnID int64, text string, updatedAt time.Time) error {
	args := m.Called(ctx, txnID, text, updatedAt)
	return args.Error(0)
}

func (m *mockNoteTable) Delete(ctx context.Context, txnID int64) (bool, error) {
	args := m.Called(ctx, txnID)
	return args.Bool(0), args.Error(1)
}
