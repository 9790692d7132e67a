package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/category"
	"github.com/carson-networks/ledger-server/internal/storage/group"
	"github.com/carson-networks/ledger-server/internal/storage/note"
	"github.com/carson-networks/ledger-server/internal/storage/snapshot"
	"github.com/carson-networks/ledger-server/internal/storage/transaction"
)

type mockGroupReader struct {
	mock.Mock
}

var _ group.IGroupReader = (*mockGroupReader)(nil)

func (m *mockGroupReader) FindByID(ctx context.Context, id int64) (*group.Group, error) {
	args := m.Called(ctx, id)
	grp, _ := args.Get(0).(*group.Group)
	return grp, args.Error(1)
}

func (m *mockGroupReader) FindByName(ctx context.Context, name string) (*group.Group, error) {
	args := m.Called(ctx, name)
	grp, _ := args.Get(0).(*group.Group)
	return grp, args.Error(1)
}

func (m *mockGroupReader) List(ctx context.Context) ([]*group.Group, error) {
	args := m.Called(ctx)
	groups, _ := args.Get(0).([]*group.Group)
	return groups, args.Error(1)
}

type mockCategoryReader struct {
	mock.Mock
}

var _ category.ICategoryReader = (*mockCategoryReader)(nil)

func (m *mockCategoryReader) FindByID(ctx context.Context, id int64) (*category.Category, error) {
	args := m.Called(ctx, id)
	cat, _ := args.Get(0).(*category.Category)
	return cat, args.Error(1)
}

func (m *mockCategoryReader) FindByName(ctx context.Context, name string) (*category.Category, error) {
	args := m.Called(ctx, name)
	cat, _ := args.Get(0).(*category.Category)
	return cat, args.Error(1)
}

func (m *mockCategoryReader) FindInGroupByName(ctx context.Context, groupID int64, name string) (*category.Category, error) {
	args := m.Called(ctx, groupID, name)
	cat, _ := args.Get(0).(*category.Category)
	return cat, args.Error(1)
}

func (m *mockCategoryReader) MaxSortOrder(ctx context.Context, groupID int64) (int, error) {
	args := m.Called(ctx, groupID)
	return args.Int(0), args.Error(1)
}

func (m *mockCategoryReader) IsProtected(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCategoryReader) DeletedSentinelID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCategoryReader) ListAll(ctx context.Context) ([]*category.Category, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]*category.Category)
	return cats, args.Error(1)
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

type mockSnapshotReader struct {
	mock.Mock
}

var _ snapshot.ISnapshotReader = (*mockSnapshotReader)(nil)

func (m *mockSnapshotReader) List(ctx context.Context, accountName *string) ([]*snapshot.Snapshot, error) {
	args := m.Called(ctx, accountName)
	rows, _ := args.Get(0).([]*snapshot.Snapshot)
	return rows, args.Error(1)
}

type mockNoteReader struct {
	mock.Mock
}

var _ note.INoteReader = (*mockNoteReader)(nil)

func (m *mockNoteReader) FindByTxn(ctx context.Context, txnID int64) (*note.Note, error) {
	args := m.Called(ctx, txnID)
	row, _ := args.Get(0).(*note.Note)
	return row, args.Error(1)
}

func newTestStorage() (*storage.Storage, *mockGroupReader, *mockCategoryReader, *mockTransactionReader, *mockSnapshotReader, *mockNoteReader) {
	groups := new(mockGroupReader)
	categories := new(mockCategoryReader)
	transactions := new(mockTransactionReader)
	snapshots := new(mockSnapshotReader)
	notes := new(mockNoteReader)
	store := &storage.Storage{
		Reader: &storage.Reader{
			Groups:       groups,
			Categories:   categories,
			Transactions: transactions,
			Snapshots:    snapshots,
			Notes:        notes,
		},
	}
	return store, groups, categories, transactions, snapshots, notes
}
