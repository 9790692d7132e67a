package note

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	storagenote "github.com/carson-networks/ledger-server/internal/storage/note"
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

type mockNoteGetter struct {
	mock.Mock
}

func (m *mockNoteGetter) GetNote(ctx context.Context, txnID int64) (*storagenote.Note, error) {
	args := m.Called(ctx, txnID)
	row, _ := args.Get(0).(*storagenote.Note)
	return row, args.Error(1)
}

func TestHTTP_GetNote(t *testing.T) {
	mockSvc := new(mockNoteGetter)
	mockSvc.On("GetNote", mock.Anything, int64(555)).Return(&storagenote.Note{
		TxnID:     555,
		Note:      "split with roommate",
		UpdatedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
	}, nil)

	_, api := humatest.New(t)
	NewGetNoteHandler(mockSvc).Register(api)

	resp := api.Get("/v1/transaction/555/note")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Note
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "split with roommate", body.Note)
}

func TestHTTP_GetNote_NotFound(t *testing.T) {
	mockSvc := new(mockNoteGetter)
	mockSvc.On("GetNote", mock.Anything, int64(555)).
		Return(nil, taxonomy.NotFoundf("note does not exist for transaction: 555"))

	_, api := humatest.New(t)
	NewGetNoteHandler(mockSvc).Register(api)

	resp := api.Get("/v1/transaction/555/note")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpsertNote_Created(t *testing.T) {
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		action, ok := a.(*actions.UpsertNote)
		return ok && action.TxnID == 555 && action.Note == "check this"
	})).Run(func(args mock.Arguments) {
		action := args.Get(1).(*actions.UpsertNote)
		action.Created = true
		action.Result = &storagenote.Note{TxnID: 555, Note: "check this", UpdatedAt: time.Now().UTC()}
	}).Return(nil)

	_, api := humatest.New(t)
	NewUpsertNoteHandler(op).Register(api)

	resp := api.Put("/v1/transaction/555/note", UpsertNoteBody{Note: "check this"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	op.AssertExpectations(t)
}

func TestHTTP_UpsertNote_TransactionNotFound(t *testing.T) {
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.Anything).
		Return(taxonomy.NotFoundf("transaction does not exist: 999"))

	_, api := humatest.New(t)
	NewUpsertNoteHandler(op).Register(api)

	resp := api.Put("/v1/transaction/999/note", UpsertNoteBody{Note: "anything"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_DeleteNote(t *testing.T) {
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.AnythingOfType("*actions.DeleteNote")).Return(nil)

	_, api := humatest.New(t)
	NewDeleteNoteHandler(op).Register(api)

	resp := api.Delete("/v1/transaction/555/note")

	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestHTTP_DeleteNote_NotFound(t *testing.T) {
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.Anything).
		Return(taxonomy.NotFoundf("note does not exist for transaction: 555"))

	_, api := humatest.New(t)
	NewDeleteNoteHandler(op).Register(api)

	resp := api.Delete("/v1/transaction/555/note")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
