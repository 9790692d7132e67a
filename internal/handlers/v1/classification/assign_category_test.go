package classification

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
	"github.com/carson-networks/ledger-server/internal/taxonomy"
)

type mockProcessor struct {
	mock.Mock
}

func (m *mockProcessor) Process(ctx context.Context, action actions.IAction) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}

func newTestAPI(t *testing.T, op actionProcessor) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewAssignCategoryHandler(op).Register(api)
	return api
}

func TestHTTP_AssignCategory_Updated(t *testing.T) {
	assignedAt := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		action, ok := a.(*actions.AssignCategory)
		return ok && action.TxnID == 555 && action.CategoryID == 17
	})).Run(func(args mock.Arguments) {
		action := args.Get(1).(*actions.AssignCategory)
		action.Created = false
		action.AssignedAt = assignedAt
	}).Return(nil)

	resp := newTestAPI(t, op).Put("/v1/transaction/555/category", AssignCategoryBody{CategoryID: 17})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body AssignCategoryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(555), body.TxnID)
	assert.Equal(t, int64(17), body.CategoryID)
	assert.False(t, body.Created)
	op.AssertExpectations(t)
}

func TestHTTP_AssignCategory_CreatedReturns201(t *testing.T) {
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			action := args.Get(1).(*actions.AssignCategory)
			action.Created = true
			action.AssignedAt = time.Now().UTC()
		}).Return(nil)

	resp := newTestAPI(t, op).Put("/v1/transaction/555/category", AssignCategoryBody{CategoryID: 17})

	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestHTTP_AssignCategory_TransactionNotFound(t *testing.T) {
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.Anything).
		Return(taxonomy.NotFoundf("transaction does not exist: 999"))

	resp := newTestAPI(t, op).Put("/v1/transaction/999/category", AssignCategoryBody{CategoryID: 17})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_AssignCategory_SentinelRejected(t *testing.T) {
	op := new(mockProcessor)
	op.On("Process", mock.Anything, mock.Anything).
		Return(taxonomy.Validationf("protected categories cannot be assigned manually: 1"))

	resp := newTestAPI(t, op).Put("/v1/transaction/555/category", AssignCategoryBody{CategoryID: 1})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
