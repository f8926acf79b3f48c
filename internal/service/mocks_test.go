package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/davidgarcial/bank-architecture/internal/models"
)

// ---- mock implementations ----

type mockUserStore struct {
	createFn        func(username, passwordHash string) (*models.User, error)
	getByUsernameFn func(username string) (*models.User, error)
	getByUUIDFn     func(userUUID string) (*models.User, error)
	updateFn        func(id primitive.ObjectID, username, passwordHash string) error
	deleteFn        func(id primitive.ObjectID) error
}

func (m *mockUserStore) Create(_ context.Context, username, passwordHash string) (*models.User, error) {
	if m.createFn != nil {
		return m.createFn(username, passwordHash)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(username)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockUserStore) GetByUUID(_ context.Context, userUUID string) (*models.User, error) {
	if m.getByUUIDFn != nil {
		return m.getByUUIDFn(userUUID)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockUserStore) Update(_ context.Context, id primitive.ObjectID, username, passwordHash string) error {
	if m.updateFn != nil {
		return m.updateFn(id, username, passwordHash)
	}
	return fmt.Errorf("not configured")
}
func (m *mockUserStore) Delete(_ context.Context, id primitive.ObjectID) error {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return fmt.Errorf("not configured")
}

type mockAccountStore struct {
	createFn     func(userID, accountType, accountName string) (primitive.ObjectID, error)
	getFn        func(id primitive.ObjectID) (*models.Account, error)
	getByUserFn  func(userID string) ([]models.Account, error)
	setBalanceFn func(id primitive.ObjectID, balance int64) (*models.Account, error)
}

func (m *mockAccountStore) Create(_ context.Context, userID, accountType, accountName string) (primitive.ObjectID, error) {
	if m.createFn != nil {
		return m.createFn(userID, accountType, accountName)
	}
	return primitive.NilObjectID, fmt.Errorf("not configured")
}
func (m *mockAccountStore) Get(_ context.Context, id primitive.ObjectID) (*models.Account, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockAccountStore) GetByUser(_ context.Context, userID string) ([]models.Account, error) {
	if m.getByUserFn != nil {
		return m.getByUserFn(userID)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockAccountStore) SetBalance(_ context.Context, id primitive.ObjectID, balance int64) (*models.Account, error) {
	if m.setBalanceFn != nil {
		return m.setBalanceFn(id, balance)
	}
	return nil, fmt.Errorf("not configured")
}

// mockBalanceStore records the order of balance operations so tests can
// assert debit-before-credit and compensation.
type mockBalanceStore struct {
	getFn         func(id primitive.ObjectID) (*models.Account, error)
	readBalanceFn func(id primitive.ObjectID) (int64, error)
	debitFn       func(id primitive.ObjectID, amount int64) error
	creditFn      func(id primitive.ObjectID, amount int64) error
	ops           []string
}

func (m *mockBalanceStore) Get(_ context.Context, id primitive.ObjectID) (*models.Account, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockBalanceStore) ReadBalance(_ context.Context, id primitive.ObjectID) (int64, error) {
	if m.readBalanceFn != nil {
		return m.readBalanceFn(id)
	}
	return 0, fmt.Errorf("not configured")
}
func (m *mockBalanceStore) ConditionalDebit(_ context.Context, id primitive.ObjectID, amount int64) error {
	m.ops = append(m.ops, "debit:"+id.Hex())
	if m.debitFn != nil {
		return m.debitFn(id, amount)
	}
	return nil
}
func (m *mockBalanceStore) Credit(_ context.Context, id primitive.ObjectID, amount int64) error {
	m.ops = append(m.ops, "credit:"+id.Hex())
	if m.creditFn != nil {
		return m.creditFn(id, amount)
	}
	return nil
}

type mockLedgerStore struct {
	appendFn func(tx *models.Transaction) (primitive.ObjectID, error)
	appended []models.Transaction
}

func (m *mockLedgerStore) Append(_ context.Context, tx *models.Transaction) (primitive.ObjectID, error) {
	if m.appendFn != nil {
		return m.appendFn(tx)
	}
	id := primitive.NewObjectID()
	tx.ID = id
	m.appended = append(m.appended, *tx)
	return id, nil
}

type mockHistoryStore struct {
	historyFn func(accountID primitive.ObjectID) ([]models.Transaction, error)
}

func (m *mockHistoryStore) History(_ context.Context, accountID primitive.ObjectID) ([]models.Transaction, error) {
	if m.historyFn != nil {
		return m.historyFn(accountID)
	}
	return nil, fmt.Errorf("not configured")
}

// mockTxRunner runs the callback inline, outside any real session.
type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) WithTransaction(_ context.Context, fn func(sc mongo.SessionContext) (interface{}, error)) error {
	m.calls++
	_, err := fn(nil)
	return err
}

type mockReader struct {
	getFn       func(id primitive.ObjectID) (*models.Account, error)
	invalidated []primitive.ObjectID
}

func (m *mockReader) Get(_ context.Context, id primitive.ObjectID) (*models.Account, error) {
	if m.getFn != nil {
		return m.getFn(id)
	}
	return nil, fmt.Errorf("not configured")
}
func (m *mockReader) Invalidate(_ context.Context, id primitive.ObjectID) {
	m.invalidated = append(m.invalidated, id)
}
