package records

import (
	"context"
	"sync"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"
)

// mockRepository records calls to the methods BunStore uses and panics on the rest.
type mockRepository[T any] struct {
	mu    sync.Mutex
	calls []string

	listRecords    []T
	listError      error
	listCriteria   int
	createError    error
	updateError    error
	getByIDResult  T
	getByIDError   error
	getByIDArg     string
	deleteError    error
	deletedRecords []T
}

func (m *mockRepository[T]) recordCall(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, method)
}

func (m *mockRepository[T]) getCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *mockRepository[T]) List(ctx context.Context, criteria ...repository.SelectCriteria) ([]T, int, error) {
	m.recordCall("List")
	m.listCriteria = len(criteria)
	return m.listRecords, len(m.listRecords), m.listError
}

func (m *mockRepository[T]) Create(ctx context.Context, record T, criteria ...repository.InsertCriteria) (T, error) {
	m.recordCall("Create")
	if m.createError != nil {
		var zero T
		return zero, m.createError
	}
	return record, nil
}

func (m *mockRepository[T]) Update(ctx context.Context, record T, criteria ...repository.UpdateCriteria) (T, error) {
	m.recordCall("Update")
	return record, m.updateError
}

func (m *mockRepository[T]) GetByID(ctx context.Context, id string, criteria ...repository.SelectCriteria) (T, error) {
	m.recordCall("GetByID")
	m.getByIDArg = id
	return m.getByIDResult, m.getByIDError
}

func (m *mockRepository[T]) Delete(ctx context.Context, record T) error {
	m.recordCall("Delete")
	m.deletedRecords = append(m.deletedRecords, record)
	return m.deleteError
}

func (m *mockRepository[T]) Get(ctx context.Context, criteria ...repository.SelectCriteria) (T, error) {
	panic("Get not implemented in mock")
}
func (m *mockRepository[T]) Count(ctx context.Context, criteria ...repository.SelectCriteria) (int, error) {
	panic("Count not implemented in mock")
}
func (m *mockRepository[T]) GetByIdentifier(ctx context.Context, identifier string, criteria ...repository.SelectCriteria) (T, error) {
	panic("GetByIdentifier not implemented in mock")
}
func (m *mockRepository[T]) Raw(ctx context.Context, sql string, args ...any) ([]T, error) {
	panic("Raw not implemented in mock")
}
func (m *mockRepository[T]) RawTx(ctx context.Context, tx bun.IDB, sql string, args ...any) ([]T, error) {
	panic("RawTx not implemented in mock")
}
func (m *mockRepository[T]) GetTx(ctx context.Context, tx bun.IDB, criteria ...repository.SelectCriteria) (T, error) {
	panic("GetTx not implemented in mock")
}
func (m *mockRepository[T]) GetByIDTx(ctx context.Context, tx bun.IDB, id string, criteria ...repository.SelectCriteria) (T, error) {
	panic("GetByIDTx not implemented in mock")
}
func (m *mockRepository[T]) ListTx(ctx context.Context, tx bun.IDB, criteria ...repository.SelectCriteria) ([]T, int, error) {
	panic("ListTx not implemented in mock")
}
func (m *mockRepository[T]) CountTx(ctx context.Context, tx bun.IDB, criteria ...repository.SelectCriteria) (int, error) {
	panic("CountTx not implemented in mock")
}
func (m *mockRepository[T]) CreateTx(ctx context.Context, tx bun.IDB, record T, criteria ...repository.InsertCriteria) (T, error) {
	panic("CreateTx not implemented in mock")
}
func (m *mockRepository[T]) CreateMany(ctx context.Context, records []T, criteria ...repository.InsertCriteria) ([]T, error) {
	panic("CreateMany not implemented in mock")
}
func (m *mockRepository[T]) CreateManyTx(ctx context.Context, tx bun.IDB, records []T, criteria ...repository.InsertCriteria) ([]T, error) {
	panic("CreateManyTx not implemented in mock")
}
func (m *mockRepository[T]) GetOrCreate(ctx context.Context, record T) (T, error) {
	panic("GetOrCreate not implemented in mock")
}
func (m *mockRepository[T]) GetOrCreateTx(ctx context.Context, tx bun.IDB, record T) (T, error) {
	panic("GetOrCreateTx not implemented in mock")
}
func (m *mockRepository[T]) GetByIdentifierTx(ctx context.Context, tx bun.IDB, identifier string, criteria ...repository.SelectCriteria) (T, error) {
	panic("GetByIdentifierTx not implemented in mock")
}
func (m *mockRepository[T]) UpdateTx(ctx context.Context, tx bun.IDB, record T, criteria ...repository.UpdateCriteria) (T, error) {
	panic("UpdateTx not implemented in mock")
}
func (m *mockRepository[T]) UpdateMany(ctx context.Context, records []T, criteria ...repository.UpdateCriteria) ([]T, error) {
	panic("UpdateMany not implemented in mock")
}
func (m *mockRepository[T]) UpdateManyTx(ctx context.Context, tx bun.IDB, records []T, criteria ...repository.UpdateCriteria) ([]T, error) {
	panic("UpdateManyTx not implemented in mock")
}
func (m *mockRepository[T]) Upsert(ctx context.Context, record T, criteria ...repository.UpdateCriteria) (T, error) {
	panic("Upsert not implemented in mock")
}
func (m *mockRepository[T]) UpsertTx(ctx context.Context, tx bun.IDB, record T, criteria ...repository.UpdateCriteria) (T, error) {
	panic("UpsertTx not implemented in mock")
}
func (m *mockRepository[T]) UpsertMany(ctx context.Context, records []T, criteria ...repository.UpdateCriteria) ([]T, error) {
	panic("UpsertMany not implemented in mock")
}
func (m *mockRepository[T]) UpsertManyTx(ctx context.Context, tx bun.IDB, records []T, criteria ...repository.UpdateCriteria) ([]T, error) {
	panic("UpsertManyTx not implemented in mock")
}
func (m *mockRepository[T]) DeleteTx(ctx context.Context, tx bun.IDB, record T) error {
	panic("DeleteTx not implemented in mock")
}
func (m *mockRepository[T]) DeleteMany(ctx context.Context, criteria ...repository.DeleteCriteria) error {
	panic("DeleteMany not implemented in mock")
}
func (m *mockRepository[T]) DeleteManyTx(ctx context.Context, tx bun.IDB, criteria ...repository.DeleteCriteria) error {
	panic("DeleteManyTx not implemented in mock")
}
func (m *mockRepository[T]) DeleteWhere(ctx context.Context, criteria ...repository.DeleteCriteria) error {
	panic("DeleteWhere not implemented in mock")
}
func (m *mockRepository[T]) DeleteWhereTx(ctx context.Context, tx bun.IDB, criteria ...repository.DeleteCriteria) error {
	panic("DeleteWhereTx not implemented in mock")
}
func (m *mockRepository[T]) ForceDelete(ctx context.Context, record T) error {
	panic("ForceDelete not implemented in mock")
}
func (m *mockRepository[T]) ForceDeleteTx(ctx context.Context, tx bun.IDB, record T) error {
	panic("ForceDeleteTx not implemented in mock")
}
func (m *mockRepository[T]) Handlers() repository.ModelHandlers[T] {
	panic("Handlers not implemented in mock")
}

var _ repository.Repository[any] = (*mockRepository[any])(nil)
