package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TSM-StudioService/pkg/dbmetrics"
)

type fakeTx struct {
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return t.commitErr
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return nil
}

// fakeBeginner выдает по одной транзакции на попытку, ошибка коммита
// берется из очереди commitErrs
type fakeBeginner struct {
	commitErrs []error
	txs        []*fakeTx
}

func (b *fakeBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	var commitErr error
	if len(b.txs) < len(b.commitErrs) {
		commitErr = b.commitErrs[len(b.txs)]
	}
	tx := &fakeTx{commitErr: commitErr}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func serializationErr() error {
	return &pq.Error{Code: "40001"}
}

func TestDoSerializable_RetriesOnCommitSerializationFailure(t *testing.T) {
	// Конфликт сериализации PostgreSQL сообщает на COMMIT: первые две
	// попытки проигрывают, третья проходит
	db := &fakeBeginner{commitErrs: []error{serializationErr(), serializationErr(), nil}}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.True(t, db.txs[2].committed)
}

func TestDoSerializable_GivesUpAfterMaxRetries(t *testing.T) {
	db := &fakeBeginner{commitErrs: []error{serializationErr(), serializationErr(), serializationErr()}}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})

	require.Error(t, err)
	assert.Equal(t, maxSerializableRetries, attempts)
	assert.ErrorIs(t, err, ErrTxFailed)
	assert.True(t, IsSerializationFailure(err))
}

func TestDoSerializable_NoRetryOnOtherCommitError(t *testing.T) {
	db := &fakeBeginner{commitErrs: []error{errors.New("connection reset")}}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.ErrorIs(t, err, ErrTxFailed)
	assert.False(t, IsSerializationFailure(err))
}

func TestDoSerializable_RetriesOnWrappedQueryFailure(t *testing.T) {
	// Конфликт на чтении доходит до менеджера обернутым по дороге
	// репозиторием и use case, цепочка ошибок должна сохраниться
	errExec := errors.New("storage: failed to execute query")
	errInternal := errors.New("usecase: internal error")
	wrapped := fmt.Errorf("%w: failed to get bookings: %w",
		errInternal, fmt.Errorf("%w: execute query: %w", errExec, serializationErr()))

	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			return wrapped
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.True(t, db.txs[0].rolledBack)
	assert.True(t, db.txs[1].committed)
}

func TestDo_NoRetryOnSerializationFailure(t *testing.T) {
	db := &fakeBeginner{commitErrs: []error{serializationErr()}}
	m := NewTransactionManager(db)

	attempts := 0
	err := m.Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestDoSerializable_FnErrorRollsBack(t *testing.T) {
	db := &fakeBeginner{}
	m := NewTransactionManager(db)

	wantErr := errors.New("slot conflict")
	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	require.Len(t, db.txs, 1)
	assert.True(t, db.txs[0].rolledBack)
	assert.False(t, db.txs[0].committed)
}

func TestIsSerializationFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"raw 40001", serializationErr(), true},
		{"wrapped 40001", fmt.Errorf("%w: commit: %w", ErrTxFailed, serializationErr()), true},
		{"other pq code", &pq.Error{Code: "23505"}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSerializationFailure(tt.err))
		})
	}
}
