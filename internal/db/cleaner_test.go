package db

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestStartDeletedSubjectCleaner_PurgesExpired(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	defer conn.Close()

	mock.MatchExpectationsInOrder(false)
	mock.ExpectExec("DELETE FROM subjects").
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	StartDeletedSubjectCleaner(ctx, conn, 10*time.Millisecond, time.Hour, zap.NewNop())
	time.Sleep(200 * time.Millisecond)
	cancel()

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected cleanup query to run: %v", err)
	}
}

func TestStartDeletedSubjectCleaner_LogsFailure(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	defer conn.Close()

	mock.MatchExpectationsInOrder(false)
	mock.ExpectExec("DELETE FROM subjects").
		WithArgs(sqlmock.AnyArg()).
		WillReturnError(errors.New("deadlock detected"))

	sink := &recordingCore{}
	logger := zap.New(sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	StartDeletedSubjectCleaner(ctx, conn, 10*time.Millisecond, time.Hour, logger)
	time.Sleep(200 * time.Millisecond)
	cancel()

	if !sink.has("failed to clean soft-deleted subjects") {
		t.Errorf("expected an error log, got %v", sink.messages())
	}
}

func TestStartDeletedSubjectCleaner_StopsOnCancel(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	StartDeletedSubjectCleaner(ctx, conn, 10*time.Millisecond, time.Hour, zap.NewNop())
	time.Sleep(100 * time.Millisecond)

	// The context was cancelled before the first tick, so no query runs.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unexpected database activity: %v", err)
	}
}

// recordingCore is a zapcore.Core that captures logged messages.
type recordingCore struct {
	mu   sync.Mutex
	msgs []string
}

func (c *recordingCore) Enabled(zapcore.Level) bool { return true }
func (c *recordingCore) With([]zapcore.Field) zapcore.Core {
	return c
}
func (c *recordingCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	return ce.AddCore(e, c)
}
func (c *recordingCore) Write(e zapcore.Entry, _ []zapcore.Field) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, e.Message)
	return nil
}
func (c *recordingCore) Sync() error { return nil }

func (c *recordingCore) has(msg string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.msgs {
		if m == msg {
			return true
		}
	}
	return false
}

func (c *recordingCore) messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.msgs...)
}
