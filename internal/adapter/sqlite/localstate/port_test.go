package localstate

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/algoarena-2025.net/internal/core/ports/secondary"
	"gitlab.com/algoarena-2025.net/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

// xorSealer is a trivial reversible sealer; it marks sealed bytes so
// tests can verify the token never hits the database in the clear.
type xorSealer struct {
	openErr error
}

func (s *xorSealer) Seal(plain []byte) ([]byte, error) {
	out := make([]byte, len(plain))
	for i, b := range plain {
		out[i] = b ^ 0x5a
	}
	return append([]byte("sealed:"), out...), nil
}

func (s *xorSealer) Open(sealed []byte) ([]byte, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	body := bytes.TrimPrefix(sealed, []byte("sealed:"))
	out := make([]byte, len(body))
	for i, b := range body {
		out[i] = b ^ 0x5a
	}
	return out, nil
}

func newTestStore(t *testing.T, sealer Sealer) secondary.LocalStateStore {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	store := New(db, sealer, nopLogger{})
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSessionRoundTrip(t *testing.T) {
	store := newTestStore(t, &xorSealer{})
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, "tok-1", []byte(`{"id":"u1"}`)))

	token, identity, err := store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Equal(t, `{"id":"u1"}`, string(identity))
}

func TestSaveSessionOverwritesPreviousPair(t *testing.T) {
	store := newTestStore(t, &xorSealer{})
	ctx := context.Background()

	require.NoError(t, store.SaveSession(ctx, "tok-1", []byte(`{"id":"u1"}`)))
	require.NoError(t, store.SaveSession(ctx, "tok-2", []byte(`{"id":"u2"}`)))

	token, identity, err := store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
	assert.Equal(t, `{"id":"u2"}`, string(identity))
}

func TestLoadSessionEmptyStore(t *testing.T) {
	store := newTestStore(t, &xorSealer{})

	token, identity, err := store.LoadSession(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, identity)
}

func TestUnreadableTokenReportedAsAbsent(t *testing.T) {
	sealer := &xorSealer{}
	store := newTestStore(t, sealer)
	ctx := context.Background()
	require.NoError(t, store.SaveSession(ctx, "tok-1", []byte(`{"id":"u1"}`)))

	// A key rotation or corrupt file makes the sealed token unreadable;
	// the identity entry still loads, leaving a partial pair.
	sealer.openErr = errors.New("authentication failed")
	token, identity, err := store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.NotEmpty(t, identity)
}

func TestClearSessionRemovesBothEntries(t *testing.T) {
	store := newTestStore(t, &xorSealer{})
	ctx := context.Background()
	require.NoError(t, store.SaveSession(ctx, "tok-1", []byte(`{"id":"u1"}`)))

	require.NoError(t, store.ClearSession(ctx))

	token, identity, err := store.LoadSession(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
	assert.Empty(t, identity)
}

func TestSubmissionCacheRoundTrip(t *testing.T) {
	store := newTestStore(t, &xorSealer{})
	ctx := context.Background()

	older := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 1, 3, 10, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveSubmissions(ctx, []domain.Submission{
		{ID: "s1", Problem: domain.SubmissionProblem{ID: "p1", Title: "Two Sum"}, Status: domain.StatusAccepted, TestCasesPassed: 3, TotalTestCases: 3, CreatedAt: older},
		{ID: "s2", Problem: domain.SubmissionProblem{ID: "p2", Title: "Reverse List"}, Status: domain.StatusRejected, TestCasesPassed: 1, TotalTestCases: 4, CreatedAt: newer},
	}))

	subs, err := store.CachedSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 2)

	// Newest first.
	assert.Equal(t, "s2", subs[0].ID)
	assert.Equal(t, "Reverse List", subs[0].Problem.Title)
	assert.Equal(t, domain.StatusRejected, subs[0].Status)
	assert.True(t, subs[0].CreatedAt.Equal(newer))

	assert.Equal(t, "s1", subs[1].ID)
	assert.Equal(t, 3, subs[1].TestCasesPassed)
}

func TestCachedSubmissionsOrderWithinTheSameSecond(t *testing.T) {
	store := newTestStore(t, &xorSealer{})
	ctx := context.Background()

	// A whole-second timestamp and a fractional one in the same second
	// sort differently as text than as instants.
	wholeSecond := time.Date(2026, 1, 2, 10, 0, 5, 0, time.UTC)
	halfPast := wholeSecond.Add(500 * time.Millisecond)
	require.NoError(t, store.SaveSubmissions(ctx, []domain.Submission{
		{ID: "s1", Status: domain.StatusAccepted, CreatedAt: wholeSecond},
		{ID: "s2", Status: domain.StatusAccepted, CreatedAt: halfPast},
	}))

	subs, err := store.CachedSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, "s2", subs[0].ID)
	assert.Equal(t, "s1", subs[1].ID)
	assert.True(t, subs[0].CreatedAt.Equal(halfPast))
}

func TestSaveSubmissionsReplacesCache(t *testing.T) {
	store := newTestStore(t, &xorSealer{})
	ctx := context.Background()

	require.NoError(t, store.SaveSubmissions(ctx, []domain.Submission{
		{ID: "s1", Status: domain.StatusAccepted, CreatedAt: time.Now()},
		{ID: "s2", Status: domain.StatusRejected, CreatedAt: time.Now()},
	}))
	require.NoError(t, store.SaveSubmissions(ctx, []domain.Submission{
		{ID: "s3", Status: domain.StatusAccepted, CreatedAt: time.Now()},
	}))

	subs, err := store.CachedSubmissions(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "s3", subs[0].ID)
}

func TestSaveSubmissionsEmptyClearsCache(t *testing.T) {
	store := newTestStore(t, &xorSealer{})
	ctx := context.Background()

	require.NoError(t, store.SaveSubmissions(ctx, []domain.Submission{
		{ID: "s1", Status: domain.StatusAccepted, CreatedAt: time.Now()},
	}))
	require.NoError(t, store.SaveSubmissions(ctx, nil))

	subs, err := store.CachedSubmissions(ctx)
	require.NoError(t, err)
	assert.Empty(t, subs)
}
