//go:build unit

package legacy

import (
	"context"
	"testing"
	"time"

	sqlc "meeting-room-booking/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	rooms    []Room
	bookings []Booking
	history  []HistoryRecord
}

func (s stubSource) Rooms(context.Context) ([]Room, error)             { return s.rooms, nil }
func (s stubSource) Bookings(context.Context) ([]Booking, error)       { return s.bookings, nil }
func (s stubSource) History(context.Context) ([]HistoryRecord, error) { return s.history, nil }

type MockImportQueries struct {
	mock.Mock
}

func (m *MockImportQueries) InsertRoomIgnoreConflict(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertRoomIgnoreConflictParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImportQueries) InsertBookingIgnoreConflict(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertBookingIgnoreConflictParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockImportQueries) ArchiveBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.ArchiveBookingParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

// fakeTx records commit and rollback; every other pgx.Tx method is unused here.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx *fakeTx
}

func (b *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	return b.tx, nil
}

func sampleSource() stubSource {
	people := 3
	created := time.Date(2025, 1, 9, 21, 0, 0, 0, time.FixedZone("JST", 9*60*60))
	return stubSource{
		rooms: []Room{{ID: 1, Name: "Room A"}, {ID: 2, Name: "Room B"}},
		bookings: []Booking{
			{ID: 10, UserName: "Alice", Room: "Room A", Date: "2025-01-10", StartTime: "10:00", EndTime: "11:00", People: &people, Remark: "  sync ", CreatedAt: created},
		},
		history: []HistoryRecord{
			{Booking: Booking{ID: 9, UserName: "Bob", Room: "Room B", Date: "2025-01-08", StartTime: "09:00", EndTime: "09:30", CreatedAt: created}, ArchivedAt: created.Add(time.Hour)},
		},
	}
}

func TestImporter_DryRunOnlyCounts(t *testing.T) {
	q := new(MockImportQueries)
	beginner := &fakeBeginner{tx: &fakeTx{}}

	counts, err := NewImporter(sampleSource(), beginner, q).Run(context.Background(), true)

	require.NoError(t, err)
	assert.Equal(t, Counts{Rooms: 2, Bookings: 1, History: 1}, counts)
	q.AssertNotCalled(t, "InsertRoomIgnoreConflict", mock.Anything, mock.Anything, mock.Anything)
	assert.False(t, beginner.tx.committed)
}

func TestImporter_RunInsertsInOneTransaction(t *testing.T) {
	q := new(MockImportQueries)
	tx := &fakeTx{}

	q.On("InsertRoomIgnoreConflict", mock.Anything, tx, sqlc.InsertRoomIgnoreConflictParams{ID: legacyID("room", 1), Name: "Room A"}).
		Return(int64(1), nil)
	// already imported on a previous run
	q.On("InsertRoomIgnoreConflict", mock.Anything, tx, sqlc.InsertRoomIgnoreConflictParams{ID: legacyID("room", 2), Name: "Room B"}).
		Return(int64(0), nil)
	q.On("InsertBookingIgnoreConflict", mock.Anything, tx, mock.MatchedBy(func(p sqlc.InsertBookingIgnoreConflictParams) bool {
		return p.ID == legacyID("booking", 10) &&
			p.Remark == "sync" &&
			p.People.Valid && p.People.Int32 == 3 &&
			p.CreatedAt.Time.Location() == time.UTC &&
			p.CreatedAt.Time.Equal(time.Date(2025, 1, 9, 12, 0, 0, 0, time.UTC))
	})).Return(int64(1), nil)
	q.On("ArchiveBooking", mock.Anything, tx, mock.MatchedBy(func(p sqlc.ArchiveBookingParams) bool {
		return p.ID == legacyID("booking", 9) && !p.People.Valid && p.ArchivedAt.Valid
	})).Return(int64(1), nil)

	counts, err := NewImporter(sampleSource(), &fakeBeginner{tx: tx}, q).Run(context.Background(), false)

	require.NoError(t, err)
	assert.Equal(t, Counts{Rooms: 2, RoomsInserted: 1, Bookings: 1, BookingsInserted: 1, History: 1, HistoryInserted: 1}, counts)
	assert.True(t, tx.committed)
	q.AssertExpectations(t)
}

func TestImporter_BadDateRollsBack(t *testing.T) {
	src := sampleSource()
	src.bookings[0].Date = "10/01/2025"
	q := new(MockImportQueries)
	tx := &fakeTx{}
	q.On("InsertRoomIgnoreConflict", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)

	_, err := NewImporter(src, &fakeBeginner{tx: tx}, q).Run(context.Background(), false)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "booking 10")
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestLegacyID(t *testing.T) {
	assert.Equal(t, legacyID("booking", 42), legacyID("booking", 42))
	assert.NotEqual(t, legacyID("booking", 42), legacyID("room", 42))
	assert.NotEqual(t, legacyID("booking", 42), legacyID("booking", 43))
}

func TestCounts_String(t *testing.T) {
	got := Counts{Rooms: 3, RoomsInserted: 1}.String()

	assert.Contains(t, got, "rooms:    3 read, 1 inserted")
	assert.Contains(t, got, "history:  0 read, 0 inserted")
}
