package attendance

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratus-hr/hrd-backend-go/internal/domain/attendance"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/audit"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/employee"
)

type fakeAttendanceRepo struct {
	records map[string]*attendance.AttendanceRecord
	seq     int

	failInsertFor string
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.AttendanceRecord)}
}

func recordKey(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) Create(_ context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	key := recordKey(record.EmployeeID, record.Date)
	if _, exists := f.records[key]; exists {
		return attendance.AttendanceRecord{}, attendance.ErrAlreadyCheckedIn
	}
	f.seq++
	record.ID = fmt.Sprintf("att-%d", f.seq)
	f.records[key] = &record
	return record, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.AttendanceRecord, error) {
	record, ok := f.records[recordKey(employeeID, date)]
	if !ok {
		return nil, nil
	}
	clone := *record
	return &clone, nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, date time.Time) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, record := range f.records {
		if record.Date.Equal(date) {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string, from, to time.Time) ([]attendance.AttendanceRecord, error) {
	var out []attendance.AttendanceRecord
	for _, record := range f.records {
		if record.EmployeeID == employeeID && !record.Date.Before(from) && !record.Date.After(to) {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) SetCheckOut(_ context.Context, id string, checkOut string) error {
	for _, record := range f.records {
		if record.ID == id {
			if record.CheckOut != nil {
				return attendance.ErrAlreadyCheckedOut
			}
			record.CheckOut = &checkOut
			return nil
		}
	}
	return attendance.ErrAttendanceNotFound
}

func (f *fakeAttendanceRepo) CloseOpenCheckIns(_ context.Context, date time.Time, checkOut, note string) (int64, error) {
	var closed int64
	for _, record := range f.records {
		if !record.Date.Equal(date) || record.CheckIn == nil || record.CheckOut != nil {
			continue
		}
		if record.Status != attendance.StatusPresent && record.Status != attendance.StatusLate {
			continue
		}
		out := checkOut
		record.CheckOut = &out
		if record.Notes == "" {
			record.Notes = note
		} else {
			record.Notes += "; " + note
		}
		closed++
	}
	return closed, nil
}

func (f *fakeAttendanceRepo) CreateAbsentIfMissing(_ context.Context, record attendance.AttendanceRecord) (bool, error) {
	if record.EmployeeID == f.failInsertFor {
		return false, errors.New("connection reset")
	}
	key := recordKey(record.EmployeeID, record.Date)
	if _, exists := f.records[key]; exists {
		return false, nil
	}
	f.seq++
	record.ID = fmt.Sprintf("att-%d", f.seq)
	f.records[key] = &record
	return true, nil
}

type fakeDirectory struct {
	entries []employee.DirectoryEntry
	err     error
}

func (f *fakeDirectory) ListActive(context.Context) ([]employee.DirectoryEntry, error) {
	return f.entries, f.err
}

type fakeSink struct {
	entries []audit.Entry
}

func (f *fakeSink) Record(_ context.Context, entry audit.Entry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func directoryOf(ids ...string) *fakeDirectory {
	d := &fakeDirectory{}
	for _, id := range ids {
		d.entries = append(d.entries, employee.DirectoryEntry{EmployeeID: id, FullName: "Employee " + id})
	}
	return d
}

func seedCheckIn(repo *fakeAttendanceRepo, employeeID string, date time.Time, checkIn string, checkOut *string) {
	repo.seq++
	in := checkIn
	repo.records[recordKey(employeeID, date)] = &attendance.AttendanceRecord{
		ID:         fmt.Sprintf("att-%d", repo.seq),
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    &in,
		CheckOut:   checkOut,
		Status:     attendance.StatusPresent,
	}
}

var testDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func at(hour int) time.Time {
	return testDay.Add(time.Duration(hour) * time.Hour)
}

func TestDailyPassBeforeCutoffIsNoop(t *testing.T) {
	repo := newFakeAttendanceRepo()
	seedCheckIn(repo, "emp-1", testDay, "08:55", nil)
	r := NewReconciler(repo, directoryOf("emp-1", "emp-2"), &fakeSink{}, discardLogger(), 19)

	result, err := r.RunDailyPass(context.Background(), at(18))
	require.NoError(t, err)
	assert.Zero(t, result.AutoCheckoutCount)
	assert.Zero(t, result.AutoAbsentCount)

	record, _ := repo.GetByEmployeeAndDate(context.Background(), "emp-1", testDay)
	assert.Nil(t, record.CheckOut)
}

func TestDailyPass(t *testing.T) {
	repo := newFakeAttendanceRepo()
	left := "17:30"
	seedCheckIn(repo, "emp-1", testDay, "08:55", nil)   // forgot to check out
	seedCheckIn(repo, "emp-2", testDay, "09:02", &left) // already checked out
	// emp-3 never showed up
	sink := &fakeSink{}
	r := NewReconciler(repo, directoryOf("emp-1", "emp-2", "emp-3"), sink, discardLogger(), 19)

	result, err := r.RunDailyPass(context.Background(), at(19))
	require.NoError(t, err)
	assert.Equal(t, 1, result.AutoCheckoutCount)
	assert.Equal(t, 1, result.AutoAbsentCount)

	forgot, _ := repo.GetByEmployeeAndDate(context.Background(), "emp-1", testDay)
	require.NotNil(t, forgot.CheckOut)
	assert.Equal(t, "19:00", *forgot.CheckOut)

	early, _ := repo.GetByEmployeeAndDate(context.Background(), "emp-2", testDay)
	assert.Equal(t, "17:30", *early.CheckOut)

	missing, _ := repo.GetByEmployeeAndDate(context.Background(), "emp-3", testDay)
	require.NotNil(t, missing)
	assert.Equal(t, attendance.StatusAbsent, missing.Status)

	require.Len(t, sink.entries, 1)
	assert.Equal(t, "attendance.daily_reconciliation", sink.entries[0].Action)
}

func TestDailyPassAppendsToExistingNote(t *testing.T) {
	repo := newFakeAttendanceRepo()
	seedCheckIn(repo, "emp-1", testDay, "08:55", nil)
	repo.records[recordKey("emp-1", testDay)].Notes = "badge reader offline"
	r := NewReconciler(repo, directoryOf("emp-1"), &fakeSink{}, discardLogger(), 19)

	result, err := r.RunDailyPass(context.Background(), at(19))
	require.NoError(t, err)
	assert.Equal(t, 1, result.AutoCheckoutCount)

	record, _ := repo.GetByEmployeeAndDate(context.Background(), "emp-1", testDay)
	require.NotNil(t, record.CheckOut)
	assert.Equal(t, "19:00", *record.CheckOut)
	assert.Equal(t, "badge reader offline; auto checkout at cutoff", record.Notes)
}

func TestDailyPassIsIdempotent(t *testing.T) {
	repo := newFakeAttendanceRepo()
	seedCheckIn(repo, "emp-1", testDay, "08:55", nil)
	r := NewReconciler(repo, directoryOf("emp-1", "emp-2"), &fakeSink{}, discardLogger(), 19)

	first, err := r.RunDailyPass(context.Background(), at(19))
	require.NoError(t, err)
	assert.Equal(t, 1, first.AutoCheckoutCount)
	assert.Equal(t, 1, first.AutoAbsentCount)

	second, err := r.RunDailyPass(context.Background(), at(20))
	require.NoError(t, err)
	assert.Zero(t, second.AutoCheckoutCount)
	assert.Zero(t, second.AutoAbsentCount)
}

func TestDailyPassDirectoryFailure(t *testing.T) {
	repo := newFakeAttendanceRepo()
	seedCheckIn(repo, "emp-1", testDay, "08:55", nil)
	r := NewReconciler(repo, &fakeDirectory{err: errors.New("db down")}, &fakeSink{}, discardLogger(), 19)

	_, err := r.RunDailyPass(context.Background(), at(19))
	require.Error(t, err)

	// The checkout sub-pass already landed and stays applied.
	record, _ := repo.GetByEmployeeAndDate(context.Background(), "emp-1", testDay)
	require.NotNil(t, record.CheckOut)
}

func TestDailyPassPartialAbsentFailure(t *testing.T) {
	repo := newFakeAttendanceRepo()
	repo.failInsertFor = "emp-2"
	r := NewReconciler(repo, directoryOf("emp-1", "emp-2", "emp-3"), &fakeSink{}, discardLogger(), 19)

	result, err := r.RunDailyPass(context.Background(), at(19))
	require.NoError(t, err)
	assert.Equal(t, 2, result.AutoAbsentCount)

	// The failed employee is caught on a later pass.
	repo.failInsertFor = ""
	retry, err := r.RunDailyPass(context.Background(), at(20))
	require.NoError(t, err)
	assert.Equal(t, 1, retry.AutoAbsentCount)
}
