package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratus-hr/hrd-backend-go/internal/domain/attendance"
	"github.com/stratus-hr/hrd-backend-go/internal/domain/setting"
)

type fakeSettingsRepo struct {
	settings setting.Settings
}

func (f *fakeSettingsRepo) Get(context.Context) (setting.Settings, error) {
	return f.settings, nil
}

func (f *fakeSettingsRepo) Update(context.Context, setting.UpdateSettingsRequest) error {
	return nil
}

func newTestAttendanceService(repo *fakeAttendanceRepo, now time.Time) *attendanceServiceImpl {
	return &attendanceServiceImpl{
		repo:     repo,
		settings: &fakeSettingsRepo{settings: setting.Settings{WorkStart: "09:00", WorkEnd: "17:00"}},
		logger:   discardLogger(),
		now:      func() time.Time { return now },
	}
}

func TestCheckIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestAttendanceService(repo, time.Date(2026, 3, 2, 8, 55, 0, 0, time.UTC))

	record, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, record.Status)
	require.NotNil(t, record.CheckIn)
	assert.Equal(t, "08:55", *record.CheckIn)

	_, err = svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInAfterWorkStartIsLate(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestAttendanceService(repo, time.Date(2026, 3, 2, 9, 20, 0, 0, time.UTC))

	record, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, record.Status)
}

func TestCheckOut(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestAttendanceService(repo, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC) }
	record, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	require.NotNil(t, record.CheckOut)
	assert.Equal(t, "17:30", *record.CheckOut)

	_, err = svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := newTestAttendanceService(repo, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC))

	_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: "emp-1"})
	assert.ErrorIs(t, err, attendance.ErrNoCheckIn)
}
