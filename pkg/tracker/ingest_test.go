package tracker

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roomtrack.xyz/room-power-service/pkg/common"
	"roomtrack.xyz/room-power-service/pkg/models"
	_ "roomtrack.xyz/room-power-service/pkg/testing"
)

func TestIngestReport_IdleAutoOff(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trk, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	roomID := mustRegisterRoom(t, trk)
	device := mustRegisterDevice(t, trk, &roomID)
	now := time.Now().Truncate(time.Second)

	// Occupied room: first report seeds the snapshot, nothing changes.
	directive, err := trk.Ingest.IngestReport(device.DeviceID, &models.StatusReport{
		Occupied: true, MovementIdleSeconds: 0, PowerOn: true,
	}, now)
	require.NoError(t, err)
	assert.True(t, directive.PowerOn)
	assert.False(t, directive.Changed)

	// Room empties out and idles past the threshold: auto-off fires.
	directive, err = trk.Ingest.IngestReport(device.DeviceID, &models.StatusReport{
		Occupied: false, MovementIdleSeconds: 300, PowerOn: true,
	}, now.Add(5*time.Minute))
	require.NoError(t, err)
	assert.False(t, directive.PowerOn)
	assert.True(t, directive.Changed)
	assert.Equal(t, models.PowerReasonAutoIdle, directive.Reason)

	events, err := trk.Recorder.RoomPowerHistory(roomID, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].PowerOn)
	assert.Equal(t, models.PowerReasonAutoIdle, events[0].Reason)

	var snapshot models.RoomSnapshot
	require.NoError(t, trk.Db.Conn.First(&snapshot, "room_id = ?", roomID).Error)
	assert.False(t, snapshot.PowerOn)
	assert.False(t, snapshot.Occupied)
	assert.Equal(t, 300, snapshot.MovementIdleSeconds)
}

func TestIngestReport_Idempotent(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trk, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	roomID := mustRegisterRoom(t, trk)
	device := mustRegisterDevice(t, trk, &roomID)
	now := time.Now().Truncate(time.Second)

	report := &models.StatusReport{Occupied: false, MovementIdleSeconds: 300, PowerOn: true}

	directive, err := trk.Ingest.IngestReport(device.DeviceID, report, now)
	require.NoError(t, err)
	assert.False(t, directive.PowerOn)
	assert.True(t, directive.Changed)

	// The device re-sends the same payload before applying the directive.
	// The recorded state is already off, so no second transition is logged.
	directive, err = trk.Ingest.IngestReport(device.DeviceID, report, now.Add(30*time.Second))
	require.NoError(t, err)
	assert.False(t, directive.PowerOn)
	assert.False(t, directive.Changed)

	events, err := trk.Recorder.RoomPowerHistory(roomID, 10)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestIngestReport_ReservationForcesOn(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trk, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	roomID := mustRegisterRoom(t, trk)
	device := mustRegisterDevice(t, trk, &roomID)
	now := time.Now().Truncate(time.Second)

	_, err := trk.Reservation.Create("owner-1", roomID, now.Add(-10*time.Minute), now.Add(50*time.Minute), "lecture", "")
	require.NoError(t, err)

	// Empty and long idle, but the reservation holds the power on.
	directive, err := trk.Ingest.IngestReport(device.DeviceID, &models.StatusReport{
		Occupied: false, MovementIdleSeconds: 900, PowerOn: false,
	}, now)
	require.NoError(t, err)
	assert.True(t, directive.PowerOn)
	assert.True(t, directive.ReservationActive)
	assert.True(t, directive.Changed)
	assert.Equal(t, models.PowerReasonAutoReservation, directive.Reason)

	events, err := trk.Recorder.RoomPowerHistory(roomID, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.PowerReasonAutoReservation, events[0].Reason)
}

func TestIngestReport_ManualOverrideBlocksAutoOff(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trk, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	roomID := mustRegisterRoom(t, trk)
	device := mustRegisterDevice(t, trk, &roomID)
	now := time.Now().Truncate(time.Second)

	require.NoError(t, trk.Power.SubmitManualCommand(roomID, true, "operator-1", now))

	// Five minutes later the room is empty and idle past the threshold, but
	// the override is still inside its window.
	directive, err := trk.Ingest.IngestReport(device.DeviceID, &models.StatusReport{
		Occupied: false, MovementIdleSeconds: 400, PowerOn: true,
	}, now.Add(5*time.Minute))
	require.NoError(t, err)
	assert.True(t, directive.PowerOn)
	assert.False(t, directive.Changed)

	// Only the manual transition itself is in the ledger.
	events, err := trk.Recorder.RoomPowerHistory(roomID, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.PowerReasonManual, events[0].Reason)

	// Once the override lapses, the same report powers the room off.
	directive, err = trk.Ingest.IngestReport(device.DeviceID, &models.StatusReport{
		Occupied: false, MovementIdleSeconds: 400, PowerOn: true,
	}, now.Add(11*time.Minute))
	require.NoError(t, err)
	assert.False(t, directive.PowerOn)
	assert.True(t, directive.Changed)
	assert.Equal(t, models.PowerReasonAutoIdle, directive.Reason)
}

func TestIngestReport_UnlinkedDevice(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trk, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	device := mustRegisterDevice(t, trk, nil)
	now := time.Now().Truncate(time.Second)

	// No room to reconcile: the directive just echoes the reported state,
	// but the report still lands in the status ledger.
	directive, err := trk.Ingest.IngestReport(device.DeviceID, &models.StatusReport{
		Occupied: true, PowerOn: true,
	}, now)
	require.NoError(t, err)
	assert.True(t, directive.PowerOn)
	assert.False(t, directive.Changed)

	statuses, err := trk.Recorder.DeviceStatusHistory(device.DeviceID, 10)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Nil(t, statuses[0].RoomID)
}

func TestIngestReport_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trk, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	_, err := trk.Ingest.IngestReport(uuid.NewString(), &models.StatusReport{}, time.Now())
	assert.ErrorIs(t, err, ErrUnknownDevice)

	// Negative idle from a misbehaving device is clamped, never propagated.
	roomID := mustRegisterRoom(t, trk)
	device := mustRegisterDevice(t, trk, &roomID)
	_, err = trk.Ingest.IngestReport(device.DeviceID, &models.StatusReport{
		Occupied: false, MovementIdleSeconds: -42, PowerOn: true,
	}, time.Now())
	require.NoError(t, err)

	var snapshot models.RoomSnapshot
	require.NoError(t, trk.Db.Conn.First(&snapshot, "room_id = ?", roomID).Error)
	assert.Equal(t, 0, snapshot.MovementIdleSeconds)
}

func TestIngestReport_LedgerFailureIsBestEffort(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trk, _, mockIRecorder := GetMockTrackerWithMemorySqliteDialector(t, false, true)
	defer ctrl.Finish()

	roomID := mustRegisterRoom(t, trk)
	device := mustRegisterDevice(t, trk, &roomID)
	now := time.Now().Truncate(time.Second)

	mockIRecorder.
		EXPECT().
		AppendPower(gomock.Any()).
		Return(fmt.Errorf("ledger unavailable")).
		Times(1)
	mockIRecorder.
		EXPECT().
		AppendStatus(gomock.Any()).
		Return(fmt.Errorf("ledger unavailable")).
		Times(1)

	// Auto-off fires and both ledger writes fail; the device still gets its
	// directive and the snapshot still records the decision.
	directive, err := trk.Ingest.IngestReport(device.DeviceID, &models.StatusReport{
		Occupied: false, MovementIdleSeconds: 300, PowerOn: true,
	}, now)
	require.NoError(t, err)
	assert.False(t, directive.PowerOn)
	assert.True(t, directive.Changed)

	var snapshot models.RoomSnapshot
	require.NoError(t, trk.Db.Conn.First(&snapshot, "room_id = ?", roomID).Error)
	assert.False(t, snapshot.PowerOn)
}

func TestHeartbeat(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trk, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	device := mustRegisterDevice(t, trk, nil)
	now := time.Now().Truncate(time.Second)

	require.NoError(t, trk.Ingest.Heartbeat(device.DeviceID, "2.1.0", now))
	assert.True(t, trk.Liveness.IsOnline(device.DeviceID, now))

	var saved models.Device
	require.NoError(t, trk.Db.Conn.First(&saved, "device_id = ?", device.DeviceID).Error)
	assert.Equal(t, "2.1.0", saved.FirmwareVersion)

	assert.ErrorIs(t, trk.Ingest.Heartbeat(uuid.NewString(), "", now), ErrUnknownDevice)
}
