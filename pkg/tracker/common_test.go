package tracker

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"roomtrack.xyz/room-power-service/pkg/config"
	"roomtrack.xyz/room-power-service/pkg/db"
	"roomtrack.xyz/room-power-service/pkg/models"
	"roomtrack.xyz/room-power-service/pkg/tracker/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		LivenessWindowSeconds: 120,
		IdleThresholdSeconds:  180,
		OverrideWindowSeconds: 600,
		StoreTimeoutMillis:    2000,
		SweepIntervalSeconds:  60,
	}
}

func GetMockTrackerWithMemorySqliteDialector(t *testing.T, useMockIReservation, useMockIRecorder bool) (
	*gomock.Controller,
	*Tracker,
	*mocks.MockIReservation,
	*mocks.MockIRecorder,
) {
	ctrl := gomock.NewController(t)

	mockIReservation := mocks.NewMockIReservation(ctrl)
	mockIRecorder := mocks.NewMockIRecorder(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	trackerInstance := New(*dbInstance, testConfig())

	reservationService := trackerInstance.GetIReservation()
	if useMockIReservation {
		reservationService = mockIReservation
	}

	recorderService := trackerInstance.GetIRecorder()
	if useMockIRecorder {
		recorderService = mockIRecorder
	}

	trackerInstance.WithServices(ServiceOpts{
		Liveness:    trackerInstance.GetILiveness(),
		Reservation: reservationService,
		Power:       trackerInstance.GetIPower(),
		Recorder:    recorderService,
		Ingest:      trackerInstance.GetIIngest(),
		DeviceAuth:  trackerInstance.GetIDeviceAuth(),
		Registry:    trackerInstance.GetIRegistry(),
	})

	return ctrl, trackerInstance, mockIReservation, mockIRecorder
}

func mustRegisterRoom(t *testing.T, trk *Tracker) uint {
	t.Helper()
	room := &models.Room{Name: "room-" + uuid.NewString(), Capacity: 30, Active: true}
	require.NoError(t, trk.Registry.RegisterRoom(room))
	require.NotZero(t, room.ID)
	return room.ID
}

func mustRegisterDevice(t *testing.T, trk *Tracker, roomID *uint) *models.Device {
	t.Helper()
	device := &models.Device{
		DeviceID: uuid.NewString(),
		Name:     "sensor",
		APIKey:   uuid.NewString(),
		Active:   true,
		RoomID:   roomID,
	}
	require.NoError(t, trk.Registry.RegisterDevice(device))
	return device
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
