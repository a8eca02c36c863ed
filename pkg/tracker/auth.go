package tracker

import (
	"errors"
	"strings"

	"gorm.io/gorm"
	"roomtrack.xyz/room-power-service/pkg/models"
)

func (t *Tracker) verifyDevice(deviceID string, apiKey string) error {
	if deviceID == "" || apiKey == "" {
		return ErrCredentialRejected
	}

	conn, cancel := t.conn()
	defer cancel()

	var device models.Device
	if err := conn.First(&device, "device_id = ?", deviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unknown and bad-key both read as rejected to the caller.
			return ErrCredentialRejected
		}
		return storeErr(err)
	}

	if device.APIKey != apiKey || !device.Active {
		return ErrCredentialRejected
	}
	return nil
}

type IDeviceAuthImpl struct {
	tracker *Tracker
}

func (ia *IDeviceAuthImpl) VerifyDevice(deviceID string, apiKey string) error {
	return ia.tracker.verifyDevice(deviceID, apiKey)
}

func (t *Tracker) GetIDeviceAuth() IDeviceAuth {
	return &IDeviceAuthImpl{tracker: t}
}

// IOperatorAuth answers whether a presented operator token may issue manual
// power commands and manage reservations. Token issuance, sessions and
// account management live outside this service.
type IOperatorAuth interface {
	Authorize(token string) (string, error)
}

// StaticTokenAuth maps pre-shared tokens to operator identities.
type StaticTokenAuth struct {
	tokens map[string]string
}

func NewStaticTokenAuth(tokens map[string]string) *StaticTokenAuth {
	return &StaticTokenAuth{tokens: tokens}
}

func (a *StaticTokenAuth) Authorize(token string) (string, error) {
	if token == "" {
		return "", ErrCredentialRejected
	}
	operator, exists := a.tokens[token]
	if !exists {
		return "", ErrCredentialRejected
	}
	return operator, nil
}

// ParseOperatorTokens reads "token:operator,token:operator" pairs, the
// format of the ROOM_OPERATOR_TOKENS environment variable.
func ParseOperatorTokens(raw string) map[string]string {
	tokens := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(pair), ":", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			continue
		}
		tokens[parts[0]] = parts[1]
	}
	return tokens
}
