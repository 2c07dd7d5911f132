package screentrack

import (
	"time"
)

// mockEnvironmentAdapter is a controllable EnvironmentAdapter for tests.
type mockEnvironmentAdapter struct {
	languageCode  string
	hasLanguage   bool
	localeID      string
	currencyCode  string
	hasCurrency   bool
	regionCode    string
	hasRegion     bool
	description   string
	deviceUUID    string
	hasDeviceUUID bool
	systemName    string
	osVersion     string
	deviceName    string
}

func fullEnvironment() *mockEnvironmentAdapter {
	return &mockEnvironmentAdapter{
		languageCode:  "en",
		hasLanguage:   true,
		localeID:      "en_US",
		currencyCode:  "USD",
		hasCurrency:   true,
		regionCode:    "US",
		hasRegion:     true,
		description:   "American English",
		deviceUUID:    "11111111-2222-3333-4444-555555555555",
		hasDeviceUUID: true,
		systemName:    "iOS",
		osVersion:     "17.4",
		deviceName:    "iPhone",
	}
}

func emptyEnvironment() *mockEnvironmentAdapter {
	return &mockEnvironmentAdapter{}
}

func (m *mockEnvironmentAdapter) LanguageCode() (string, bool) { return m.languageCode, m.hasLanguage }
func (m *mockEnvironmentAdapter) LocaleIdentifier() string     { return m.localeID }
func (m *mockEnvironmentAdapter) CurrencyCode() (string, bool) { return m.currencyCode, m.hasCurrency }
func (m *mockEnvironmentAdapter) RegionCode() (string, bool)   { return m.regionCode, m.hasRegion }
func (m *mockEnvironmentAdapter) LocaleDescription() string    { return m.description }
func (m *mockEnvironmentAdapter) DeviceUUID() (string, bool)   { return m.deviceUUID, m.hasDeviceUUID }
func (m *mockEnvironmentAdapter) SystemName() string           { return m.systemName }
func (m *mockEnvironmentAdapter) OSVersion() string            { return m.osVersion }
func (m *mockEnvironmentAdapter) DeviceName() string           { return m.deviceName }

// manualClock is a hand-advanced clock for deterministic timestamps.
type manualClock struct {
	now time.Time
}

func newManualClock(unixSec int64) *manualClock {
	return &manualClock{now: time.Unix(unixSec, 0)}
}

func (c *manualClock) Now() time.Time {
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// defaultParameterKeys are the ten enrichment keys attached to every event.
var defaultParameterKeys = []string{
	"tag", "language_code", "identifier", "currency_code", "region",
	"description", "device_uuid", "system_name", "os_version", "device_name",
}
