package adapters

// EnvironmentAdapter is an interface for reading the current locale and
// device descriptors. Implement this interface to supply platform-specific
// introspection. Accessors returning a second bool report absence of
// optional data; absence is a normal case, never an error.
type EnvironmentAdapter interface {
	// LanguageCode returns the current language code, e.g. "en".
	LanguageCode() (string, bool)
	// LocaleIdentifier returns the full locale identifier, e.g. "en_US".
	LocaleIdentifier() string
	// CurrencyCode returns the locale's currency code, e.g. "USD".
	CurrencyCode() (string, bool)
	// RegionCode returns the locale's region code, e.g. "US".
	RegionCode() (string, bool)
	// LocaleDescription returns a human-readable locale description.
	LocaleDescription() string
	// DeviceUUID returns a stable identifier for the device.
	DeviceUUID() (string, bool)
	// SystemName returns the operating system name.
	SystemName() string
	// OSVersion returns the operating system version.
	OSVersion() string
	// DeviceName returns the device's name.
	DeviceName() string
}
