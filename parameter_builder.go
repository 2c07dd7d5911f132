package screentrack

// Fallback value for environment data that is unavailable.
const fallbackValue = "none"

// ParameterBuilder produces the default enrichment map attached to every
// outgoing event. The environment is read fresh on every build so locale
// changes during the process lifetime show up in later events.
type ParameterBuilder struct {
	env EnvironmentAdapter
}

// NewParameterBuilder creates a builder reading from the given environment.
func NewParameterBuilder(env EnvironmentAdapter) *ParameterBuilder {
	return &ParameterBuilder{env: env}
}

// BuildDefaultParameters returns the default parameters for a screen tag.
// The map always contains exactly the ten enrichment keys; any unavailable
// environment value is substituted with "none".
func (b *ParameterBuilder) BuildDefaultParameters(tag string) ParameterMap {
	return ParameterMap{
		"tag":           tag,
		"language_code": orFallback(b.env.LanguageCode()),
		"identifier":    nonEmpty(b.env.LocaleIdentifier()),
		"currency_code": orFallback(b.env.CurrencyCode()),
		"region":        orFallback(b.env.RegionCode()),
		"description":   nonEmpty(b.env.LocaleDescription()),
		"device_uuid":   orFallback(b.env.DeviceUUID()),
		"system_name":   nonEmpty(b.env.SystemName()),
		"os_version":    nonEmpty(b.env.OSVersion()),
		"device_name":   nonEmpty(b.env.DeviceName()),
	}
}

func orFallback(value string, ok bool) string {
	if !ok {
		return fallbackValue
	}
	return value
}

func nonEmpty(value string) string {
	if value == "" {
		return fallbackValue
	}
	return value
}
