package adapters

import (
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

const osReleaseFile = "/proc/sys/kernel/osrelease"

// HostEnvironmentAdapter is the default EnvironmentAdapter implementation.
// Locale data comes from the standard locale environment variables
// (LC_ALL, LC_MESSAGES, LANG) parsed with golang.org/x/text; device data
// comes from the host OS. Locale values are read fresh on every call so a
// locale change during the process lifetime is picked up.
type HostEnvironmentAdapter struct {
	generatedID     string
	generatedIDOnce sync.Once
}

// Ensure HostEnvironmentAdapter implements EnvironmentAdapter interface
var _ EnvironmentAdapter = (*HostEnvironmentAdapter)(nil)

// NewHostEnvironmentAdapter creates a new HostEnvironmentAdapter instance.
func NewHostEnvironmentAdapter() *HostEnvironmentAdapter {
	return &HostEnvironmentAdapter{}
}

// localeTag parses the process locale into a language tag.
func (h *HostEnvironmentAdapter) localeTag() (language.Tag, bool) {
	raw := h.rawLocale()
	if raw == "" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// rawLocale returns the locale string from the environment, stripped of
// any codeset suffix such as ".UTF-8". The "C" and "POSIX" locales carry
// no language information and are treated as absent.
func (h *HostEnvironmentAdapter) rawLocale() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := os.Getenv(key)
		if i := strings.IndexByte(value, '.'); i >= 0 {
			value = value[:i]
		}
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		return value
	}
	return ""
}

// LanguageCode returns the base language of the process locale.
func (h *HostEnvironmentAdapter) LanguageCode() (string, bool) {
	tag, ok := h.localeTag()
	if !ok {
		return "", false
	}
	base, _ := tag.Base()
	return base.String(), true
}

// LocaleIdentifier returns the raw locale string, e.g. "en_US".
func (h *HostEnvironmentAdapter) LocaleIdentifier() string {
	return h.rawLocale()
}

// CurrencyCode returns the currency of the locale's region.
func (h *HostEnvironmentAdapter) CurrencyCode() (string, bool) {
	tag, ok := h.localeTag()
	if !ok {
		return "", false
	}
	region, _ := tag.Region()
	if !region.IsCountry() {
		return "", false
	}
	unit, ok := currency.FromRegion(region)
	if !ok {
		return "", false
	}
	return unit.String(), true
}

// RegionCode returns the region of the process locale.
func (h *HostEnvironmentAdapter) RegionCode() (string, bool) {
	tag, ok := h.localeTag()
	if !ok {
		return "", false
	}
	region, _ := tag.Region()
	if !region.IsCountry() {
		return "", false
	}
	return region.String(), true
}

// LocaleDescription returns the locale's self-describing display name,
// e.g. "American English", falling back to the raw locale string.
func (h *HostEnvironmentAdapter) LocaleDescription() string {
	tag, ok := h.localeTag()
	if !ok {
		return h.rawLocale()
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return h.rawLocale()
}

// DeviceUUID returns the host machine id, or a process-stable generated
// identifier when the machine id is unreadable.
func (h *HostEnvironmentAdapter) DeviceUUID() (string, bool) {
	if data, err := os.ReadFile("/etc/machine-id"); err == nil {
		if id := strings.TrimSpace(string(data)); id != "" {
			return id, true
		}
	}
	h.generatedIDOnce.Do(func() {
		h.generatedID = uuid.NewString()
	})
	return h.generatedID, true
}

// SystemName returns the operating system name.
func (h *HostEnvironmentAdapter) SystemName() string {
	return runtime.GOOS
}

// OSVersion returns the kernel release where available.
func (h *HostEnvironmentAdapter) OSVersion() string {
	data, err := os.ReadFile(osReleaseFile)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// DeviceName returns the host name.
func (h *HostEnvironmentAdapter) DeviceName() string {
	name, err := os.Hostname()
	if err != nil {
		return ""
	}
	return name
}
