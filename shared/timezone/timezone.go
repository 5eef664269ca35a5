package timezone

import (
	"time"

	"github.com/rs/zerolog/log"

	"todonotes/config"
)

const Local = "Local"

var (
	appLocation *time.Location
)

// Init loads the configured application timezone. Unknown names fall back to
// the machine's local zone.
func Init(cfg *config.Config) {
	name := cfg.App.Timezone
	if name == "" || name == Local {
		appLocation = time.Local
		log.Debug().Str("location", appLocation.String()).Msg("Application timezone initialized")
		return
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to local time. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation = time.Local
		return
	}

	appLocation = loc
	log.Debug().
		Str("timezone", name).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.Local
	}
	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}
