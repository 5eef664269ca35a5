// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Initialization from configuration:
//     timezone.Init(cfg)
//
//  2. Basic usage after initialization:
//     now := timezone.Now()                    // Get current time in app timezone
//     appTime := timezone.ToAppTime(someTime)  // Convert any time to app timezone
//
//  3. Formatting times in app timezone:
//     formatted := timezone.Format(time.Now(), "02/01/2006 @ 03:04:05 PM")
//
// The timezone is configured via the APP_TIMEZONE environment variable.
// "Local" (the default) keeps the machine's local zone; any other value must
// be an IANA timezone database name such as "UTC" or "Asia/Jakarta".
package timezone
