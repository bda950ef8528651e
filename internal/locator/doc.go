// Package locator discovers configuration document resources on the
// application's search roots.
//
// A search root is any io/fs.FS (a packaged resource directory, an OS
// directory, an embedded filesystem). Discovery enumerates every root for
// resources matching the supported extension patterns, keeps only resources
// under the fixed "META-INF/configuration/" location, and resolves each
// logical resource name to ALL of its physical locations: the same logical
// name exposed by several roots is merged, not deduplicated, while
// registering the same root twice applies it once.
//
// The engine also accepts pre-matched candidate lists from its host (keyed
// by extension pattern); in that mode the locator only applies the location
// prefix filter and the base/override filename split.
package locator
