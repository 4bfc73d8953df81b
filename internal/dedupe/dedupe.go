package dedupe

// Package dedupe provides shared singleflight groups used to deduplicate
// concurrent read-side work. Using a centralized singleflight.Group
// ensures that only one job runs for a given key while other callers wait
// for the result.

import "golang.org/x/sync/singleflight"

// WinRatesGroup deduplicates concurrent win-rate ledger reads: the ledger
// endpoint is hit by every scoreboard refresh, and the underlying query is
// identical for all of them.
var WinRatesGroup singleflight.Group
