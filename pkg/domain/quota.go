package domain

import "time"

// QuotaWindow represents external-API usage within one wall-clock window.
// CallCount never decreases except when the window resets.
type QuotaWindow struct {
	WindowStart time.Time
	CallCount   int
	Limit       int
}
