package shipment

import (
	"fmt"
	"regexp"
	"strings"

	"tracker/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTrackingNumberIsNotConstructed indicates a TrackingNumber was not created
// through GenerateTrackingNumber or NewTrackingNumber.
var ErrTrackingNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingNumber must be created via GenerateTrackingNumber or NewTrackingNumber",
)

// trackingNumberPrefix is the carrier prefix of every tracking number.
const trackingNumberPrefix = "DT"

// trackingNumberPattern matches a two-letter prefix followed by eight
// uppercase alphanumeric characters.
var trackingNumberPattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]{8}$`)

// TrackingNumber is the externally visible unique identifier of a shipment,
// distinct from the internal store key. It is immutable and assigned once
// at creation; the store's unique constraint is the final arbiter of
// uniqueness.
type TrackingNumber struct {
	value string
}

// GenerateTrackingNumber produces a new tracking number: the "DT" prefix plus
// the first eight characters of a random UUID, uppercased. Collisions are
// extremely unlikely but not impossible; callers must treat a uniqueness
// violation from the store as a retryable creation failure.
func GenerateTrackingNumber() TrackingNumber {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return TrackingNumber{value: trackingNumberPrefix + suffix}
}

// NewTrackingNumber parses a tracking number from its string form,
// typically when reconstructing shipments from persistence or handling
// track-by-number lookups. Returns an error if the format is invalid.
func NewTrackingNumber(s string) (TrackingNumber, error) {
	if s == "" {
		return TrackingNumber{}, errs.NewValueIsRequiredError("trackingNumber")
	}
	if !trackingNumberPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingNumber",
			fmt.Errorf("%q does not match the expected format", s),
		)
	}
	return TrackingNumber{value: s}, nil
}

// String returns the tracking number in its wire form, e.g. "DT1A2B3C4D".
func (t TrackingNumber) String() string {
	return t.value
}

// IsEqual compares two tracking numbers for equality.
func (t TrackingNumber) IsEqual(other TrackingNumber) bool {
	return t.value == other.value
}

// Validate checks the tracking number was properly constructed.
func (t TrackingNumber) Validate() error {
	if t.value == "" {
		return ErrTrackingNumberIsNotConstructed
	}
	return nil
}
