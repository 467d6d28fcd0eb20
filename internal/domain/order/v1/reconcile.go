package v1

import (
	"fmt"
	"strings"
)

// ConstantFieldError reports an immutable field that changed between two
// sightings of the same triple. Both conflicting records are carried for
// diagnostics.
type ConstantFieldError struct {
	Existing *OrderRecord
	Incoming ListingSnapshot
	Fields   []string
}

func (e *ConstantFieldError) Error() string {
	return fmt.Sprintf("constant field changed for order %s: %s",
		e.Incoming.Key(), strings.Join(e.Fields, ", "))
}

// MalformedSnapshotError reports a scraped record missing required identity
// or price fields.
type MalformedSnapshotError struct {
	Snapshot ListingSnapshot
	Reason   string
}

func (e *MalformedSnapshotError) Error() string {
	return fmt.Sprintf("malformed listing snapshot %s: %s", e.Snapshot.Key(), e.Reason)
}

// Consolidate compresses a time-ordered price history by dropping interior
// samples that do not represent a price change. The first and last samples
// are always kept, an interior sample survives only when its price differs
// from its neighbor on either side. Idempotent, inputs of length <= 2 are
// returned unchanged.
func Consolidate(history []PricePoint) []PricePoint {
	if len(history) <= 2 {
		return history
	}

	consolidated := make([]PricePoint, 0, len(history))
	consolidated = append(consolidated, history[0])
	for i := 1; i < len(history)-1; i++ {
		if history[i].Price != history[i-1].Price || history[i].Price != history[i+1].Price {
			consolidated = append(consolidated, history[i])
		}
	}
	consolidated = append(consolidated, history[len(history)-1])

	return consolidated
}

// constantFieldMismatches returns the names of immutable fields that differ
// between the stored record and the new sighting.
func constantFieldMismatches(existing *OrderRecord, incoming ListingSnapshot) []string {
	var fields []string
	if existing.LoanGrade != incoming.LoanGrade {
		fields = append(fields, "loanGrade")
	}
	if existing.LoanRate != incoming.LoanRate {
		fields = append(fields, "loanRate")
	}
	if existing.LoanClass != incoming.LoanClass {
		fields = append(fields, "loanClass")
	}
	return fields
}

// Reconcile merges one incoming listing snapshot with the previously
// persisted record for the same triple, if any, and returns the record to
// persist. Descriptive attributes are refreshed from the latest observation
// while identity, first_seen and the accumulated price history carry
// forward. The new price sample is appended and the history consolidated.
//
// Returns a ConstantFieldError when an immutable field differs between the
// stored record and the new sighting; nothing is written in that case.
func Reconcile(incoming ListingSnapshot, existing *OrderRecord, now float64) (*OrderRecord, error) {
	if err := incoming.Validate(); err != nil {
		return nil, err
	}

	record := &OrderRecord{
		ListingSnapshot: incoming,
		FirstSeen:       now,
	}

	if existing != nil {
		if fields := constantFieldMismatches(existing, incoming); len(fields) > 0 {
			return nil, &ConstantFieldError{
				Existing: existing,
				Incoming: incoming,
				Fields:   fields,
			}
		}

		record.FirstSeen = existing.FirstSeen
		record.PriceHistory = append(record.PriceHistory, existing.PriceHistory...)
	}

	record.LastSeen = now
	record.LastUpdated = now
	record.PriceHistory = append(record.PriceHistory, PricePoint{Price: incoming.AskingPrice, Timestamp: now})
	record.PriceHistory = Consolidate(record.PriceHistory)

	return record, nil
}
