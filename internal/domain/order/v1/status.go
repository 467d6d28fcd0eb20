package v1

// NoteStatus is the derived disposition class of one price-history sample.
type NoteStatus string

const (
	// StatusBought marks a listing that disappeared before aging out after
	// being on the market for some time.
	StatusBought NoteStatus = "B"
	// StatusCancelled marks a listing that was only ever seen once.
	StatusCancelled NoteStatus = "C"
	// StatusNotBoughtYet marks an interior sample of a listing still under
	// the time limit.
	StatusNotBoughtYet NoteStatus = "NBY"
	// StatusNotBought marks a listing that aged out unresolved.
	StatusNotBought NoteStatus = "NB"
)

// MaxTimeOnMarket is how long a listing can sit unsold before it is
// considered aged out, in seconds.
const MaxTimeOnMarket float64 = 7 * 24 * 3600

// DeriveStatus maps one price-history sample to its disposition class from
// the record's first/last-seen timestamps. sampleIsLast marks the sample
// built from the final history element.
//
// Marketplace data does not directly record purchase, so this is a
// timestamp-only heuristic: a listing gone before the 7-day limit is taken
// as bought, one seen only once as cancelled.
func DeriveStatus(firstSeen, lastSeen float64, sampleIsLast bool) NoteStatus {
	timeOnMarket := lastSeen - firstSeen

	if timeOnMarket >= MaxTimeOnMarket {
		return StatusNotBought
	}
	if sampleIsLast {
		if timeOnMarket == 0 {
			return StatusCancelled
		}
		return StatusBought
	}
	return StatusNotBoughtYet
}
