package pseries

import "sync/atomic"

// seriesIDCounter generates unique Series identities, used to key
// per-operand memo tables (addCache, mulCache, composeCache, ...).
//
// Using a generated id rather than a raw pointer keeps per-operand memo
// tables safe and simple map keys.
var seriesIDCounter uint64

func nextSeriesID() uint64 {
	return atomic.AddUint64(&seriesIDCounter, 1)
}
