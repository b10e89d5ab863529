package domain

// ResultKind tags the outcome of an asset lookup.
type ResultKind int

const (
	ResultFresh    ResultKind = iota // Live data fetched and cached
	ResultCached                     // Live fetch failed, stored entry returned
	ResultNotFound                   // Neither live nor cached data exists
)

func (k ResultKind) String() string {
	switch k {
	case ResultFresh:
		return "FRESH"
	case ResultCached:
		return "CACHED"
	case ResultNotFound:
		return "NOT_FOUND"
	default:
		return "UNKNOWN"
	}
}

// DisplayResult is the tagged outcome of an asset query. Entry is only
// meaningful for Fresh and Cached results; every call site must handle all
// three kinds.
type DisplayResult struct {
	Kind  ResultKind
	Entry AssetEntry
}

// FreshResult wraps a just-fetched entry.
func FreshResult(entry AssetEntry) DisplayResult {
	return DisplayResult{Kind: ResultFresh, Entry: entry}
}

// CachedResult wraps a previously stored entry.
func CachedResult(entry AssetEntry) DisplayResult {
	return DisplayResult{Kind: ResultCached, Entry: entry}
}

// NotFoundResult reports that the asset is unknown both live and cached.
func NotFoundResult() DisplayResult {
	return DisplayResult{Kind: ResultNotFound}
}
