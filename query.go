package fuzzyscore

// Query preparation: build the immutable, read-only-shareable
// PreparedQuery once per query and reuse it across many candidates.
//
// Grounded on the teacher's lowercase-while-scanning pattern (algo.go's
// FuzzyMatchV2 "Phase 2") and on 42atomys/go-map-search's trigram-map
// indexing idiom (engine.go's cachedTrigrams), adapted from an
// index-wide document map to a single query's multiset.

// trigramKey is a 3-byte window of a lowercased string.
type trigramKey [3]byte

// PreparedQuery is an immutable bundle of precomputed query-side data,
// safe to share read-only across concurrently scoring goroutines.
type PreparedQuery struct {
	Raw                []byte
	Lower              []byte
	Bitmask            uint64
	Trigrams           map[trigramKey]int
	ContainsWhitespace bool
	Atoms              []PreparedQuery
}

// Prepare builds a PreparedQuery with no atom splitting. Use
// Matcher.Prepare when Smith-Waterman atom splitting should be honored.
func Prepare(query []byte) PreparedQuery {
	return prepareQuery(query, false)
}

func prepareQuery(query []byte, splitAtoms bool) PreparedQuery {
	raw := append([]byte(nil), query...)
	lower := make([]byte, len(query))
	var bitmask uint64
	containsWhitespace := false
	for i, b := range query {
		lb := ToLower(b)
		lower[i] = lb
		bitmask |= 1 << bitClassOf(lb)
		if IsWhitespace(lb) {
			containsWhitespace = true
		}
	}

	pq := PreparedQuery{
		Raw:                raw,
		Lower:              lower,
		Bitmask:            bitmask,
		ContainsWhitespace: containsWhitespace,
	}
	if len(lower) >= 3 {
		pq.Trigrams = trigramsOf(lower)
	}
	if splitAtoms && containsWhitespace {
		pq.Atoms = splitAtoms_(lower)
	}
	return pq
}

func trigramsOf(lower []byte) map[trigramKey]int {
	m := make(map[trigramKey]int, len(lower)-2)
	for i := 0; i+3 <= len(lower); i++ {
		var k trigramKey
		copy(k[:], lower[i:i+3])
		m[k]++
	}
	return m
}

// splitAtoms_ splits lower on whitespace runs and prepares each atom
// without recursing into further atom splitting.
func splitAtoms_(lower []byte) []PreparedQuery {
	var atoms []PreparedQuery
	start := -1
	for i := 0; i <= len(lower); i++ {
		if i < len(lower) && !IsWhitespace(lower[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			atoms = append(atoms, prepareQuery(lower[start:i], false))
			start = -1
		}
	}
	return atoms
}
