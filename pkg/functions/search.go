package functions

// Score returns "search::score(ref)" — the relevance score for a 'matches'
// predicate reference number. Grounded on
// original_source/query-builder/src/functions/search.rs.
func Score(ref any) Function { return call("search::score", ref) }

// Offsets returns "search::offsets(ref)" — the matched keywords' positions.
func Offsets(ref any) Function { return call("search::offsets", ref) }

// Highlight returns "search::highlight(pre, post, ref)" — wraps matched
// keywords in the given pre/post markers.
func Highlight(pre, post, ref any) Function {
	return call("search::highlight", pre, post, ref)
}
