package wikidoc

// TagKey identifies a tag-scoped group of lines produced by the Tag
// Splitter. It is structural: two keys with the same fields are equal,
// mirroring the teacher's own Pos/FileRef value-type equality (sqlparser/scanner.go).
type TagKey struct {
	Name   string
	Symbol string // empty for a SimpleTagKey
	symbol bool   // true iff this is a SymbolTagKey (distinguishes from an empty-string symbol)
}

// SimpleTagKey builds a tag key for a tag with no target symbol, e.g. @author, @return.
func SimpleTagKey(name string) TagKey {
	return TagKey{Name: name}
}

// SymbolTagKey builds a tag key for a tag bound to a named symbol, e.g. @param x.
func SymbolTagKey(name, symbol string) TagKey {
	return TagKey{Name: name, Symbol: symbol, symbol: true}
}

// IsSymbolTag reports whether this key was built via SymbolTagKey.
func (k TagKey) IsSymbolTag() bool {
	return k.symbol
}

// symbolTagNames are the SymbolTagKey-producing tag names recognized by the
// splitter (spec.md §6.3).
var symbolTagNames = map[string]bool{
	"param":  true,
	"tparam": true,
	"throws": true,
}

// singleValuedTagNames project via oneTag (spec.md §4.5).
var singleValuedTagNames = map[string]bool{
	"return":     true,
	"version":    true,
	"since":      true,
	"deprecated": true,
}

// multiValuedTagNames project via allTags (spec.md §4.5).
var multiValuedTagNames = map[string]bool{
	"author":  true,
	"see":     true,
	"todo":    true,
	"note":    true,
	"example": true,
}
