package matcher

// SynonymTable maps lay vocabulary to the section code it most strongly
// implies. It is read-only once built.
type SynonymTable struct {
	entries map[string]string
}

// NewSynonymTable copies entries into a new table. Keys are expected to be
// lowercase tokens.
func NewSynonymTable(entries map[string]string) SynonymTable {
	copied := make(map[string]string, len(entries))
	for term, section := range entries {
		copied[term] = section
	}
	return SynonymTable{entries: copied}
}

// Lookup returns the section implied by token
func (t SynonymTable) Lookup(token string) (string, bool) {
	section, ok := t.entries[token]
	return section, ok
}

var defaultSynonyms = NewSynonymTable(map[string]string{
	"murder":   "302",
	"kill":     "302",
	"homicide": "304",
	"assault":  "307",
	"stab":     "307",
	"dowry":    "304B",
	"rape":     "376",
	"cheat":    "420",
	"fraud":    "420",
	"theft":    "379",
	"phish":    "66D",
	"identity": "66C",
	"cheque":   "138",
	"consumer": "2(1)(g)",
})

// DefaultSynonyms returns the bundled synonym table
func DefaultSynonyms() SynonymTable {
	return defaultSynonyms
}
