package align

// Profile bundles the language-specific word lists used to groom
// extracted spans and to keep known noise out of the growing
// connective sets. The zero value disables all grooming.
type Profile struct {
	// SuspectWords end a span only by alignment accident. Spans ending
	// in one, and weakly supported copies of one, are dropped.
	SuspectWords map[string]bool

	// JunkWords are single tokens that never work as connectives on
	// their own.
	JunkWords map[string]bool

	// Pronouns disqualify any span containing one.
	Pronouns map[string]bool

	// Contractions maps span-final contracted forms to their citation
	// form ("zum" to "zu").
	Contractions map[string]string

	// ExcludedSeeds are forms recorded in results but never fed back
	// as seeds for further iterations.
	ExcludedSeeds map[string]bool

	// FullLexicon lists every known connective of the language. It is
	// used to complete phrases extracted with an unmatched gap.
	FullLexicon []string
}
