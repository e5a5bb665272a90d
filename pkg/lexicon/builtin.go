package lexicon

// Builtin returns a fresh copy of the built-in tables in pass order. Callers
// may modify the returned slice freely.
func Builtin() []Entry {
	var out []Entry
	out = append(out, legalityEntries()...)
	out = append(out, silentSoundEntries()...)
	out = append(out, complexEntries()...)
	out = append(out, identityEntries()...)
	out = append(out, placeEntries()...)
	out = append(out, businessEntries()...)
	out = append(out, culturalContextEntries()...)
	out = append(out, vocabularyEntries()...)
	return out
}
