package families

// Registry is an ordered list of family descriptors.
type Registry []Descriptor

// DefaultRegistry returns the supported families in lookup order: Matcha,
// Kokoro, Kitten, VITS.
func DefaultRegistry() Registry {
	return Registry{
		MatchaDescriptor(),
		KokoroDescriptor(),
		KittenDescriptor(),
		VITSDescriptor(),
	}
}

// Families returns the family of each descriptor in registry order.
func (r Registry) Families() []Family {
	out := make([]Family, len(r))
	for i, d := range r {
		out[i] = d.Family
	}
	return out
}

// members returns every descriptor the repository belongs to, by name keyword
// or by root file signature, in registry order.
func (r Registry) members(repoName string, root []string) Registry {
	var out Registry
	for _, d := range r {
		if d.NameMatches(repoName) || d.SignatureMatches(root) {
			out = append(out, d)
		}
	}
	return out
}
