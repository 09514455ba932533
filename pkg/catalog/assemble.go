package catalog

import "slices"

// Assemble builds the catalog: fixed entries in their given order, then the
// dynamic entries de-duplicated by id (last one wins) in ascending id order.
// Fixed entries are never merged with dynamic ones; see Collisions.
func Assemble(fixed, dynamic []Entry) Catalog {
	byID := make(map[string]Entry, len(dynamic))
	for _, e := range dynamic {
		byID[e.ID] = e
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	models := make([]Entry, 0, len(fixed)+len(ids))
	for _, e := range fixed {
		models = append(models, e.normalized())
	}
	for _, id := range ids {
		models = append(models, byID[id].normalized())
	}

	return Catalog{SchemaVersion: SchemaVersion, Models: models}
}

// Collisions lists the sorted ids present in both fixed and dynamic.
func Collisions(fixed, dynamic []Entry) []string {
	fixedIDs := make(map[string]struct{}, len(fixed))
	for _, e := range fixed {
		fixedIDs[e.ID] = struct{}{}
	}
	var out []string
	for _, e := range dynamic {
		if _, ok := fixedIDs[e.ID]; ok && !slices.Contains(out, e.ID) {
			out = append(out, e.ID)
		}
	}
	slices.Sort(out)
	return out
}
