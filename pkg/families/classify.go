package families

import (
	"fmt"
	"regexp"

	"github.com/agentstation/ttscatalog/pkg/catalog"
	"github.com/agentstation/ttscatalog/pkg/constants"
	"github.com/agentstation/ttscatalog/pkg/sources"
)

// Outcome is the verdict of classifying one repository.
type Outcome string

// Classification outcomes.
const (
	// Matched means one or more entries were produced.
	Matched Outcome = "matched"
	// Miss means no family matched, or the matched family lacked required
	// files or a usable primary model file.
	Miss Outcome = "miss"
	// Ambiguous means the repository belongs to several families, by name
	// keyword or file signature.
	Ambiguous Outcome = "ambiguous"
	// Excluded means the family matched but the repository is deliberately
	// left out of the catalog.
	Excluded Outcome = "excluded"
)

// Classification is the result of classifying one repository.
type Classification struct {
	RepoID  string
	Outcome Outcome

	// Family is set for Matched, Excluded and for a Miss on a known family.
	Family Family

	// Candidates lists the competing families of an Ambiguous result.
	Candidates []Family

	// Reason explains a non-Matched outcome.
	Reason string

	Entries []catalog.Entry
}

// Classifier applies a Registry to repository listings.
type Classifier struct {
	Registry Registry
	Revision string
}

// NewClassifier returns a Classifier over the default registry that pins
// entries to revision.
func NewClassifier(revision string) *Classifier {
	if revision == "" {
		revision = constants.DefaultRevision
	}
	return &Classifier{Registry: DefaultRegistry(), Revision: revision}
}

// Classify uses the default registry at the default revision.
func Classify(repoID, repoName string, files []string) Classification {
	return NewClassifier(constants.DefaultRevision).Classify(repoID, repoName, files)
}

// ClassifyListing classifies a fetched listing.
func (c *Classifier) ClassifyListing(l sources.Listing) Classification {
	return c.Classify(l.RepoID, l.Name(), l.Files)
}

// Classify decides which family a repository belongs to and builds its
// entries. It never fails; problems are reported through the outcome.
func (c *Classifier) Classify(repoID, repoName string, files []string) Classification {
	result := Classification{RepoID: repoID, Outcome: Miss}
	root := sources.RootFiles(files)

	members := c.Registry.members(repoName, root)
	if len(members) == 0 {
		result.Reason = "no family keyword or file signature"
		return result
	}
	if len(members) > 1 {
		result.Outcome = Ambiguous
		result.Candidates = members.Families()
		result.Reason = fmt.Sprintf("name or files match %d families", len(members))
		return result
	}
	d := members[0]
	result.Family = d.Family

	if d.Exclude != nil && d.Exclude(repoName) {
		result.Outcome = Excluded
		result.Reason = "excluded by name"
		return result
	}
	if file, missing := d.missing(root); missing {
		result.Reason = "missing " + file
		return result
	}
	primary, ok := d.Primary(root)
	if !ok {
		result.Reason = "no primary model file"
		return result
	}

	assets := append([]string{primary}, d.Required...)
	assets = append(assets, collectAux(root, d.Aux)...)

	for _, v := range d.Variants {
		result.Entries = append(result.Entries, Build(Fields{
			RepoID:       repoID,
			RepoName:     repoName,
			Family:       d.Family,
			Variant:      v,
			Files:        assets,
			Dependencies: ResolveDependencies(d.Family, v, files),
			Description:  d.Description,
			Revision:     c.Revision,
		}))
	}
	result.Outcome = Matched
	return result
}

func collectAux(root []string, patterns []*regexp.Regexp) []string {
	var out []string
	for _, p := range patterns {
		out = append(out, CollectRoot(root, p)...)
	}
	return out
}
