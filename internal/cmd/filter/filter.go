// Package filter narrows catalog entries for the list command.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/agentstation/ttscatalog/pkg/catalog"
	"github.com/agentstation/ttscatalog/pkg/errors"
)

// EntryFilter applies flag filters and an optional expression to entries.
type EntryFilter struct {
	Engine   string
	Type     string
	Language string
	Search   string // Substring of id or display name
	Where    string // Boolean expression over Env

	program *vm.Program
}

// Env is the environment a Where expression is evaluated against.
type Env struct {
	ID           string   `expr:"id"`
	Name         string   `expr:"name"`
	Engine       string   `expr:"engine"`
	Type         string   `expr:"type"`
	SourceKind   string   `expr:"source_kind"`
	Repo         string   `expr:"repo"`
	Rev          string   `expr:"rev"`
	Files        []string `expr:"files"`
	Prefixes     []string `expr:"prefixes"`
	Dependencies []string `expr:"dependencies"`
	Languages    string   `expr:"languages"`
	Description  string   `expr:"description"`
	Fixed        bool     `expr:"fixed"`
}

// NewEnv builds the expression environment for an entry. fixed reports
// whether the entry is one of the built-in catalog entries.
func NewEnv(e catalog.Entry, fixed bool) Env {
	return Env{
		ID:           e.ID,
		Name:         e.DisplayName,
		Engine:       e.Engine,
		Type:         e.ModelType,
		SourceKind:   string(e.Source.Kind),
		Repo:         e.Source.Repo,
		Rev:          e.Source.Rev,
		Files:        e.Files,
		Prefixes:     e.Prefixes,
		Dependencies: e.Dependencies,
		Languages:    e.Meta.Languages,
		Description:  e.Meta.Description,
		Fixed:        fixed,
	}
}

// Compile checks the Where expression. Apply compiles lazily when it has
// not been called.
func (f *EntryFilter) Compile() error {
	if f == nil || f.Where == "" || f.program != nil {
		return nil
	}
	program, err := expr.Compile(f.Where, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return errors.NewValidationError("where", f.Where, fmt.Sprintf("invalid expression: %v", err))
	}
	f.program = program
	return nil
}

// Apply filters a slice of entries.
func (f *EntryFilter) Apply(entries []catalog.Entry) ([]catalog.Entry, error) {
	if f == nil || f.isEmpty() {
		return entries, nil
	}
	if err := f.Compile(); err != nil {
		return nil, err
	}

	fixed := make(map[string]bool)
	if f.program != nil {
		for _, id := range catalog.FixedIDs() {
			fixed[id] = true
		}
	}

	filtered := make([]catalog.Entry, 0, len(entries))
	for _, e := range entries {
		ok, err := f.matches(e, fixed[e.ID])
		if err != nil {
			return nil, err
		}
		if ok {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (f *EntryFilter) isEmpty() bool {
	return f.Engine == "" &&
		f.Type == "" &&
		f.Language == "" &&
		f.Search == "" &&
		f.Where == ""
}

func (f *EntryFilter) matches(e catalog.Entry, fixed bool) (bool, error) {
	if f.Engine != "" && !strings.EqualFold(e.Engine, f.Engine) {
		return false, nil
	}
	if f.Type != "" && !strings.EqualFold(e.ModelType, f.Type) {
		return false, nil
	}
	if f.Language != "" && !matchesLanguage(e.Meta.Languages, f.Language) {
		return false, nil
	}
	if f.Search != "" && !matchesSearch(e, f.Search) {
		return false, nil
	}
	if f.program == nil {
		return true, nil
	}

	out, err := expr.Run(f.program, NewEnv(e, fixed))
	if err != nil {
		return false, fmt.Errorf("evaluating %q for %s: %w", f.Where, e.ID, err)
	}
	result, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("expression %q did not return a boolean", f.Where)
	}
	return result, nil
}

// matchesLanguage compares against each comma-separated language.
func matchesLanguage(languages, want string) bool {
	for _, lang := range strings.Split(languages, ",") {
		if strings.EqualFold(strings.TrimSpace(lang), want) {
			return true
		}
	}
	return false
}

func matchesSearch(e catalog.Entry, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(e.ID), term) ||
		strings.Contains(strings.ToLower(e.DisplayName), term)
}
