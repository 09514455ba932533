package catalog_test

import (
	"regexp"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/agentstation/ttscatalog/pkg/catalog"
)

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"vits-piper-en_US-amy-low", "vits-piper-en-us-amy-low"},
		{"  Kokoro_Multi_Lang_v1_0  ", "kokoro-multi-lang-v1-0"},
		{"matcha-icefall-zh-baker", "matcha-icefall-zh-baker"},
		{"a__b--c", "a-b-c"},
		{"--edge--", "edge"},
		{"vits.melo@tts zh+en", "vits-melo-tts-zh-en"},
		{"___", ""},
		{"", ""},
		{"Ünïcode-Ñame", "n-code-ame"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.NormalizeID(tt.in))
		})
	}
}

func TestNormalizeIDProperties(t *testing.T) {
	valid := regexp.MustCompile(`^([a-z0-9]+(-[a-z0-9]+)*)?$`)
	properties := gopter.NewProperties(nil)

	properties.Property("normalizing twice equals normalizing once", prop.ForAll(
		func(s string) bool {
			once := catalog.NormalizeID(s)
			return catalog.NormalizeID(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("output uses only [a-z0-9-] without edge or doubled hyphens", prop.ForAll(
		func(s string) bool {
			return valid.MatchString(catalog.NormalizeID(s))
		},
		gen.AnyString(),
	))

	properties.Property("repo-like names stay stable", prop.ForAll(
		func(parts []string) bool {
			name := ""
			for i, p := range parts {
				if i > 0 {
					name += "_"
				}
				name += p
			}
			id := catalog.NormalizeID(name)
			return catalog.NormalizeID(id) == id
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
