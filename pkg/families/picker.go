package families

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// Picker selects the primary model file from a repository's root files.
type Picker func(root []string) (string, bool)

// PickFirst returns a Picker that takes the first candidate present in root,
// falling back to the only .onnx file when exactly one exists.
func PickFirst(candidates ...string) Picker {
	return func(root []string) (string, bool) {
		for _, c := range candidates {
			if slices.Contains(root, c) {
				return c, true
			}
		}
		return singleONNX(root)
	}
}

var matchaStep = regexp.MustCompile(`^model-steps-(\d+)\.onnx$`)

// PickMatchaAcoustic prefers model-steps-3.onnx, then the lowest step count,
// then model.onnx, then a lone .onnx file.
func PickMatchaAcoustic(root []string) (string, bool) {
	if slices.Contains(root, "model-steps-3.onnx") {
		return "model-steps-3.onnx", true
	}

	best, bestStep := "", -1
	for _, f := range root {
		m := matchaStep.FindStringSubmatch(f)
		if m == nil {
			continue
		}
		step, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if bestStep < 0 || step < bestStep || (step == bestStep && f < best) {
			best, bestStep = f, step
		}
	}
	if bestStep >= 0 {
		return best, true
	}

	if slices.Contains(root, "model.onnx") {
		return "model.onnx", true
	}
	return singleONNX(root)
}

func singleONNX(root []string) (string, bool) {
	found := ""
	for _, f := range root {
		if !strings.HasSuffix(f, ".onnx") {
			continue
		}
		if found != "" {
			return "", false
		}
		found = f
	}
	return found, found != ""
}

// CollectRoot returns the sorted root files matching pattern.
func CollectRoot(root []string, pattern *regexp.Regexp) []string {
	var out []string
	for _, f := range root {
		if pattern.MatchString(f) {
			out = append(out, f)
		}
	}
	slices.Sort(out)
	return out
}
