package families

import "regexp"

// KokoroDescriptor covers Kokoro multi-speaker models.
func KokoroDescriptor() Descriptor {
	return Descriptor{
		Family:      Kokoro,
		Keyword:     "kokoro",
		Required:    []string{TokensFile, VoicesFile},
		Primary:     PickFirst("model.int8.onnx", "model.onnx"),
		Aux:         []*regexp.Regexp{lexiconFile, fstFile},
		Variants:    single,
		Description: "Kokoro TTS via sherpa-onnx OfflineTtsKokoroModelConfig.",
	}
}
