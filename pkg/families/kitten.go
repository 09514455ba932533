package families

// KittenDescriptor covers KittenTTS models. fp16 is preferred over int8.
func KittenDescriptor() Descriptor {
	return Descriptor{
		Family:      Kitten,
		Keyword:     "kitten",
		Required:    []string{TokensFile, VoicesFile},
		Primary:     PickFirst("model.fp16.onnx", "model.onnx", "model.int8.onnx"),
		Variants:    single,
		Description: "Kitten TTS via sherpa-onnx OfflineTtsKittenModelConfig.",
	}
}
