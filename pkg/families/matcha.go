package families

// MatchaDescriptor covers Matcha acoustic models. Each repository yields one
// entry per supported vocoder.
func MatchaDescriptor() Descriptor {
	return Descriptor{
		Family:    Matcha,
		Keyword:   "matcha",
		Signature: matchaStep,
		Required:  []string{TokensFile},
		Primary:   PickMatchaAcoustic,
		Variants: []Variant{
			{Suffix: "-hifigan", Label: "HiFiGAN", Vocoder: HiFiGAN},
			{Suffix: "-vocos", Label: "Vocos", Vocoder: Vocos},
		},
		Description: "Matcha acoustic model via sherpa-onnx OfflineTtsMatchaModelConfig.",
	}
}
