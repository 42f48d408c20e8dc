package classify

// Test2Classifiers is the trained 16-classifier bank for the "Test2"
// reference algorithm (trained on 60k pairs of eMusic mp3 samples in the
// upstream project this was ported from). The filter descriptors and
// quantizer thresholds are data, not tunable at runtime.
var Test2Classifiers = []Classifier{
	{Filter{F0, 4, 3, 15}, Quantizer{1.98215, 2.35817, 2.63523}},
	{Filter{F4, 4, 6, 15}, Quantizer{-1.03809, -0.651211, -0.282167}},
	{Filter{F1, 0, 4, 16}, Quantizer{-0.298702, 0.119262, 0.558497}},
	{Filter{F3, 8, 2, 12}, Quantizer{-0.105439, 0.0153946, 0.135898}},
	{Filter{F3, 4, 4, 8}, Quantizer{-0.142891, 0.0258736, 0.200632}},
	{Filter{F4, 0, 3, 5}, Quantizer{-0.826319, -0.590612, -0.368214}},
	{Filter{F1, 2, 2, 9}, Quantizer{-0.557409, -0.233035, 0.0534525}},
	{Filter{F2, 7, 3, 4}, Quantizer{-0.0646826, 0.00620476, 0.0784847}},
	{Filter{F2, 6, 2, 16}, Quantizer{-0.192387, -0.029699, 0.215855}},
	{Filter{F2, 1, 3, 2}, Quantizer{-0.0397818, -0.00568076, 0.0292026}},
	{Filter{F5, 10, 1, 15}, Quantizer{-0.53823, -0.369934, -0.190235}},
	{Filter{F3, 6, 2, 10}, Quantizer{-0.124877, 0.0296483, 0.139239}},
	{Filter{F2, 1, 1, 14}, Quantizer{-0.101475, 0.0225617, 0.231971}},
	{Filter{F3, 5, 6, 4}, Quantizer{-0.0799915, -0.00729616, 0.063262}},
	{Filter{F1, 9, 2, 12}, Quantizer{-0.272556, 0.019424, 0.302559}},
	{Filter{F3, 4, 2, 14}, Quantizer{-0.164292, -0.0321188, 0.0846339}},
}

// Test2MaxFilterWidth is the widest temporal extent among Test2Classifiers.
const Test2MaxFilterWidth = 16
