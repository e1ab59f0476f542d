package torus

// BlurKernel is the 13-tap separable Gaussian used by the bloom pipeline.
// Symmetric and normalized: the taps sum to 1, so convolving a flat buffer
// neither brightens nor darkens it.
var BlurKernel = [13]float32{
	0.002406, 0.009255, 0.027867, 0.065666, 0.121117, 0.174868, 0.197641,
	0.174868, 0.121117, 0.065666, 0.027867, 0.009255, 0.002406,
}

// BlurKernelRadius is the tap offset range: taps sample at
// center + i/dimension for i in [-BlurKernelRadius, BlurKernelRadius].
const BlurKernelRadius = len(BlurKernel) / 2
