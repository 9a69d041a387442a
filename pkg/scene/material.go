package scene

// MaterialKind identifies how a material is shaded by the host engine.
type MaterialKind int

const (
	// MaterialUnknown is any material kind this layer cannot interpret.
	MaterialUnknown MaterialKind = iota
	// MaterialStandard is a physically-based lit material.
	MaterialStandard
	// MaterialUnlit is a flat-shaded material.
	MaterialUnlit
	// MaterialTextured is a lit material sampling a texture.
	MaterialTextured
)

// RGBA is a color with straight (non-premultiplied) alpha, each channel
// in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Material is a value-type description of a surface. Copies are
// independent: mutating a copy never affects the source material.
type Material struct {
	Kind    MaterialKind
	Color   RGBA
	Texture string // Engine resource name, empty when untextured
}

// White returns an opaque white color.
func White() RGBA {
	return RGBA{R: 1, G: 1, B: 1, A: 1}
}
