package diffcolors

// Registrar is the external colormap registry RegisterAll feeds. The cmap
// subpackage's Registry satisfies it.
type Registrar interface {
	Register(spec GradientSpec) error
}

// RegisterAll builds a gradient spec for every brand color except the white
// anchor, one per requested variant, and hands each to reg under its
// generated "diff_<Name>_<variant>" name. Colors are visited in sorted name
// order. No variants means all three.
//
// The first error, whether from spec assembly or from reg, aborts the loop
// and is returned unchanged.
func RegisterAll(reg Registrar, variants ...Variant) error {
	if len(variants) == 0 {
		variants = Variants()
	}
	for _, name := range Names() {
		if name == lightAnchor {
			// a white base only yields degenerate white-on-white ramps
			continue
		}
		for _, v := range variants {
			spec, err := Gradient(name, v, 0, "", false)
			if err != nil {
				return err
			}
			if err := reg.Register(spec); err != nil {
				return err
			}
		}
	}
	return nil
}
