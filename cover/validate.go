package cover

import "fmt"

// Validate checks the whole problem description and returns the first
// violation found, wrapped around the matching sentinel error.
//
// Checks performed (in order):
//  1. Every item and color name is non-empty and free of ':'.
//  2. No name is declared twice; primary and secondary items share a
//     single namespace, colors have their own.
//  3. Every primary multiplicity satisfies 1 ≤ U ≤ V.
//  4. Every option reference names a declared item; colored references
//     name a declared secondary item and a declared color.
//
// A nil error means the problem is well-formed; it says nothing about
// solvability.
func (p *Problem) Validate() error {
	// 1+2) Name hygiene and duplicate detection across both item lists.
	items := make(map[string]bool, len(p.Primary)+len(p.Secondary)) // name → isSecondary
	for _, it := range p.Primary {
		if err := checkName(it.Name); err != nil {
			return err
		}
		if _, dup := items[it.Name]; dup {
			return fmt.Errorf("%w: item %q", ErrDuplicateName, it.Name)
		}
		// 3) Multiplicity interval.
		if it.U < 1 || it.U > it.V {
			return fmt.Errorf("%w: item %q has u=%d v=%d", ErrBadMultiplicity, it.Name, it.U, it.V)
		}
		items[it.Name] = false
	}
	for _, name := range p.Secondary {
		if err := checkName(name); err != nil {
			return err
		}
		if _, dup := items[name]; dup {
			return fmt.Errorf("%w: item %q", ErrDuplicateName, name)
		}
		items[name] = true
	}

	colors := make(map[string]struct{}, len(p.Colors))
	for _, name := range p.Colors {
		if err := checkName(name); err != nil {
			return err
		}
		if _, dup := colors[name]; dup {
			return fmt.Errorf("%w: color %q", ErrDuplicateName, name)
		}
		colors[name] = struct{}{}
	}

	// 4) Every option reference resolves.
	for idx, opt := range p.Options {
		for _, ref := range opt {
			item, color := SplitRef(ref)
			secondary, ok := items[item]
			if !ok {
				return fmt.Errorf("%w: option %d references %q", ErrUnknownItem, idx, ref)
			}
			if color == "" {
				continue
			}
			if !secondary {
				return fmt.Errorf("%w: option %d references %q", ErrColorOnPrimary, idx, ref)
			}
			if _, ok = colors[color]; !ok {
				return fmt.Errorf("%w: option %d references %q", ErrUnknownColor, idx, ref)
			}
		}
	}

	return nil
}

// checkName enforces the shared naming rules for items and colors.
func checkName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	for i := 0; i < len(name); i++ {
		if name[i] == ':' {
			return fmt.Errorf("%w: %q", ErrReservedChar, name)
		}
	}

	return nil
}
