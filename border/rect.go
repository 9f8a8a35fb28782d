package border

import "github.com/tawesoft/cssbox/printer"

func writeSpace(p printer.Printer) error {
	return p.WriteChar(' ')
}

// Serialize writes r using the CSS 1-4 value rect shorthand: left is
// dropped first if it mirrors right, then bottom if it mirrors top, then
// right itself if it also mirrors top — the same three-step collapse the
// source's ToCss applies to top/right/bottom/left.
func (r WidthRect) Serialize(p printer.Printer) error {
	if err := r.Top.Serialize(p); err != nil {
		return err
	}
	if r.Right != r.Left {
		if err := writeSpace(p); err != nil {
			return err
		}
		if err := r.Right.Serialize(p); err != nil {
			return err
		}
		if err := writeSpace(p); err != nil {
			return err
		}
		if err := r.Bottom.Serialize(p); err != nil {
			return err
		}
		if err := writeSpace(p); err != nil {
			return err
		}
		return r.Left.Serialize(p)
	}
	if r.Bottom != r.Top {
		if err := writeSpace(p); err != nil {
			return err
		}
		if err := r.Right.Serialize(p); err != nil {
			return err
		}
		if err := writeSpace(p); err != nil {
			return err
		}
		return r.Bottom.Serialize(p)
	}
	if r.Right != r.Top {
		if err := writeSpace(p); err != nil {
			return err
		}
		return r.Right.Serialize(p)
	}
	return nil
}

// Serialize is WidthRect.Serialize's twin for border-style.
func (r StyleRect) Serialize(p printer.Printer) error {
	if err := r.Top.Serialize(p); err != nil {
		return err
	}
	if r.Right != r.Left {
		if err := writeSpace(p); err != nil {
			return err
		}
		if err := r.Right.Serialize(p); err != nil {
			return err
		}
		if err := writeSpace(p); err != nil {
			return err
		}
		if err := r.Bottom.Serialize(p); err != nil {
			return err
		}
		if err := writeSpace(p); err != nil {
			return err
		}
		return r.Left.Serialize(p)
	}
	if r.Bottom != r.Top {
		if err := writeSpace(p); err != nil {
			return err
		}
		if err := r.Right.Serialize(p); err != nil {
			return err
		}
		if err := writeSpace(p); err != nil {
			return err
		}
		return r.Bottom.Serialize(p)
	}
	if r.Right != r.Top {
		if err := writeSpace(p); err != nil {
			return err
		}
		return r.Right.Serialize(p)
	}
	return nil
}

// Serialize is WidthRect.Serialize's twin for border-color.
func (r ColorRect) Serialize(p printer.Printer) error {
	if err := r.Top.Serialize(p); err != nil {
		return err
	}
	if !r.Right.Equal(r.Left) {
		if err := writeSpace(p); err != nil {
			return err
		}
		if err := r.Right.Serialize(p); err != nil {
			return err
		}
		if err := writeSpace(p); err != nil {
			return err
		}
		if err := r.Bottom.Serialize(p); err != nil {
			return err
		}
		if err := writeSpace(p); err != nil {
			return err
		}
		return r.Left.Serialize(p)
	}
	if !r.Bottom.Equal(r.Top) {
		if err := writeSpace(p); err != nil {
			return err
		}
		if err := r.Right.Serialize(p); err != nil {
			return err
		}
		if err := writeSpace(p); err != nil {
			return err
		}
		return r.Bottom.Serialize(p)
	}
	if !r.Right.Equal(r.Top) {
		if err := writeSpace(p); err != nil {
			return err
		}
		return r.Right.Serialize(p)
	}
	return nil
}

// Serialize writes p as "start" if both ends match, else "start end".
func (wp WidthPair) Serialize(p printer.Printer) error {
	if err := wp.Start.Serialize(p); err != nil {
		return err
	}
	if wp.Start == wp.End {
		return nil
	}
	if err := writeSpace(p); err != nil {
		return err
	}
	return wp.End.Serialize(p)
}

// Serialize is WidthPair.Serialize's twin for the axis border-*-style
// shorthands.
func (sp StylePair) Serialize(p printer.Printer) error {
	if err := sp.Start.Serialize(p); err != nil {
		return err
	}
	if sp.Start == sp.End {
		return nil
	}
	if err := writeSpace(p); err != nil {
		return err
	}
	return sp.End.Serialize(p)
}

// Serialize is WidthPair.Serialize's twin for the axis border-*-color
// shorthands.
func (cp ColorPair) Serialize(p printer.Printer) error {
	if err := cp.Start.Serialize(p); err != nil {
		return err
	}
	if cp.Start.Equal(cp.End) {
		return nil
	}
	if err := writeSpace(p); err != nil {
		return err
	}
	return cp.End.Serialize(p)
}
