package colorspace

import "math"

const (
	White = "#FFFFFF"
	Black = "#000000"
)

// RelativeLuminance returns the WCAG 2.0 relative luminance of hex in [0,1].
func RelativeLuminance(hex string) (float64, error) {
	c, err := HexToRGB(hex)
	if err != nil {
		return 0, err
	}
	return luminance(c), nil
}

func luminance(c RGB) float64 {
	r := linearize(c.R)
	g := linearize(c.G)
	b := linearize(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func linearize(v uint8) float64 {
	f := float64(v) / 255
	if f <= 0.03928 {
		return f / 12.92
	}
	return math.Pow((f+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between a and b, in [1,21].
// The result does not depend on argument order.
func ContrastRatio(a, b string) (float64, error) {
	la, err := RelativeLuminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := RelativeLuminance(b)
	if err != nil {
		return 0, err
	}
	return ratio(la, lb), nil
}

func ratio(la, lb float64) float64 {
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// StrictTextColor picks pure white or pure black, whichever contrasts more
// with bg. Equal ratios resolve to white.
func StrictTextColor(bg string) (string, error) {
	c, err := HexToRGB(bg)
	if err != nil {
		return "", err
	}
	l := luminance(c)
	if ratio(l, 1) >= ratio(l, 0) {
		return White, nil
	}
	return Black, nil
}

// IsLight reports whether hex has relative luminance above 0.5.
func IsLight(hex string) (bool, error) {
	l, err := RelativeLuminance(hex)
	if err != nil {
		return false, err
	}
	return l > 0.5, nil
}
