package models

// Loom is the user's chosen visual theme preference.
type Loom string

const (
	LoomNone     Loom = "none"
	LoomStudy    Loom = "study"
	LoomGym      Loom = "gym"
	LoomChill    Loom = "chill"
	LoomCreative Loom = "creative"
	LoomFocus    Loom = "focus"
)

// Looms lists every valid loom value.
var Looms = []Loom{LoomNone, LoomStudy, LoomGym, LoomChill, LoomCreative, LoomFocus}

// NormalizeLoom coerces any unrecognized value to LoomNone. Invalid input is
// intentionally not an error; the profile silently falls back to the default
// theme.
func NormalizeLoom(v string) Loom {
	for _, l := range Looms {
		if Loom(v) == l {
			return l
		}
	}
	return LoomNone
}
