package models

import "strings"

// AgeBand is a coarse age category accepted in user preferences.
type AgeBand string

const (
	AgeBaby   AgeBand = "b"
	AgeYoung  AgeBand = "y"
	AgeAdult  AgeBand = "a"
	AgeSenior AgeBand = "s"
)

// Gender codes. Dogs may be GenderUnknown; preferences only accept male/female.
type Gender string

const (
	GenderMale    Gender = "m"
	GenderFemale  Gender = "f"
	GenderUnknown Gender = "u"
)

// Size codes. As with Gender, SizeUnknown exists only on dogs.
type Size string

const (
	SizeSmall      Size = "s"
	SizeMedium     Size = "m"
	SizeLarge      Size = "l"
	SizeExtraLarge Size = "xl"
	SizeUnknown    Size = "u"
)

var (
	AllAgeBands = []AgeBand{AgeBaby, AgeYoung, AgeAdult, AgeSenior}
	AllGenders  = []Gender{GenderMale, GenderFemale}
	AllSizes    = []Size{SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge}
)

// ParseGender maps a dog gender code (or its long name) to a Gender,
// returning GenderUnknown for anything unrecognized.
func ParseGender(raw string) Gender {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "m", "male":
		return GenderMale
	case "f", "female":
		return GenderFemale
	default:
		return GenderUnknown
	}
}

// ParseSize maps a dog size code (or its long name) to a Size,
// returning SizeUnknown for anything unrecognized.
func ParseSize(raw string) Size {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), "-", " ")) {
	case "s", "small":
		return SizeSmall
	case "m", "medium":
		return SizeMedium
	case "l", "large":
		return SizeLarge
	case "xl", "extra large":
		return SizeExtraLarge
	default:
		return SizeUnknown
	}
}
