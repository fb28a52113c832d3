package recordgen

import "strings"

// Region selects the locale used to format names, addresses and phones.
type Region int

const (
	RegionDefault Region = iota
	RegionEN
	RegionDE
	RegionPL
	RegionBY
)

// Regions lists every supported region, default last.
var Regions = []Region{RegionEN, RegionDE, RegionPL, RegionBY, RegionDefault}

// ParseRegion maps a wire code to a Region. Unknown or empty codes fall back
// to RegionDefault; this never fails.
func ParseRegion(code string) Region {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "en":
		return RegionEN
	case "de":
		return RegionDE
	case "pl":
		return RegionPL
	case "by":
		return RegionBY
	default:
		return RegionDefault
	}
}

// Code returns the wire code of the region ("" for the default).
func (r Region) Code() string {
	switch r {
	case RegionEN:
		return "en"
	case RegionDE:
		return "de"
	case RegionPL:
		return "pl"
	case RegionBY:
		return "by"
	default:
		return ""
	}
}

// Label is the human readable name shown in region selectors.
func (r Region) Label() string {
	switch r {
	case RegionEN:
		return "English"
	case RegionDE:
		return "Deutsch"
	case RegionPL:
		return "Polski"
	case RegionBY:
		return "Беларуская"
	default:
		return "Generic"
	}
}

// PhoneRegion is the ISO 3166 code used when parsing phone numbers.
func (r Region) PhoneRegion() string {
	switch r {
	case RegionEN:
		return "US"
	case RegionDE:
		return "DE"
	case RegionPL:
		return "PL"
	case RegionBY:
		return "BY"
	default:
		return ""
	}
}

func (r Region) String() string {
	if r == RegionDefault {
		return "default"
	}
	return r.Code()
}
