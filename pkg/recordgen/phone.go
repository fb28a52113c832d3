package recordgen

import "github.com/nyaruka/phonenumbers"

// formatPhoneNumber renders raw in the international display form of region.
// A number the parser rejects is returned as-is.
func formatPhoneNumber(raw string, region Region) string {
	num, err := phonenumbers.Parse(raw, region.PhoneRegion())
	if err != nil {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}
