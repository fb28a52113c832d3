package recordgen

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

// Formatter produces locale-shaped personal data. Every draw comes from the
// supplied faker so output is reproducible for a given seed.
type Formatter interface {
	Name(f *gofakeit.Faker) string
	Address(f *gofakeit.Faker) string
	Phone(f *gofakeit.Faker) string
}

// FormatterFor returns the formatter for region.
func FormatterFor(region Region) Formatter {
	switch region {
	case RegionEN:
		return englishFormatter{}
	case RegionDE:
		return germanFormatter{}
	case RegionPL:
		return polishFormatter{}
	case RegionBY:
		return belarusianFormatter{}
	case RegionDefault:
		return genericFormatter{}
	default:
		return genericFormatter{}
	}
}

// FormatName returns a random full name for region.
func FormatName(f *gofakeit.Faker, region Region) string {
	return FormatterFor(region).Name(f)
}

// FormatAddress returns a random address for region.
func FormatAddress(f *gofakeit.Faker, region Region) string {
	return FormatterFor(region).Address(f)
}

// FormatPhone returns a random phone number for region.
func FormatPhone(f *gofakeit.Faker, region Region) string {
	return FormatterFor(region).Phone(f)
}

// genericFormatter is used for the default region.
type genericFormatter struct{}

func (genericFormatter) Name(f *gofakeit.Faker) string {
	return f.FirstName() + " " + f.LastName()
}

func (genericFormatter) Address(f *gofakeit.Faker) string {
	return f.Street() + ", " + f.City()
}

func (genericFormatter) Phone(f *gofakeit.Faker) string {
	return f.PhoneFormatted()
}

type englishFormatter struct{}

func (englishFormatter) Name(f *gofakeit.Faker) string {
	return f.FirstName() + " " + f.LastName()
}

func (englishFormatter) Address(f *gofakeit.Faker) string {
	switch f.Rand.Intn(2) {
	case 0:
		return fmt.Sprintf("%s, %s %s, %s", f.City(), f.StateAbr(), f.Zip(), f.Street())
	default:
		return fmt.Sprintf("%s, %s, %s", f.City(), f.Zip(), secondaryAddress(f))
	}
}

func (englishFormatter) Phone(f *gofakeit.Faker) string {
	// NXX-NXX-XXXX: area code and exchange never start with 0 or 1.
	raw := fmt.Sprintf("%d%s%d%s", f.Number(2, 9), f.Numerify("##"), f.Number(2, 9), f.Numerify("######"))
	return formatPhoneNumber(raw, RegionEN)
}

func secondaryAddress(f *gofakeit.Faker) string {
	return f.RandomString([]string{"Apt.", "Suite"}) + " " + f.Numerify("###")
}

type germanFormatter struct{}

func (germanFormatter) Name(f *gofakeit.Faker) string {
	return f.RandomString(deFirstNames) + " " + f.RandomString(deLastNames)
}

func (germanFormatter) Address(f *gofakeit.Faker) string {
	var street string
	switch f.Rand.Intn(2) {
	case 0:
		street = f.RandomString(deStreetRoots) + f.RandomString(deStreetSuffixes)
	default:
		street = f.RandomString(dePlaceNames)
	}
	return fmt.Sprintf("%s, %s, %s %d", f.RandomString(deCities), f.Numerify("#####"), street, f.Number(1, 100))
}

func (germanFormatter) Phone(f *gofakeit.Faker) string {
	raw := "0" + f.RandomString(deAreaCodes) + " " + fmt.Sprintf("%d", f.Number(2, 9)) + f.Numerify("######")
	return formatPhoneNumber(raw, RegionDE)
}

type polishFormatter struct{}

func (polishFormatter) Name(f *gofakeit.Faker) string {
	pair := plLastNames[f.Rand.Intn(len(plLastNames))]
	if f.Rand.Intn(2) == 0 {
		return f.RandomString(plMaleFirstNames) + " " + pair[0]
	}
	return f.RandomString(plFemaleFirstNames) + " " + pair[1]
}

func (polishFormatter) Address(f *gofakeit.Faker) string {
	city := f.RandomString(plCities)
	zip := f.Numerify("##-###")
	street := f.RandomString(plStreets)
	building := f.Number(1, 100)

	switch f.Rand.Intn(2) {
	case 0:
		return fmt.Sprintf("%s, %s, %s %d", city, zip, street, building)
	default:
		return fmt.Sprintf("%s, %s, ul. %s %d/%d", city, zip, street, building, f.Number(1, 500))
	}
}

func (polishFormatter) Phone(f *gofakeit.Faker) string {
	raw := f.RandomString(plMobilePrefixes) + f.Numerify("#######")
	return formatPhoneNumber(raw, RegionPL)
}

type belarusianFormatter struct{}

func (belarusianFormatter) Name(f *gofakeit.Faker) string {
	pair := byLastNames[f.Rand.Intn(len(byLastNames))]
	if f.Rand.Intn(2) == 0 {
		return f.RandomString(byMaleFirstNames) + " " + pair[0]
	}
	return f.RandomString(byFemaleFirstNames) + " " + pair[1]
}

func (belarusianFormatter) Address(f *gofakeit.Faker) string {
	switch f.Rand.Intn(4) {
	case 0:
		return fmt.Sprintf("г. %s, ул. %s, д. %d, кв. %d",
			f.RandomString(byCities), f.RandomString(byStreets), f.Number(1, 100), f.Number(1, 500))
	case 1:
		return fmt.Sprintf("г. %s, ул. %s, д. %d",
			f.RandomString(byCities), f.RandomString(byStreets), f.Number(1, 100))
	case 2:
		return fmt.Sprintf("%s, г. %s, пр-т %s, д. %d, кв. %d",
			f.Numerify("2#####"), f.RandomString(byCities), f.RandomString(byStreets), f.Number(1, 100), f.Number(1, 500))
	default:
		return fmt.Sprintf("%s обл., д. %s, ул. %s, д. %d",
			f.RandomString(byOblasts), f.RandomString(byVillages), f.RandomString(byStreets), f.Number(1, 100))
	}
}

func (belarusianFormatter) Phone(f *gofakeit.Faker) string {
	raw := "+375" + f.RandomString(byOperatorCodes) + fmt.Sprintf("%d", f.Number(1, 9)) + f.Numerify("######")
	return formatPhoneNumber(raw, RegionBY)
}
