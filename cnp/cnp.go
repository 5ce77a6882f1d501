// Package cnp decodes the Romanian personal numeric code (CNP): a 13-digit
// identifier carrying sex, birth date and issuing county.
package cnp

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalid is returned for anything that is not a decodable 13-digit CNP.
// Callers treat it as "field absent", never as a fatal condition.
var ErrInvalid = errors.New("invalid cnp")

// countyNames maps CNP county codes (digits 8-9) to county names.
// 01-39 counties, 40-46 Bucharest + sectors, 51/52 late additions.
var countyNames = map[string]string{
	"01": "Alba", "02": "Arad", "03": "Arges", "04": "Bacau", "05": "Bihor",
	"06": "Bistrita-Nasaud", "07": "Botosani", "08": "Brasov", "09": "Braila",
	"10": "Buzau", "11": "Caras-Severin", "12": "Cluj", "13": "Constanta",
	"14": "Covasna", "15": "Dambovita", "16": "Dolj", "17": "Galati",
	"18": "Gorj", "19": "Harghita", "20": "Hunedoara", "21": "Ialomita",
	"22": "Iasi", "23": "Ilfov", "24": "Maramures", "25": "Mehedinti",
	"26": "Mures", "27": "Neamt", "28": "Olt", "29": "Prahova", "30": "Satu Mare",
	"31": "Salaj", "32": "Sibiu", "33": "Suceava", "34": "Teleorman",
	"35": "Timis", "36": "Tulcea", "37": "Vaslui", "38": "Valcea", "39": "Vrancea",
	"40": "Bucuresti", "41": "Bucuresti S1", "42": "Bucuresti S2",
	"43": "Bucuresti S3", "44": "Bucuresti S4", "45": "Bucuresti S5",
	"46": "Bucuresti S6", "51": "Calarasi", "52": "Giurgiu",
}

// Info is the decoded content of a CNP.
type Info struct {
	Sex        string // "M" or "F"
	BirthYear  int
	BirthMonth int
	BirthDay   int
	CountyCode string
	// CountyName is empty when the county code is not in the known table;
	// the rest of the decode is still valid.
	CountyName string
}

// Clean normalizes a raw cell value to a 13-digit string. Spreadsheet float
// storage produces artifacts like "1850512054675.0" which are stripped here.
// Returns false for anything that does not end up as exactly 13 digits.
func Clean(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, ".0")
	if len(s) != 13 {
		return "", false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return s, true
}

// Decode parses a candidate CNP. It never panics: every malformed input
// yields ErrInvalid.
func Decode(raw string) (*Info, error) {
	s, ok := Clean(raw)
	if !ok {
		return nil, ErrInvalid
	}

	digits := make([]int, 13)
	for i, r := range s {
		digits[i] = int(r - '0')
	}

	var century int
	switch digits[0] {
	case 1, 2:
		century = 1900
	case 3, 4:
		century = 1800
	case 5, 6:
		century = 2000
	case 7, 8, 9:
		// Foreign residents: birth century is not encoded, 1900 is the
		// conventional approximation.
		century = 1900
	default:
		return nil, ErrInvalid
	}

	// Digit 9 (foreign residents) is not part of the odd/even sex encoding
	// and decodes as F.
	sex := "F"
	switch digits[0] {
	case 1, 3, 5, 7:
		sex = "M"
	}

	year := century + digits[1]*10 + digits[2]
	month := digits[3]*10 + digits[4]
	day := digits[5]*10 + digits[6]

	if !validDate(year, month, day) {
		return nil, ErrInvalid
	}

	code := s[7:9]

	return &Info{
		Sex:        sex,
		BirthYear:  year,
		BirthMonth: month,
		BirthDay:   day,
		CountyCode: code,
		CountyName: countyNames[code],
	}, nil
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Year() == year && int(t.Month()) == month && t.Day() == day
}
