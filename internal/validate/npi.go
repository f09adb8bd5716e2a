package validate

// npiPrefixChecksum is the Luhn contribution of the fixed "80840" card
// issuer prefix that precedes every NPI in the full identifier.
const npiPrefixChecksum = 24

// ValidNPI reports whether npi is a well-formed National Provider
// Identifier: exactly 10 digits whose last digit satisfies the Luhn
// check computed over the 80840-prefixed number.
func ValidNPI(npi string) bool {
	if len(npi) != 10 {
		return false
	}
	for i := 0; i < len(npi); i++ {
		if npi[i] < '0' || npi[i] > '9' {
			return false
		}
	}

	sum := npiPrefixChecksum
	double := true
	for i := 8; i >= 0; i-- {
		d := int(npi[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}

	check := (10 - sum%10) % 10
	return check == int(npi[9]-'0')
}
