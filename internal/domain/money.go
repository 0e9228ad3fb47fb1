package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents is a monetary amount in integer cents. Amounts may be negative:
// a balance due goes below zero when the deposit exceeds the final cost,
// and that is intentionally not clamped.
type Cents int64

// BalanceDue returns finalCost minus deposit. No rounding, no clamping.
func BalanceDue(finalCost, deposit Cents) Cents {
	return finalCost - deposit
}

// ParseAmount parses user-supplied text as a decimal currency amount.
// Dot and comma decimal separators are accepted; the third decimal digit
// rounds half-up. Anything that does not parse as a number yields 0 —
// numeric form fields default to zero on bad input rather than failing.
func ParseAmount(raw string) Cents {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", ".")
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	} else {
		s = strings.TrimPrefix(s, "+")
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" && fracPart == "" {
		return 0
	}
	if intPart == "" {
		intPart = "0"
	}
	units, err := strconv.ParseUint(intPart, 10, 64)
	if err != nil {
		return 0
	}
	const maxSafe = (1<<63 - 1) / 100
	if units > maxSafe {
		return 0
	}
	var fracCents int64
	if fracPart != "" {
		for _, r := range fracPart {
			if r < '0' || r > '9' {
				return 0
			}
		}
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	cents := int64(units)*100 + fracCents
	if negative {
		cents = -cents
	}
	return Cents(cents)
}

// ParseCount parses user-supplied text as a non-negative whole number,
// defaulting to 0 when it does not parse.
func ParseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// String formats the amount with two decimal places, e.g. "1700.00" or "-0.50".
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON renders the amount as a JSON number with two decimals.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepts either a JSON number or a quoted decimal string.
// Malformed values decode to 0, matching ParseAmount.
func (c *Cents) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" {
		*c = 0
		return nil
	}
	*c = ParseAmount(s)
	return nil
}
