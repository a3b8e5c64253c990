package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

const (
	// StoreScale is the number of fractional digits kept by the observation store.
	StoreScale = 6
	// StorePrecision is the total number of digits kept by the observation store.
	StorePrecision = 20
)

// Decimal is a fixed-point observation value. It is never converted to float.
type Decimal struct {
	value apd.Decimal
}

// ParseDecimal parses s as a finite decimal number.
func ParseDecimal(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Decimal{}, fmt.Errorf("invalid decimal: empty")
	}
	var d apd.Decimal
	if _, _, err := d.SetString(s); err != nil {
		return Decimal{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	if d.Form != apd.Finite {
		return Decimal{}, fmt.Errorf("invalid decimal %q: not finite", s)
	}
	return Decimal{value: d}, nil
}

// MustDecimal parses s and panics on error. Intended for tests and constants.
func MustDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt64 returns i as a Decimal.
func NewDecimalFromInt64(i int64) Decimal {
	var d apd.Decimal
	d.SetInt64(i)
	return Decimal{value: d}
}

func (d Decimal) String() string {
	return d.value.Text('f')
}

func (d Decimal) IsZero() bool {
	return d.value.IsZero()
}

// Cmp compares numerically: -1, 0 or +1.
func (d Decimal) Cmp(other Decimal) int {
	return d.value.Cmp(&other.value)
}

// Equal reports numeric equality ("1.50" equals "1.5").
func (d Decimal) Equal(other Decimal) bool {
	return d.Cmp(other) == 0
}

// Scale returns the number of significant fractional digits, ignoring trailing zeros.
func (d Decimal) Scale() int {
	var reduced apd.Decimal
	reduced.Reduce(&d.value)
	if reduced.Exponent >= 0 {
		return 0
	}
	return int(-reduced.Exponent)
}

// IntegerDigits returns the number of digits left of the decimal point.
func (d Decimal) IntegerDigits() int {
	var reduced apd.Decimal
	reduced.Reduce(&d.value)
	n := int(reduced.NumDigits()) + int(reduced.Exponent)
	if n < 0 {
		return 0
	}
	return n
}

// CheckPrecision verifies d fits the store (NUMERIC(20,6)) and has at most
// decimals fractional digits.
func (d Decimal) CheckPrecision(decimals int) error {
	if decimals > StoreScale {
		decimals = StoreScale
	}
	if scale := d.Scale(); scale > decimals {
		return fmt.Errorf("value %s has %d fractional digits, max %d", d, scale, decimals)
	}
	if d.IntegerDigits() > StorePrecision-StoreScale {
		return fmt.Errorf("value %s exceeds %d integer digits", d, StorePrecision-StoreScale)
	}
	return nil
}

// Value implements driver.Valuer. The value is sent as text and cast to NUMERIC by SQL.
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner for NUMERIC columns selected as text.
func (d *Decimal) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case nil:
		return fmt.Errorf("decimal: cannot scan NULL")
	default:
		return fmt.Errorf("decimal: cannot scan %T", src)
	}
	parsed, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON encodes the value as a JSON string to keep every digit.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts a JSON string or number.
func (d *Decimal) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
