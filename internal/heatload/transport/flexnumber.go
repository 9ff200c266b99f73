package transport

import (
	"encoding/json"
	"strings"

	"heatload_backend/internal/heatload/calc"
)

// FlexNumber is a float64 that unmarshals from a JSON number or a string.
// String values tolerate comma decimals and thousands separators because the
// wizard historically submitted raw text-field contents from German-locale
// browsers. Anything unparseable decodes to 0 rather than failing the whole
// request; the calculators treat 0 as "unset" throughout.
type FlexNumber float64

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = 0
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, _ := calc.ParseLocaleFloat(s)
		*f = FlexNumber(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	*f = FlexNumber(v)
	return nil
}

func (f FlexNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(f))
}

// Float returns the plain float64 value.
func (f FlexNumber) Float() float64 {
	return float64(f)
}

// floatOrZero dereferences an optional FlexNumber.
func floatOrZero(f *FlexNumber) float64 {
	if f == nil {
		return 0
	}
	return float64(*f)
}

// firstSet returns the first candidate that resolves to a non-zero value.
// Zero means "unset" throughout the payloads, so a newer field sent as 0
// next to an older non-zero alias must not shadow it.
func firstSet(candidates ...*FlexNumber) (float64, bool) {
	for _, c := range candidates {
		if c != nil && *c != 0 {
			return float64(*c), true
		}
	}
	return 0, false
}
