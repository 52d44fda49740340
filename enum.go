package sukuk

import "encoding/json"

// decodeEnum reads a JSON string into a string-backed enum. Known values are
// normalised by parse, so "Active" reads as StatusActive; unknown values are
// kept as written and match no rule.
func decodeEnum[T ~string](b []byte, parse func(string) (T, error)) (T, error) {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return "", err
	}
	if v, err := parse(raw); err == nil {
		return v, nil
	}
	return T(raw), nil
}

// isKnown reports whether v is exactly one of the values parse recognises.
func isKnown[T ~string](v T, parse func(string) (T, error)) bool {
	p, err := parse(string(v))
	return err == nil && p == v
}
