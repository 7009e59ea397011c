package extract

import "encoding/json"

// IExtractor recovers a single JSON object from free model text.
type IExtractor interface {
	// Extract returns the JSON object bytes found in raw.
	Extract(raw string) ([]byte, error)
}

// New returns the fence trimming extractor with a first "{" to last "}" fallback.
func New() IExtractor {
	return fenceExtractor{}
}

// NewScanner returns an extractor that decodes the first complete JSON object in the text.
// It tolerates trailing prose that itself contains braces.
func NewScanner() IExtractor {
	return scanExtractor{}
}

// ByName picks an extractor from configuration. Unknown names fall back to New.
func ByName(name string) IExtractor {
	if name == NameScanner {
		return NewScanner()
	}
	return New()
}

// Decode extracts the JSON object from raw with ex and unmarshals it into v.
func Decode(ex IExtractor, raw string, v any) error {
	payload, err := ex.Extract(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return &MalformedError{Raw: raw, Err: err}
	}
	return nil
}
