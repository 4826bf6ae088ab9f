package relay

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Candidate is an image-looking string discovered somewhere in the upstream
// response. Path is a dot/bracket breadcrumb locating the string in the
// document, used only for diagnostics.
type Candidate struct {
	Value string
	Path  string
}

// CollectCandidates walks a JSON document depth-first and returns every string
// leaf that classifies as an image reference, in encounter order. The decoder
// is driven token by token so objects are visited in document key order and
// arrays in index order; non-string scalars are skipped. The upstream shape is
// deliberately treated as unknown: models return image data under whatever key
// they like.
func CollectCandidates(r io.Reader) ([]Candidate, error) {
	dec := json.NewDecoder(r)
	var results []Candidate
	if err := collectValue(dec, nil, &results); err != nil {
		return nil, fmt.Errorf("relay: scan response: %w", err)
	}
	return results, nil
}

func collectValue(dec *json.Decoder, path []string, results *[]Candidate) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return err
				}
				key, ok := keyTok.(string)
				if !ok {
					return fmt.Errorf("unexpected object key token %v", keyTok)
				}
				if err := collectValue(dec, append(path, key), results); err != nil {
					return err
				}
			}
			_, err := dec.Token() // consume '}'
			return err
		case '[':
			for i := 0; dec.More(); i++ {
				if err := collectValue(dec, append(path, fmt.Sprintf("[%d]", i)), results); err != nil {
					return err
				}
			}
			_, err := dec.Token() // consume ']'
			return err
		}
	case string:
		if normalized := NormalizeCandidate(t); normalized != "" {
			*results = append(*results, Candidate{Value: normalized, Path: breadcrumb(path)})
		}
	}
	// numbers, booleans and nulls carry no image data
	return nil
}

func breadcrumb(path []string) string {
	if len(path) == 0 {
		return "(root)"
	}
	return strings.Join(path, ".")
}
