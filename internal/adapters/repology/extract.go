package repology

import (
	"bytes"
	"encoding/json"

	"github.com/crossgrade/crossgrade/internal/core/domain"
)

// packageRecord is the subset of a package entry the extractor reads.
// Unknown fields are ignored so additive API changes stay harmless.
type packageRecord struct {
	Repo        string `json:"repo"`
	BinName     string `json:"binname"`
	SrcName     string `json:"srcname"`
	VisibleName string `json:"visiblename"`
}

// extractSearch pulls candidates from a project search response: a JSON
// object keyed by project name whose key order is meaningful. Only the first
// non-null project entry counts, even when it yields nothing. The decoder
// walks tokens because unmarshaling into a map would lose that order.
// Malformed input yields no candidates, never an error.
func extractSearch(body []byte) []domain.Candidate {
	dec := json.NewDecoder(bytes.NewReader(body))

	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil
	}

	for dec.More() {
		// Project name key, unused beyond advancing the decoder.
		if _, err := dec.Token(); err != nil {
			return nil
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil
		}
		if isJSONNull(raw) {
			continue
		}

		return recordsToCandidates(raw)
	}

	return nil
}

// extractProject pulls candidates from a single-project response, a bare
// JSON array of package records.
func extractProject(body []byte) []domain.Candidate {
	return recordsToCandidates(body)
}

func recordsToCandidates(raw []byte) []domain.Candidate {
	var records []packageRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil
	}

	candidates := make([]domain.Candidate, 0, len(records))
	for _, record := range records {
		name := firstNonEmpty(record.BinName, record.SrcName, record.VisibleName)
		if record.Repo == "" || name == "" {
			continue
		}
		candidates = append(candidates, domain.Candidate{Repo: record.Repo, Name: name})
	}

	if len(candidates) == 0 {
		return nil
	}
	return candidates
}

func isJSONNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
