// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed reports that a model response contained no usable JSON array.
// It is distinct from an empty array, which is a valid "nothing found"
// response; callers must present the two differently.
var ErrMalformed = errors.New("llm: malformed model response")

// ExtractArray pulls the JSON array out of a free-form model response. The
// model is instructed to return an array only, but responses may wrap it in
// prose or code fences, and arrays may span multiple lines, so the scan is
// greedy across the whole text: first opening bracket to last closing
// bracket.
//
// Records are returned raw so a caller can decode them one at a time and
// drop individually bad ones. An empty array yields an empty, non-nil
// slice. All failures are returned as ErrMalformed; nothing escapes this
// boundary as a panic.
func ExtractArray(rawText string) ([]json.RawMessage, error) {
	start := strings.Index(rawText, "[")
	end := strings.LastIndex(rawText, "]")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("%w: no array found in %q", ErrMalformed, truncate(rawText))
	}

	records := []json.RawMessage{}
	if err := json.Unmarshal([]byte(rawText[start:end+1]), &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return records, nil
}

func truncate(s string) string {
	const limit = 120
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
