package prompt

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/Rhaast00/vervappweb/internal/domain"
	perrors "github.com/Rhaast00/vervappweb/pkg/errors"
)

// Models regularly wrap JSON in markdown fences despite instructions not to.
var jsonFenceRegex = regexp.MustCompile("(?is)```(?:json)?\\s*\\n?(.*?)\\n?```")

// ExtractJSON strips a markdown code fence around the payload if one is
// present, otherwise returns the trimmed input unchanged.
func ExtractJSON(text string) string {
	if match := jsonFenceRegex.FindStringSubmatch(text); match != nil {
		return strings.TrimSpace(match[1])
	}
	return strings.TrimSpace(text)
}

// DecodeAnalysis parses a model's analysis response into WebsiteData. The
// returned data carries only what the model provided; callers merge it over a
// baseline. A response that is not a JSON object is a shape error.
func DecodeAnalysis(raw string) (*domain.WebsiteData, error) {
	payload := ExtractJSON(raw)
	if payload == "" {
		return nil, perrors.NewResponseShapeError("empty response", nil)
	}

	var data domain.WebsiteData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, perrors.NewResponseShapeError("analysis response is not valid JSON", err)
	}
	return &data, nil
}

// DecodeRedesign parses a model's redesign response. All three fields must be
// present and non-empty for the result to be usable.
func DecodeRedesign(raw string) (*domain.RedesignResult, error) {
	payload := ExtractJSON(raw)
	if payload == "" {
		return nil, perrors.NewResponseShapeError("empty response", nil)
	}

	var result domain.RedesignResult
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return nil, perrors.NewResponseShapeError("redesign response is not valid JSON", err)
	}

	if strings.TrimSpace(result.HTML) == "" {
		return nil, perrors.NewResponseShapeError("redesign response is missing html", nil)
	}
	if strings.TrimSpace(result.CSS) == "" {
		return nil, perrors.NewResponseShapeError("redesign response is missing css", nil)
	}
	if strings.TrimSpace(result.Preview) == "" {
		return nil, perrors.NewResponseShapeError("redesign response is missing preview", nil)
	}
	return &result, nil
}
