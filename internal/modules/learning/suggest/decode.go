package suggest

import (
	"bytes"
	"encoding/json"
	"fmt"

	types "github.com/yungbote/skillup-backend/internal/domain"
	pkgerrors "github.com/yungbote/skillup-backend/internal/pkg/errors"
)

// PathSuggestions seeds a new learning path. Every slice is non-nil so the
// empty value encodes as four empty arrays.
type PathSuggestions struct {
	SuggestedCourses []string `json:"suggestedCourses"`
	Tutorials        []string `json:"tutorials"`
	Exercises        []string `json:"exercises"`
	Goals            []string `json:"goals"`
}

func EmptyPathSuggestions() PathSuggestions {
	return PathSuggestions{
		SuggestedCourses: []string{},
		Tutorials:        []string{},
		Exercises:        []string{},
		Goals:            []string{},
	}
}

func (p PathSuggestions) IsEmpty() bool {
	return len(p.SuggestedCourses) == 0 && len(p.Tutorials) == 0 && len(p.Exercises) == 0 && len(p.Goals) == 0
}

// SkillSuggestions holds positionally aligned skills and descriptions.
type SkillSuggestions struct {
	Skills       []string `json:"skills"`
	Descriptions []string `json:"descriptions"`
}

func EmptySkillSuggestions() SkillSuggestions {
	return SkillSuggestions{Skills: []string{}, Descriptions: []string{}}
}

// Pairs zips skills with their descriptions. A skill without a matching
// description gets "".
func (s SkillSuggestions) Pairs() []types.SkillSuggestion {
	out := make([]types.SkillSuggestion, 0, len(s.Skills))
	for i, skill := range s.Skills {
		desc := ""
		if i < len(s.Descriptions) {
			desc = s.Descriptions[i]
		}
		out = append(out, types.SkillSuggestion{Skill: skill, Description: desc})
	}
	return out
}

// DecodePathSuggestions parses raw model text. Text that is not a JSON object
// yields the empty value and ErrUnparseable. Inside a valid object each field
// is read on its own: a missing field or one that is not an array comes back
// empty without failing the rest.
func DecodePathSuggestions(text string) (PathSuggestions, error) {
	fields, err := decodeObject(text)
	if err != nil {
		return EmptyPathSuggestions(), err
	}
	return PathSuggestions{
		SuggestedCourses: stringsField(fields, "suggestedCourses"),
		Tutorials:        stringsField(fields, "tutorials"),
		Exercises:        stringsField(fields, "exercises"),
		Goals:            stringsField(fields, "goals"),
	}, nil
}

// DecodeSkillSuggestions parses raw model text. Unlike the path variant both
// arrays must be present, otherwise the result is empty
// and the error wraps ErrInvalidShape.
func DecodeSkillSuggestions(text string) (SkillSuggestions, error) {
	fields, err := decodeObject(text)
	if err != nil {
		return EmptySkillSuggestions(), err
	}
	skills, okSkills := arrayField(fields, "skills")
	descs, okDescs := arrayField(fields, "descriptions")
	if !okSkills || !okDescs {
		return EmptySkillSuggestions(), fmt.Errorf("%w: skills and descriptions must be arrays", pkgerrors.ErrInvalidShape)
	}
	return SkillSuggestions{Skills: skills, Descriptions: descs}, nil
}

func decodeObject(text string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", pkgerrors.ErrUnparseable, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: null document", pkgerrors.ErrUnparseable)
	}
	return fields, nil
}

func stringsField(fields map[string]json.RawMessage, key string) []string {
	out, ok := arrayField(fields, key)
	if !ok {
		return []string{}
	}
	return out
}

// arrayField reports false only when key is missing or not a JSON array.
// String elements are kept as is; any other element becomes its JSON text.
func arrayField(fields map[string]json.RawMessage, key string) ([]string, bool) {
	raw, ok := fields[key]
	if !ok {
		return nil, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil || elems == nil {
		return nil, false
	}
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		var s string
		if err := json.Unmarshal(e, &s); err == nil {
			out = append(out, s)
			continue
		}
		out = append(out, string(bytes.TrimSpace(e)))
	}
	return out, true
}
