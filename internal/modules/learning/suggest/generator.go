// Package suggest turns a subject into structured resource or skill
// suggestions by prompting a language model. Failures never surface as a
// missing result: callers always get a usable, possibly empty, value plus an
// error that says which stage failed.
package suggest

import (
	"context"
	"fmt"
	"time"

	"github.com/yungbote/skillup-backend/internal/modules/learning/prompts"
	pkgerrors "github.com/yungbote/skillup-backend/internal/pkg/errors"
	"github.com/yungbote/skillup-backend/internal/pkg/logger"
	"github.com/yungbote/skillup-backend/internal/platform/llm"
)

type Generator interface {
	SuggestPath(ctx context.Context, title string) (PathSuggestions, error)
	SuggestSkills(ctx context.Context, jobTitle, courseName string) (SkillSuggestions, error)
}

type generator struct {
	provider llm.Provider
	log      *logger.Logger
}

func NewGenerator(provider llm.Provider, log *logger.Logger) Generator {
	return &generator{provider: provider, log: log.With("component", "SuggestionGenerator")}
}

func (g *generator) SuggestPath(ctx context.Context, title string) (PathSuggestions, error) {
	text, err := g.call(ctx, prompts.PromptPathSuggestions, prompts.PathSuggestions(title))
	if err != nil {
		return EmptyPathSuggestions(), err
	}
	out, err := DecodePathSuggestions(text)
	if err != nil {
		g.log.Warn("path suggestions not parseable", "error", err, "response_chars", len(text))
	}
	return out, err
}

func (g *generator) SuggestSkills(ctx context.Context, jobTitle, courseName string) (SkillSuggestions, error) {
	text, err := g.call(ctx, prompts.PromptSkillSuggestions, prompts.SkillSuggestions(jobTitle, courseName))
	if err != nil {
		return EmptySkillSuggestions(), err
	}
	out, err := DecodeSkillSuggestions(text)
	if err != nil {
		g.log.Warn("skill suggestions rejected", "error", err, "response_chars", len(text))
	}
	return out, err
}

func (g *generator) call(ctx context.Context, name prompts.PromptName, prompt string) (string, error) {
	start := time.Now()
	text, err := g.provider.Generate(ctx, prompt)
	if err != nil {
		g.log.Error("generation call failed", "prompt", string(name), "model", g.provider.ModelID(), "error", err)
		return "", fmt.Errorf("%w: %w", pkgerrors.ErrUpstream, err)
	}
	g.log.Debug("generation call", "prompt", string(name), "latency_ms", time.Since(start).Milliseconds())
	return text, nil
}
