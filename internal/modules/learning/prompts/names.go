package prompts

type PromptName string

const (
	PromptPathSuggestions  PromptName = "path_suggestions"
	PromptSkillSuggestions PromptName = "skill_suggestions"
)
