// Package prompts holds the exact prompt text sent to the language model.
// Output parsing depends on the field names spelled out here, so the text is
// kept byte-for-byte stable.
package prompts

import "strings"

const pathIndent = "            "

var pathLines = []string{
	"",
	pathIndent + `You are an intelligent educational assistant designed to help users find relevant courses, tutorials , exercises, and goals. Your task is to suggest high-quality resources tailored to the learning path titled "%TITLE%". `,
	"",
	pathIndent + "The suggestions should include:",
	pathIndent + "- A list of recommended online courses with links.",
	pathIndent + "- Tutorials that cover essential topics.",
	pathIndent + "- Exercises to practice the concepts learned.",
	pathIndent + "- Goals for tracking progress related to the learning path.",
	pathIndent + "Ensure the suggestions are suitable for various learning levels, from beginner to advanced.",
	"",
	pathIndent + "Return only valid JSON in the following format: ",
	pathIndent + "{",
	pathIndent + `  "suggestedCourses": ["Course 1", "Course 2"],`,
	pathIndent + `  "tutorials": ["Tutorial 1", "Tutorial 2"],`,
	pathIndent + `  "exercises": ["Exercise 1", "Exercise 2"],`,
	pathIndent + `  "goals": ["Goal 1", "Goal 2"]`,
	pathIndent + "} without any additional text or explanations.",
}

var skillLines = []string{
	`You are an intelligent educational assistant designed to help users generate a list of skills and brief descriptions required for the job "%JOB%" or the university course "%COURSE%" in the current day and time.`,
	"          Return only valid JSON in the following format: ",
	"            {",
	`              "skills": ["Skill 1", "Skill 2"],`,
	`              "descriptions": ["Description 1", "Description 2"]`,
	"            } without any additional text or explanations.",
}

var (
	pathTemplate  = strings.Join(pathLines, "\n")
	skillTemplate = strings.Join(skillLines, "\n")
)

// PathSuggestions asks for courses, tutorials, exercises and goals for a
// learning path title. The title is embedded unescaped.
func PathSuggestions(title string) string {
	return strings.Replace(pathTemplate, "%TITLE%", title, 1)
}

// SkillSuggestions asks for skills with aligned descriptions for a job title
// or course name.
func SkillSuggestions(jobTitle, courseName string) string {
	r := strings.NewReplacer("%JOB%", jobTitle, "%COURSE%", courseName)
	return r.Replace(skillTemplate)
}
