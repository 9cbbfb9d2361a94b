package main

import "fmt"

// Rewrite styles. The set is closed: anything unrecognized gets the hindi
// prompt rather than an error.
const (
	StyleHindi   = "hindi"
	StyleEnglish = "english"
)

// BuildRewritePrompt returns the instruction handed to the model for a style
// rewrite. Full-document prompts are the production prompts carried verbatim,
// quirks included; selection mode asks for a constrained rewrite of just the
// fragment so it can be pasted back into its surrounding text.
func BuildRewritePrompt(style, text string, selected bool) string {
	if selected {
		switch style {
		case StyleEnglish:
			return "Rewrite only this selected text fragment in very natural language that normal man speck in active voice in english. Keep the meaning and keep it consistent with the text around it, just provide the output text:\n\n" + text
		default:
			return "Rewrite only this selected text fragment in very natural language that normal man speck in active voice in hindi. Keep the meaning and keep it consistent with the text around it, just provide the output text:\n\n" + text
		}
	}
	switch style {
	case StyleEnglish:
		return "Rewrite Whole text from starting and Make this in very natural language that normal man speck in active voice in english just provide the output text:\n\n" + text
	default:
		return "Make this in very natural language that normal man speck in active voice in hindi just provide the output text:\n\n" + text
	}
}

// BuildTonePrompt returns the instruction for a tone adjustment. The tone is
// free text (the editor offers anticipatory, assertive, compassionate,
// confident and constructive).
func BuildTonePrompt(tone, text string, selected bool) string {
	if selected {
		return fmt.Sprintf("Rewrite only this selected text fragment in a %s tone. Keep the meaning and keep it consistent with the text around it, just provide the output text:\n\n%s", tone, text)
	}
	return fmt.Sprintf("Rewrite the following text in a %s tone. Keep the meaning unchanged, just provide the output text:\n\n%s", tone, text)
}

// analysisPrompt instructs the model to reply with a bare JSON object in the
// exact shape ParseAnalysisResponse expects. Models still wrap it in code
// fences or prose often enough that the parser has to defend against both.
func analysisPrompt(text string) string {
	return `You are a JSON generator. Return ONLY a JSON object with no additional text or formatting.
The JSON object must follow this EXACT structure and format:
{
  "suggestions": {
    "correctness": 0.8,
    "clarity": 0.7,
    "engagement": 0.6,
    "delivery": 0.75
  },
  "seo": {
    "score": 0.65,
    "suggestions": [
      "Add more keywords",
      "Improve meta description",
      "Use more headings"
    ]
  },
  "analysis": "Brief analysis of the content goes here"
}

Analyze this text and respond with a JSON object using the above structure: ` + text
}
