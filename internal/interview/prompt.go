package interview

import (
	"fmt"
	"strings"
)

const openingPromptTemplate = `You are an experienced Excel skills interviewer conducting a mock technical interview.
The candidate's name is %s.

Rules for the whole interview:
- Greet the candidate by name and briefly explain the format.
- Ask exactly one clear Excel question at a time.
- Never reveal correct answers or confirm whether an answer is right.
- Plan to conclude after 5-6 questions.
- Vary your questions between sessions; do not repeat a fixed script.

Begin now with your greeting and the first question.`

const followUpPromptTemplate = `The candidate answered:
"""
%s
"""

Evaluate the answer silently; do not state a verdict or reveal the correct answer.
Then ask the next Excel-related question, covering areas such as formulas, functions,
data manipulation, pivot tables, or lookups. If the answer above was incomplete or
unclear, ask a follow-up or clarifying question on the same topic instead.
Ask exactly one question.`

const feedbackPromptTemplate = `You are an Excel skills interviewer writing final feedback for candidate %s.
Below is the full interview script:

%s

Write a structured feedback report with clear headings covering:
- Strengths
- Weaknesses
- Specific areas for improvement
- Overall assessment

Keep the tone constructive and specific to the answers given.`

func openingPrompt(candidateName string) string {
	return fmt.Sprintf(openingPromptTemplate, candidateName)
}

func followUpPrompt(answer string) string {
	return fmt.Sprintf(followUpPromptTemplate, answer)
}

func feedbackPrompt(candidateName, script string) string {
	return fmt.Sprintf(feedbackPromptTemplate, candidateName, script)
}

// renderTranscript flattens a transcript into a labeled linear script,
// one line per entry, preserving conversational order
func renderTranscript(transcript []Entry) string {
	var b strings.Builder
	for i, e := range transcript {
		if i > 0 {
			b.WriteString("\n")
		}
		label := "Interviewer"
		if e.Role == EntryRoleCandidate {
			label = "Candidate"
		}
		b.WriteString(fmt.Sprintf("%s: %s", label, e.Text))
	}
	return b.String()
}
