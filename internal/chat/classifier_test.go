package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newClassifier(t *testing.T) *Classifier {
	t.Helper()
	c, err := NewClassifier()
	require.NoError(t, err)
	return c
}

func TestClassifier_Classify(t *testing.T) {
	c := newClassifier(t)

	tests := []struct {
		name     string
		input    string
		expected Intent
	}{
		{"contact keyword", "How can I contact you?", IntentContact},
		{"reach keyword", "How can I reach you?", IntentContact},
		{"email keyword", "what's your email", IntentContact},
		{"discord upper case", "Are you on DISCORD?", IntentContact},
		{"tech stack phrase", "What is your tech stack?", IntentSkills},
		{"technologies", "Which technologies do you use?", IntentSkills},
		{"skills", "List your skills", IntentSkills},
		{"project", "Tell me about your best projects.", IntentProjects},
		{"work", "Show me your work", IntentProjects},
		{"challenge", "What was the biggest challenge?", IntentChallenges},
		{"difficult", "Anything difficult lately?", IntentChallenges},
		{"zeke alone", "Tell me about Zeke", IntentZeke},
		{"fun", "Tell me something fun about you.", IntentHobbies},
		{"hobby", "Any hobby?", IntentHobbies},
		{"like", "What do you like?", IntentHobbies},
		{"interest", "Your interests?", IntentHobbies},
		{"no keyword", "Tell me about yourself.", IntentDefault},
		{"empty", "", IntentDefault},
		{"contact beats skills", "email me your skills", IntentContact},
		{"skills beats projects", "skills for this project", IntentSkills},
		{"challenge beats zeke", "hardest challenge on zeke", IntentChallenges},
		{"substring inside a word", "I'm a framework fan", IntentProjects},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, c.Classify(tt.input).Intent)
		})
	}
}

func TestClassifier_DiscordAnyCase(t *testing.T) {
	c := newClassifier(t)

	for _, input := range []string{"discord", "Discord?", "DiScOrD handle", "ping me on discord please"} {
		require.Equal(t, ContactReply, c.Classify(input).Reply, input)
	}
}

// "project" and "zeke" together resolve to the project list because that rule comes first.
func TestClassifier_ProjectBeatsZeke(t *testing.T) {
	req := require.New(t)
	c := newClassifier(t)

	for _, input := range []string{"Tell me about the Zeke project", "zeke project details", "how does zeke work"} {
		match := c.Classify(input)
		req.Equal(IntentProjects, match.Intent, input)
		req.Equal(ProjectsReply, match.Reply, input)
	}
}

func TestClassifier_Idempotent(t *testing.T) {
	c := newClassifier(t)

	for _, input := range []string{"How can I reach you?", "zeke", "", "hello there"} {
		require.Equal(t, c.Classify(input), c.Classify(input))
	}
}

func TestClassifier_Scenarios(t *testing.T) {
	req := require.New(t)
	c := newClassifier(t)

	reply := c.Classify("How can I reach you?").Reply
	req.Contains(reply, "adoniitamar@gmail.com")
	req.Contains(reply, "itamar11_")

	reply = c.Classify("What is your tech stack?").Reply
	req.Contains(reply, "Python")
	req.Contains(reply, "Node.js")
	req.Contains(reply, "Supabase")

	req.Equal(DefaultReply, c.Classify("").Reply)
}
