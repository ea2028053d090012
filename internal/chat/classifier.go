package chat

import (
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

type Intent string

const (
	IntentContact    Intent = "contact"
	IntentSkills     Intent = "skills"
	IntentProjects   Intent = "projects"
	IntentChallenges Intent = "challenges"
	IntentZeke       Intent = "zeke"
	IntentHobbies    Intent = "hobbies"
	IntentDefault    Intent = "default"
)

type rule struct {
	intent   Intent
	keywords []string
	reply    string
}

// rules are evaluated in order and the first hit wins, so "project" beats "zeke".
var rules = []rule{
	{IntentContact, []string{"contact", "reach", "email", "discord"}, ContactReply},
	{IntentSkills, []string{"tech stack", "technologies", "skills"}, SkillsReply},
	{IntentProjects, []string{"project", "work"}, ProjectsReply},
	{IntentChallenges, []string{"challenge", "difficult"}, ChallengesReply},
	{IntentZeke, []string{"zeke"}, ZekeReply},
	{IntentHobbies, []string{"fun", "hobby", "like", "interest"}, HobbiesReply},
}

type Match struct {
	Intent Intent
	Reply  string
}

// Classifier maps the newest user message to a canned reply.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	matcher *goahocorasick.Machine
	rules   []rule
}

// NewClassifier builds one Aho-Corasick automaton over every rule keyword.
func NewClassifier() (*Classifier, error) {
	keywords := lo.Uniq(lo.FlatMap(rules, func(r rule, _ int) []string { return r.keywords }))
	patterns := lo.Map(keywords, func(k string, _ int) []rune { return []rune(k) })

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, errors.Wrap(err, "build keyword matcher")
	}
	return &Classifier{matcher: m, rules: rules}, nil
}

// Classify lowercases text and returns the first rule with a keyword inside it.
func (c *Classifier) Classify(text string) Match {
	content := []rune(strings.ToLower(text))
	if len(content) == 0 {
		return Match{Intent: IntentDefault, Reply: DefaultReply}
	}

	hits := make(map[string]struct{})
	for _, term := range c.matcher.MultiPatternSearch(content, false) {
		hits[string(term.Word)] = struct{}{}
	}

	for _, r := range c.rules {
		matched := lo.SomeBy(r.keywords, func(k string) bool {
			_, ok := hits[k]
			return ok
		})
		if matched {
			return Match{Intent: r.intent, Reply: r.reply}
		}
	}

	return Match{Intent: IntentDefault, Reply: DefaultReply}
}
