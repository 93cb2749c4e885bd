package chat

import "strings"

// Intent names the rule that produced a reply.
type Intent string

const (
	IntentEmpty               Intent = "empty"
	IntentGreeting            Intent = "greeting"
	IntentAffirmation         Intent = "affirmation"
	IntentNegation            Intent = "negation"
	IntentGratitude           Intent = "gratitude"
	IntentBCAJobs             Intent = "bca_jobs"
	IntentWebDeveloper        Intent = "web_developer"
	IntentDataScience         Intent = "data_science"
	IntentCybersecurity       Intent = "cybersecurity"
	IntentCloudDevOps         Intent = "cloud_devops"
	IntentSoftwareDeveloper   Intent = "software_developer"
	IntentPythonDeveloper     Intent = "python_developer"
	IntentLanguageDeveloper   Intent = "language_developer"
	IntentSoftwareTester      Intent = "software_tester"
	IntentMLEngineer          Intent = "ml_engineer"
	IntentDatabase            Intent = "database"
	IntentIoTDeveloper        Intent = "iot_developer"
	IntentAndroidDeveloper    Intent = "android_developer"
	IntentIOSDeveloper        Intent = "ios_developer"
	IntentFlutterDeveloper    Intent = "flutter_developer"
	IntentBlockchainDeveloper Intent = "blockchain_developer"
	IntentEducator            Intent = "educator"

	// IntentUnmatched is reported for the soft fallback.
	IntentUnmatched Intent = "unmatched"
	// IntentEscalated is reported when the second consecutive miss lists every topic.
	IntentEscalated Intent = "escalated"
)

// Predicate decides whether a normalized message triggers a rule.
type Predicate func(text string) bool

// Rule pairs a predicate with the reply it produces.
type Rule struct {
	Intent Intent
	When   Predicate
	Reply  string
}

// ContainsAny matches when any keyword occurs anywhere in the text.
func ContainsAny(keywords ...string) Predicate {
	return func(text string) bool {
		for _, k := range keywords {
			if strings.Contains(text, k) {
				return true
			}
		}
		return false
	}
}

// EqualsAny matches when the whole text is one of the phrases.
func EqualsAny(phrases ...string) Predicate {
	set := make(map[string]struct{}, len(phrases))
	for _, p := range phrases {
		set[p] = struct{}{}
	}
	return func(text string) bool {
		_, ok := set[text]
		return ok
	}
}

// IsEmpty matches the empty message.
func IsEmpty() Predicate {
	return func(text string) bool { return text == "" }
}

// DefaultRules returns the career-guidance rule table in evaluation order.
// Keywords are plain substrings, so short ones also fire inside longer words
// ("hi" in "machine", "ty" in "security"); earlier rules win.
func DefaultRules() []Rule {
	return []Rule{
		{IntentEmpty, IsEmpty(), replyEmpty},
		{IntentGreeting, ContainsAny("hello", "hi", "hey", "good morning", "good afternoon", "good evening", "good night", "how are you", "what's up", "greetings"), replyGreeting},
		{IntentAffirmation, EqualsAny("yes", "yeah", "yep", "yup", "sure", "definitely"), replyAffirmation},
		{IntentNegation, EqualsAny("no", "nope", "not really", "nah"), replyNegation},
		{IntentGratitude, ContainsAny("thanks", "thank you", "ty"), replyGratitude},

		{IntentBCAJobs, ContainsAny("job opportunities after bca", "jobs after bca", "career after bca"), replyBCAJobs},
		{IntentWebDeveloper, ContainsAny("web developer", "web dev", "frontend", "backend"), replyWebDeveloper},
		{IntentDataScience, ContainsAny("data scientist", "data analyst", "data science"), replyDataScience},
		{IntentCybersecurity, ContainsAny("cybersecurity", "cyber security", "security analyst"), replyCybersecurity},
		{IntentCloudDevOps, ContainsAny("cloud engineer", "devops", "devops engineer", "cloud computing"), replyCloudDevOps},
		{IntentSoftwareDeveloper, ContainsAny("software developer", "software engineer", "programmer"), replySoftwareDeveloper},
		{IntentPythonDeveloper, ContainsAny("python developer", "python programming"), replyPythonDeveloper},
		{IntentLanguageDeveloper, ContainsAny(
			"java developer", "java programming",
			"c++ developer", "c++ programming",
			"javascript developer", "javascript programming",
			"language based developer",
		), replyLanguageDeveloper},
		{IntentSoftwareTester, ContainsAny("software tester", "qa engineer", "quality assurance", "software testing"), replySoftwareTester},
		{IntentMLEngineer, ContainsAny("machine learning engineer", "ml engineer", "ai engineer", "artificial intelligence engineer"), replyMLEngineer},
		{IntentDatabase, ContainsAny("dbms", "database architect", "database engineer", "database administrator"), replyDatabase},
		{IntentIoTDeveloper, ContainsAny("iot developer", "internet of things developer"), replyIoTDeveloper},
		{IntentAndroidDeveloper, ContainsAny("android developer", "android app", "mobile developer android"), replyAndroidDeveloper},
		{IntentIOSDeveloper, ContainsAny("ios developer", "ios app", "mobile developer ios"), replyIOSDeveloper},
		{IntentFlutterDeveloper, ContainsAny("flutter developer", "flutter programming", "flutter app", "cross-platform mobile developer"), replyFlutterDeveloper},
		{IntentBlockchainDeveloper, ContainsAny("blockchain developer", "blockchain programming", "crypto developer"), replyBlockchainDeveloper},
		{IntentEducator, ContainsAny("educator", "teacher", "professor", "lecturer", "computer instructor"), replyEducator},
	}
}
