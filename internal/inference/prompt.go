package inference

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// SystemPrompt sets the assistant persona for every generation.
const SystemPrompt = `You are StudySaathi, a study companion for Indian students preparing for competitive and board exams such as JEE, NEET, UPSC, CAT, GATE, SSC, Banking, CBSE, ICSE and State Boards.

Language:
- Write simple, clear Indian English, the way a friendly senior would explain to a junior.
- Prefer everyday words over complex vocabulary.

Exam focus:
- Connect every concept to how it is asked in exams and mention typical weightage.
- Point out previous year favourites, shortcuts and the mistakes students usually make.

Format:
1. Open with one encouraging line.
2. Break hard topics into numbered steps and use bullet points for facts.
3. Write formulas clearly.
4. Finish with quick revision points or exam tips.
5. Keep answers short. Students have limited time.`

const (
	maxPlannedWeeks  = 8
	recentTopicLimit = 5

	defaultConfidence = 3
)

// Float32 returns a pointer to v, for Options.Temperature.
func Float32(v float32) *float32 {
	return &v
}

func StudyContentPrompt(subject, topic string, contentType ContentType) string {
	switch contentType {
	case ContentFlashcards:
		return fmt.Sprintf(`Create 5 flashcards on "%s" in %s. Write each flashcard as:
Q: [question]
A: [answer]
Keep questions exam oriented and answers short but complete.`, topic, subject)
	case ContentQuiz:
		return fmt.Sprintf(`Create 5 multiple choice questions on "%s" in %s for exam practice. Use this format:
Q1: [question]
a) [option]
b) [option]
c) [option]
d) [option]
Answer: [correct option with a one line explanation]`, topic, subject)
	case ContentSummary:
		return fmt.Sprintf(`Write a quick revision summary of "%s" in %s covering:
- key points as bullets
- important formulas and facts
- common exam patterns
- memory tricks if there are any`, topic, subject)
	case ContentPYQStyle:
		return fmt.Sprintf(`Create 3 previous year style exam questions on "%s" in %s: one easy, one medium and one hard. Give a worked solution for each.`, topic, subject)
	default:
		return fmt.Sprintf(`Explain "%s" in %s for exam preparation. Cover the key concepts, important formulas if any, and exam tips.`, topic, subject)
	}
}

func DoubtPrompt(params DoubtRequest) string {
	if params.Subject == "" && params.Topic == "" && params.ExamType == "" {
		return params.Question
	}

	var context []string
	if params.ExamType != "" {
		context = append(context, "Exam: "+params.ExamType)
	}
	if params.Subject != "" {
		context = append(context, "Subject: "+params.Subject)
	}
	if params.Topic != "" {
		context = append(context, "Topic: "+params.Topic)
	}
	return fmt.Sprintf(`Context: %s

Student's doubt: %s

Explain it in simple terms with an exam focus.`, strings.Join(context, ", "), params.Question)
}

// NewPlanMetadata counts calendar days from params.Today to the exam date.
func NewPlanMetadata(params StudyPlanRequest, generatedAt time.Time) PlanMetadata {
	today := params.Today
	if today.IsZero() {
		today = generatedAt
	}
	from := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(params.ExamDate.Year(), params.ExamDate.Month(), params.ExamDate.Day(), 0, 0, 0, 0, time.UTC)
	daysLeft := int(math.Round(to.Sub(from).Hours() / 24))

	return PlanMetadata{
		ExamName:        params.ExamName,
		ExamDate:        params.ExamDate.Format(time.DateOnly),
		DaysLeft:        daysLeft,
		WeeksLeft:       int(math.Ceil(float64(daysLeft) / 7)),
		DailyStudyHours: params.DailyStudyHours,
		GeneratedAt:     generatedAt.UTC(),
	}
}

// SubjectPriority describes how much plan time a subject should get for a confidence level.
func SubjectPriority(confidence int) string {
	switch {
	case confidence <= 2:
		return "HIGH PRIORITY (Weak)"
	case confidence >= 4:
		return "Low priority (Strong)"
	default:
		return "Medium priority"
	}
}

func syllabus(subjects []string, topics map[string][]string, weakSubjects map[string]int) string {
	lines := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		subjectTopics := "General topics"
		if t := topics[subject]; len(t) > 0 {
			subjectTopics = strings.Join(t, ", ")
		}
		confidence, ok := weakSubjects[subject]
		if !ok || confidence == 0 {
			confidence = defaultConfidence
		}
		lines = append(lines, fmt.Sprintf("- %s: %s [Confidence: %d/5, %s]", subject, subjectTopics, confidence, SubjectPriority(confidence)))
	}
	return strings.Join(lines, "\n")
}

func formatHours(hours float64) string {
	return fmt.Sprintf("%g", hours)
}

func StudyPlanPrompt(params StudyPlanRequest, metadata PlanMetadata) string {
	hours := formatHours(params.DailyStudyHours)
	return fmt.Sprintf(`Create a detailed study plan for a student preparing for %[1]s.

STUDENT DETAILS:
- Exam Date: %[2]s (%[3]d days left, ~%[4]d weeks)
- Daily Study Hours Available: %[5]s hours
- Subjects & Topics:
%[6]s

THE PLAN MUST INCLUDE:

1. DAILY TIMETABLE for a typical day:
   - an hour by hour schedule for %[5]s hours
   - a 5-10 minute break after every 45-50 minutes
   - more time for weak subjects and a revision slot

2. WEEKLY PLAN for %[7]d weeks:
   - topics to cover each week, weak subjects first
   - the last 1-2 weeks kept for revision and mock tests

3. REVISION STRATEGY:
   - a daily 15-20 minute quick revision
   - a weekly revision schedule
   - formula or fact sheets to prepare

4. EXAM TIPS:
   - subject wise scoring strategies
   - time management in the exam hall
   - common mistakes to avoid

Give more weight to subjects with low confidence, stay realistic about the time available, leave buffer time and schedule mock tests.

Return ONLY JSON in this format:
{
  "dailyTimetable": [
    {"time": "6:00 AM - 7:00 AM", "subject": "Physics", "activity": "Theory + Notes", "duration": "60 min"}
  ],
  "weeklyPlan": [
    {"week": 1, "focus": "Foundation Building", "subjects": [{"name": "Physics", "topics": ["Mechanics basics"], "hours": 10}]}
  ],
  "revisionStrategy": {
    "daily": "description",
    "weekly": "description",
    "sheets": ["sheet name"]
  },
  "examTips": ["tip"],
  "summary": "Brief motivational summary"
}`,
		params.ExamName,
		metadata.ExamDate,
		metadata.DaysLeft,
		metadata.WeeksLeft,
		hours,
		syllabus(params.Subjects, params.Topics, params.WeakSubjects),
		min(max(metadata.WeeksLeft, 1), maxPlannedWeeks),
	)
}

var smartLearningSections = map[string]string{
	"brief": `BRIEF EXPLANATION:
Explain "%s" in 3-4 simple sentences.`,
	"detailed": `DETAILED EXPLANATION:
Explain "%s" in depth: the core idea and definition, how it works step by step, its key parts and why it matters.`,
	"questions": `10 PRACTICE QUESTIONS:
Write 10 exam style questions on "%s": 3 easy, 4 medium and 3 hard. Put the answers at the end.`,
	"analogy": `REAL-LIFE ANALOGY:
Explain "%s" with 2-3 everyday examples an Indian student can relate to, such as cricket, movies or daily life.`,
	"dosdonts": `DO'S & DON'TS:
List 5-6 do's and 5-6 don'ts for "%s".`,
	"exampoints": `EXAM IMPORTANT POINTS:
For "%s" list the most asked concepts, the formulas or facts to memorise, the question types and previous year patterns.`,
	"quickrevision": `QUICK REVISION NOTES:
Write bullet revision notes for "%s": one line definitions, key formulas, mnemonics and a 5 point summary.`,
	"mistakes": `COMMON MISTAKES:
List the conceptual, calculation and silly mistakes students make in "%s" and how to avoid each one.`,
}

// ValidSmartLearningTags keeps the known tags of tags in their given order.
func ValidSmartLearningTags(tags []string) []string {
	valid := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		if _, ok := smartLearningSections[tag]; ok && !seen[tag] {
			seen[tag] = true
			valid = append(valid, tag)
		}
	}
	return valid
}

func SmartLearningPrompt(params SmartLearningRequest) string {
	tags := ValidSmartLearningTags(params.Tags)
	sections := make([]string, 0, len(tags))
	keys := make([]string, 0, len(tags))
	for _, tag := range tags {
		sections = append(sections, fmt.Sprintf(smartLearningSections[tag], params.Topic))
		keys = append(keys, fmt.Sprintf(`    %q: "content here"`, tag))
	}

	intro := fmt.Sprintf("You are helping a student learn %q", params.Topic)
	if params.Subject != "" {
		intro += " in " + params.Subject
	}
	if params.ExamType != "" {
		intro += " for the " + params.ExamType + " exam"
	}

	return fmt.Sprintf(`%s.

Write content for these sections:

%s

Keep it simple, practical and easy to remember, and add exam tips where they help.

Return ONLY JSON in this format:
{
  "topic": %q,
  "sections": {
%s
  }
}`, intro, strings.Join(sections, "\n\n---\n\n"), params.Topic, strings.Join(keys, ",\n"))
}

func subjectTopics(topics map[string][]string) string {
	subjects := make([]string, 0, len(topics))
	for subject := range topics {
		subjects = append(subjects, subject)
	}
	sort.Strings(subjects)

	parts := make([]string, 0, len(subjects))
	for _, subject := range subjects {
		parts = append(parts, fmt.Sprintf("%s: %s", subject, strings.Join(topics[subject], ", ")))
	}
	return strings.Join(parts, "; ")
}

func weakSubjectList(weakSubjects map[string]int) string {
	var weak []string
	for subject, confidence := range weakSubjects {
		if confidence <= 2 {
			weak = append(weak, subject)
		}
	}
	sort.Strings(weak)
	return strings.Join(weak, ", ")
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func SmartSuggestionsPrompt(params SuggestionRequest) string {
	examName := orDefault(params.ExamName, "competitive exams")
	subjects := orDefault(strings.Join(params.Subjects, ", "), "General subjects")

	var recent []string
	for _, t := range params.RecentTopics[:min(len(params.RecentTopics), recentTopicLimit)] {
		recent = append(recent, t.Topic)
	}

	var profile strings.Builder
	fmt.Fprintf(&profile, "- Exam: %s\n", orDefault(params.ExamName, "Competitive Exam"))
	fmt.Fprintf(&profile, "- Subjects: %s\n", subjects)
	fmt.Fprintf(&profile, "- Topics being studied: %s\n", orDefault(subjectTopics(params.Topics), "Various topics"))
	if weak := weakSubjectList(params.WeakSubjects); weak != "" {
		fmt.Fprintf(&profile, "- Weak areas: %s\n", weak)
	}
	if len(recent) > 0 {
		fmt.Fprintf(&profile, "- Recently studied: %s\n", strings.Join(recent, ", "))
	}

	return fmt.Sprintf(`Suggest %d specific questions a student preparing for %s would want to ask.

STUDENT PROFILE:
%s
Write 2 questions about difficult concepts, 2 about exam strategy and 2 about specific syllabus topics.
Each question should sound like a real student, name the subject where it helps and stay under 15 words.

Return ONLY a JSON array of %d question strings.`, MaxSmartSuggestions, examName, profile.String(), MaxSmartSuggestions)
}

func PopularTopicsPrompt(params SuggestionRequest) string {
	examName := orDefault(params.ExamName, "competitive exams")
	subjects := orDefault(strings.Join(params.Subjects, ", "), "General subjects")

	var recent []string
	for _, t := range params.RecentTopics[:min(len(params.RecentTopics), recentTopicLimit)] {
		recent = append(recent, fmt.Sprintf("%s (%s)", t.Topic, t.Subject))
	}

	var profile strings.Builder
	fmt.Fprintf(&profile, "- Exam: %s\n", orDefault(params.ExamName, "Competitive Exam"))
	fmt.Fprintf(&profile, "- Subjects: %s\n", subjects)
	fmt.Fprintf(&profile, "- Syllabus topics: %s\n", orDefault(subjectTopics(params.Topics), "Not specified"))
	if len(recent) > 0 {
		fmt.Fprintf(&profile, "- Recently studied: %s\n", strings.Join(recent, ", "))
	}

	return fmt.Sprintf(`Suggest %d topics to study next for a student preparing for %s.

STUDENT PROFILE:
%s
Include 3 high weightage topics, 2 topics not studied recently and 3 foundation topics needed for advanced concepts.
Topics must come from these subjects: %s. Each topic should be 2-5 specific words and must not repeat a recently studied topic.

Return ONLY a JSON array of %d topic strings.`, MaxPopularTopics, examName, profile.String(), subjects, MaxPopularTopics)
}
