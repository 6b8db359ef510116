package schema

import (
	"fmt"

	"careercompass/internal/model"
)

// Forced-choice items for the four-axis personality section. Each item is
// answered "A" or "B"; the scorer maps items 1-20 to E/I, 21-40 to S/N,
// 41-60 to T/F and 61-80 to J/P, so the order here is load-bearing.
var typeItems = []string{
	// Extraversion (E) vs Introversion (I)
	"At a party, you: (A) mingle with many people (B) stay with a few you know well",
	"After a long week, you recharge by: (A) going out with friends (B) spending time alone",
	"In group discussions, you: (A) speak up readily (B) listen first and speak when asked",
	"Meeting new people is: (A) energizing (B) tiring",
	"You prefer working: (A) in an open, busy space (B) in a quiet, private space",
	"When the phone rings, you: (A) answer eagerly (B) let it go to voicemail sometimes",
	"You think best: (A) while talking things through (B) while reflecting on your own",
	"On a team, you tend to be: (A) the one who starts conversations (B) the one others approach",
	"Your circle of friends is: (A) wide and varied (B) small and close",
	"At events, you usually: (A) stay late and leave energized (B) leave early and need rest",
	"You share your ideas: (A) as soon as they occur to you (B) after you have refined them",
	"Weekends with no plans feel: (A) empty (B) restful",
	"When learning something new, you prefer: (A) group workshops (B) self-paced study",
	"In a new city you would: (A) join clubs quickly (B) explore alone first",
	"You are more likely described as: (A) outgoing (B) reserved",
	"Interruptions while working: (A) rarely bother you (B) break your focus",
	"You celebrate wins by: (A) throwing a get-together (B) enjoying them quietly",
	"Long video calls leave you: (A) upbeat (B) drained",
	"Brainstorming works best for you: (A) out loud with others (B) on paper alone",
	"Your desk neighbours know: (A) a lot about your life (B) only the essentials",
	// Sensing (S) vs Intuition (N)
	"You trust: (A) direct experience (B) hunches and patterns",
	"When reading, you focus on: (A) the facts stated (B) the meaning between lines",
	"Instructions should be: (A) step-by-step (B) a goal you figure out yourself",
	"You notice first: (A) details in front of you (B) possibilities ahead",
	"You prefer problems that are: (A) concrete and practical (B) abstract and novel",
	"At work you value: (A) proven methods (B) new approaches",
	"Describing a film, you recall: (A) specific scenes (B) the overall theme",
	"Plans should be built on: (A) realistic data (B) imagined potential",
	"You would rather be called: (A) sensible (B) imaginative",
	"Routine tasks are: (A) grounding (B) stifling",
	"When assembling furniture, you: (A) follow the manual (B) glance at the picture and improvise",
	"Ideas matter most when they are: (A) applicable today (B) ahead of their time",
	"You learn best from: (A) worked examples (B) underlying theory",
	"Forecasting the future feels: (A) speculative (B) natural",
	"You prefer teachers who: (A) give clear facts (B) pose open questions",
	"Metaphors in conversation: (A) distract you (B) delight you",
	"Your memory is strongest for: (A) things you did (B) ideas you had",
	"Change for its own sake is: (A) pointless (B) refreshing",
	"You check the details: (A) before imagining outcomes (B) after imagining outcomes",
	"Daydreaming at work is: (A) a lapse (B) where your best ideas start",
	// Thinking (T) vs Feeling (F)
	"Hard decisions should weigh: (A) logic and consistency (B) people and circumstances",
	"Honest criticism is: (A) a gift (B) something to soften",
	"You are more convinced by: (A) a sound argument (B) a heartfelt appeal",
	"When a friend has a problem, you offer: (A) solutions (B) sympathy",
	"Rules exist to be: (A) applied evenly (B) adapted to the person",
	"In conflict, you aim for: (A) the correct outcome (B) the harmonious outcome",
	"You would rather be seen as: (A) fair (B) kind",
	"Praise matters when it is: (A) earned (B) encouraging",
	"Firing an underperformer is: (A) a rational necessity (B) a last, painful resort",
	"Debates are: (A) enjoyable (B) uncomfortable",
	"You evaluate ideas by: (A) their merit alone (B) their effect on people",
	"Telling a white lie is: (A) rarely justified (B) sometimes kinder",
	"Your head and heart disagree; you follow: (A) your head (B) your heart",
	"Feedback you give is usually: (A) direct (B) cushioned",
	"Team decisions should be: (A) objective, even if unpopular (B) supported, even if imperfect",
	"You notice flawed logic: (A) immediately and say so (B) but often let it pass",
	"Being right matters: (A) more than being liked (B) less than being liked",
	"Emotional appeals in meetings: (A) cloud the issue (B) reveal what matters",
	"You keep composure by: (A) detaching from the situation (B) talking feelings through",
	"Justice without mercy is: (A) still justice (B) not justice at all",
	// Judging (J) vs Perceiving (P)
	"Your workspace is: (A) organized (B) an evolving pile",
	"Deadlines are: (A) commitments (B) suggestions that focus the mind late",
	"You prefer plans that are: (A) settled in advance (B) open to change",
	"Packing for a trip happens: (A) days before (B) the night before",
	"Unfinished tasks: (A) nag at you (B) wait happily",
	"Lists are: (A) essential (B) occasional",
	"A change of plan at the last minute is: (A) annoying (B) exciting",
	"You work best: (A) steadily toward the due date (B) in a final burst",
	"Decisions should be: (A) made and closed (B) kept open as long as possible",
	"Free evenings are best: (A) scheduled (B) spontaneous",
	"Your calendar is: (A) the source of truth (B) a rough sketch",
	"Starting a project, you first: (A) outline the steps (B) dive in and see",
	"Rules of thumb: finish work then play, or: (A) yes, always (B) play fuels the work",
	"Surprises are: (A) disruptions (B) opportunities",
	"You buy gifts: (A) well ahead of time (B) on the way to the party",
	"Leaving things to chance feels: (A) careless (B) liberating",
	"Your email inbox is: (A) processed to zero (B) a living archive",
	"Switching tasks midway: (A) breaks your rhythm (B) keeps things fresh",
	"Closure on a question is: (A) satisfying (B) premature",
	"The best holidays are: (A) itinerized (B) improvised",
}

// Likert items for the Big-Five section: 12 per trait, in trait order
// Openness, Conscientiousness, Extraversion, Agreeableness, Neuroticism.
var bigFiveItems = []string{
	// Openness
	"I have a vivid imagination.",
	"I enjoy trying activities I have never done before.",
	"I am curious about how things work.",
	"I enjoy art, music, or literature deeply.",
	"I like to play with abstract ideas.",
	"I seek out unfamiliar points of view.",
	"I enjoy learning topics outside my field.",
	"I notice beauty in everyday things.",
	"I question traditions rather than accept them.",
	"I enjoy imagining different futures for myself.",
	"I like experimenting with new ways of doing routine tasks.",
	"I find philosophical discussions engaging.",
	// Conscientiousness
	"I complete tasks thoroughly before moving on.",
	"I keep my belongings neat and in order.",
	"I follow through on my commitments.",
	"I plan my work before starting it.",
	"I pay attention to small details.",
	"I am rarely late for appointments.",
	"I persist at tasks until they are finished.",
	"I set goals and track my progress toward them.",
	"I think carefully before acting.",
	"I keep my promises even when it is inconvenient.",
	"I prepare well in advance for important events.",
	"I maintain steady routines in my daily life.",
	// Extraversion
	"I feel comfortable around people.",
	"I start conversations with strangers easily.",
	"I enjoy being the center of attention.",
	"I have a wide circle of acquaintances.",
	"I am talkative in group settings.",
	"Social gatherings leave me energized.",
	"I make friends quickly.",
	"I speak up readily in meetings.",
	"I enjoy lively, busy environments.",
	"I find it easy to express enthusiasm.",
	"I take the lead in organizing social events.",
	"I feel at ease performing in front of others.",
	// Agreeableness
	"I am interested in other people's problems.",
	"I sympathize with others' feelings.",
	"I go out of my way to make others comfortable.",
	"I trust people until given a reason not to.",
	"I avoid arguments when possible.",
	"I forgive others easily.",
	"I enjoy cooperating more than competing.",
	"I take time to help colleagues who are struggling.",
	"I consider everyone's needs before my own.",
	"I speak kindly even when frustrated.",
	"I give people the benefit of the doubt.",
	"I feel others' happiness as if it were my own.",
	// Neuroticism
	"I worry about things more than most people.",
	"I get stressed out easily.",
	"I am easily disturbed by setbacks.",
	"My mood changes often.",
	"I feel anxious before important events.",
	"I dwell on my mistakes.",
	"I get irritated by small annoyances.",
	"I often feel overwhelmed by my responsibilities.",
	"I take criticism personally.",
	"I find it hard to relax after a difficult day.",
	"I fear the worst in uncertain situations.",
	"I feel tense when plans change unexpectedly.",
}

var likertOptions = []string{"Strongly Disagree", "Disagree", "Neutral", "Agree", "Strongly Agree"}

func personalitySection() model.Section {
	questions := make([]model.Question, len(typeItems))
	for i, item := range typeItems {
		questions[i] = model.Question{
			ID:      fmt.Sprintf("S6PTQ%d", i+1),
			Prompt:  item,
			Kind:    model.InputSingleChoice,
			Options: []string{"A", "B"},
		}
	}
	return model.Section{
		ID:        "SEC6",
		Title:     "Personality Type",
		Questions: questions,
	}
}

func bigFiveSection() model.Section {
	questions := make([]model.Question, len(bigFiveItems))
	for i, item := range bigFiveItems {
		questions[i] = model.Question{
			ID:      fmt.Sprintf("S7BFQ%d", i+1),
			Prompt:  item,
			Kind:    model.InputSingleChoice,
			Options: likertOptions,
		}
	}
	return model.Section{
		ID:        "SEC7",
		Title:     "Work Style",
		Questions: questions,
	}
}
