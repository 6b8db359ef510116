package scoring

import "careercompass/internal/model"

// Enrich joins each stored answer with its prompt text so the persisted
// assessment is readable without the schema. Answers whose question id is
// not in the schema (stale ids from an older schema revision) are skipped.
func Enrich(answers model.AnswerStore, schema model.Schema) map[string]model.EnrichedAnswer {
	prompts := make(map[string]string)
	for _, sec := range schema {
		for _, q := range sec.Questions {
			prompts[q.ID] = q.Prompt
		}
	}

	out := make(map[string]model.EnrichedAnswer, len(answers))
	for id, v := range answers {
		prompt, ok := prompts[id]
		if !ok {
			continue
		}
		out[id] = model.EnrichedAnswer{Question: prompt, Answer: v}
	}
	return out
}
