package engine

import "careercompass/internal/model"

// Project returns the displayable transcript: the recorded history plus a
// synthesized entry for the prompt currently awaiting an answer. The pending
// entry is only synthesized when the tail of the history does not already
// hold a question with identical text, so re-renders never duplicate the
// current question.
func Project(c *Controller) []model.TranscriptEntry {
	history := c.Transcript()
	out := append([]model.TranscriptEntry(nil), history...)

	prompt := c.Current()
	if prompt == nil {
		return out
	}
	if n := len(out); n > 0 {
		tail := out[n-1]
		if tail.Kind == model.EntryQuestion && tail.Text == prompt.Text {
			return out
		}
	}
	return append(out, model.TranscriptEntry{Kind: model.EntryQuestion, Text: prompt.Text})
}
