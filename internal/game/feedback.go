package game

// FeedbackSink receives fire-and-forget notifications about evaluated
// answers, exactly once per evaluation and never for ignored input. The UI
// layer turns these into sound and confetti. Implementations must not call
// back into the session.
type FeedbackSink interface {
	Correct()
	Incorrect()
	// Finished fires once when the candidate pool is exhausted and the
	// session reaches its terminal state.
	Finished()
}

// NopSink discards all feedback.
type NopSink struct{}

func (NopSink) Correct()   {}
func (NopSink) Incorrect() {}
func (NopSink) Finished()  {}
