package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/maplequiz/geoquiz/internal/geoquiz"
)

// DefaultAdvanceDelay is how long transient correct/incorrect feedback stays
// visible before the next question is generated.
const DefaultAdvanceDelay = 1500 * time.Millisecond

// SessionConfig tunes a session. Zero values fall back to defaults.
type SessionConfig struct {
	OptionCount  int
	AdvanceDelay time.Duration
	Rand         *rand.Rand
}

// RecallTarget is the entity currently selected for typed recall.
type RecallTarget struct {
	Variant geoquiz.Variant `json:"variant"`
	Name    string          `json:"name"`
}

// State is an immutable snapshot of a session for the UI layer.
type State struct {
	Mode          geoquiz.Mode      `json:"mode"`
	Status        geoquiz.Status    `json:"status"`
	Score         int               `json:"score"`
	Question      *geoquiz.Question `json:"question,omitempty"`
	FoundNames    []string          `json:"foundNames"`
	HighlightedID string            `json:"highlightedId,omitempty"`
	RecallTarget  *RecallTarget     `json:"recallTarget,omitempty"`
	Remaining     int               `json:"remaining"`
}

// Session is the game controller for one player: it owns the current
// question, progress, and status, and orchestrates mode switches and the
// deferred advance to the next question.
//
// All state is guarded by a single mutex so events (answer submitted, mode
// changed, advance timer fired) are processed one at a time. Deferred
// advances capture the session epoch at schedule time and re-check it when
// they fire, so a timer from a discarded mode session is a no-op.
type Session struct {
	id      string
	created time.Time
	catalog *geoquiz.Catalog
	sink    FeedbackSink

	mu           sync.Mutex
	gen          *Generator
	optionCount  int
	advanceDelay time.Duration
	mode         geoquiz.Mode
	status       geoquiz.Status
	question     *geoquiz.Question
	progress     *Progress
	recallTarget geoquiz.Entity
	highlighted  string
	epoch        uint64
	timer        *time.Timer
}

// NewSession creates a session and starts it in the given mode.
func NewSession(id string, catalog *geoquiz.Catalog, mode geoquiz.Mode, sink FeedbackSink, cfg SessionConfig) *Session {
	if cfg.OptionCount <= 0 {
		cfg.OptionCount = DefaultOptionCount
	}
	if cfg.AdvanceDelay <= 0 {
		cfg.AdvanceDelay = DefaultAdvanceDelay
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if sink == nil {
		sink = NopSink{}
	}

	s := &Session{
		id:           id,
		created:      time.Now(),
		catalog:      catalog,
		sink:         sink,
		gen:          NewGenerator(cfg.Rand),
		optionCount:  cfg.OptionCount,
		advanceDelay: cfg.AdvanceDelay,
	}
	s.SelectMode(mode)
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) CreatedAt() time.Time { return s.created }

// SelectMode switches the session to mode m. Progress and status reset and
// any pending deferred advance from the previous mode is cancelled via the
// epoch bump.
func (s *Session) SelectMode(m geoquiz.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	s.stopTimer()
	s.mode = m
	s.progress = NewProgress()
	s.recallTarget = nil
	s.generate()
}

// SubmitAnswer handles an identify-mode selection. Submissions outside
// identify mode, without an active question, or while feedback is showing
// are ignored: they only arise from double clicks and stale UI state.
func (s *Session) SubmitAnswer(option string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != geoquiz.ModeIdentify || !s.accepting() {
		return
	}
	s.settle(EvaluateIdentify(*s.question, option))
}

// SubmitClick handles a locate-mode map click. Clicks on already-found
// entities are not answers at all: no verdict, no feedback, no status
// change.
func (s *Session) SubmitClick(c Click) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != geoquiz.ModeLocate || !s.accepting() {
		return
	}
	if name := s.clickName(c); name != "" && s.progress.Has(name) {
		return
	}

	correct := EvaluateLocate(*s.question, c)
	if !correct {
		// Reveal the sought entity briefly so the player learns its place.
		s.highlighted = s.question.TargetID
	}
	s.settle(correct)
}

// SelectRecallTarget sets the active typed-recall target. Only valid in
// recall mode, while playing, for an entity not yet found.
func (s *Session) SelectRecallTarget(e geoquiz.Entity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != geoquiz.ModeRecall || s.status != geoquiz.StatusPlaying {
		return false
	}
	if s.progress.Has(e.DisplayName()) {
		return false
	}
	s.recallTarget = e
	return true
}

// SubmitRecall evaluates typed input against the active recall target and
// clears it. near reports an advisory close-miss on wrong answers.
func (s *Session) SubmitRecall(text string) (correct, near bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != geoquiz.ModeRecall || s.status != geoquiz.StatusPlaying || s.recallTarget == nil {
		return false, false
	}

	target := s.recallTarget
	s.recallTarget = nil

	correct = EvaluateRecall(target.DisplayName(), text)
	if !correct {
		near = RecallNear(target.DisplayName(), text)
	}
	s.settleEntity(correct, target.DisplayName())
	return correct, near
}

// CancelRecall clears the active recall target without evaluating.
func (s *Session) CancelRecall() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recallTarget = nil
}

// Snapshot returns a copy of the observable session state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{
		Mode:          s.mode,
		Status:        s.status,
		Score:         s.progress.Score(),
		FoundNames:    s.progress.FoundNames(),
		HighlightedID: s.highlighted,
		Remaining:     s.remaining(),
	}
	if s.question != nil {
		q := *s.question
		st.Question = &q
	}
	if s.recallTarget != nil {
		st.RecallTarget = &RecallTarget{
			Variant: s.recallTarget.EntityVariant(),
			Name:    s.recallTarget.DisplayName(),
		}
	}
	return st
}

// Close cancels any pending advance. The session is unusable afterwards
// except for Snapshot.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.stopTimer()
}

// clickName resolves the clicked entity's display name, falling back to the
// catalog when boundary data delivers only an id.
func (s *Session) clickName(c Click) string {
	if c.Name != "" {
		return c.Name
	}
	if c.ID == "" {
		return ""
	}
	switch c.Variant {
	case geoquiz.VariantSettlement:
		// Settlement ids are their display names.
		return c.ID
	case geoquiz.VariantRegion:
		if r, ok := s.catalog.RegionByID(c.ID); ok {
			return r.Name
		}
	}
	return ""
}

// accepting reports whether an answer can be evaluated right now.
// Called with the lock held, like every helper below.
func (s *Session) accepting() bool {
	return s.status == geoquiz.StatusPlaying && s.question != nil
}

// settle applies a verdict for the current question.
func (s *Session) settle(correct bool) {
	s.settleEntity(correct, s.question.TargetName)
}

// settleEntity records the verdict, signals feedback, and schedules the
// deferred advance to the next question.
func (s *Session) settleEntity(correct bool, entityName string) {
	if correct {
		s.status = geoquiz.StatusCorrect
		s.progress.RecordCorrect(entityName)
		s.sink.Correct()
	} else {
		s.status = geoquiz.StatusIncorrect
		s.sink.Incorrect()
	}
	s.scheduleAdvance()
}

// scheduleAdvance arms the deferred next-question timer. The closure
// captures the current epoch; a mode switch or Close in the interim bumps
// the epoch and the firing timer does nothing.
func (s *Session) scheduleAdvance() {
	s.stopTimer()
	epoch := s.epoch
	s.timer = time.AfterFunc(s.advanceDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.epoch != epoch {
			return
		}
		s.generate()
	})
}

// generate asks the generator for the next question and updates status and
// highlight. An exhausted pool is the terminal finished state.
func (s *Session) generate() {
	q, err := s.gen.Next(s.catalog, s.progress.Found(), s.mode, s.optionCount)
	if err != nil {
		s.status = geoquiz.StatusFinished
		s.question = nil
		s.highlighted = ""
		s.sink.Finished()
		return
	}

	s.question = &q
	s.status = geoquiz.StatusPlaying
	switch s.mode {
	case geoquiz.ModeLocate:
		// Highlighting the target would give the answer away.
		s.highlighted = ""
	default:
		s.highlighted = q.TargetID
	}
}

func (s *Session) stopTimer() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// remaining counts distinct un-found display names across both variants.
func (s *Session) remaining() int {
	n := 0
	seen := make(map[string]bool)
	for _, name := range s.catalog.RegionNames() {
		if !seen[name] && !s.progress.Has(name) {
			seen[name] = true
			n++
		}
	}
	for _, name := range s.catalog.SettlementNames() {
		if !seen[name] && !s.progress.Has(name) {
			seen[name] = true
			n++
		}
	}
	return n
}
