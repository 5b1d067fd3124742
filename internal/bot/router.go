package bot

// Outcome names the branch that produced a decision.
type Outcome string

const (
	OutcomeMenu           Outcome = "menu"
	OutcomeAnswer         Outcome = "answer"
	OutcomeUnknownCommand Outcome = "unknown_command"
	OutcomeFallback       Outcome = "fallback"
)

// Fallbacks are the handlers used when no menu entry matches.
type Fallbacks struct {
	Answer         Handler
	UnknownCommand Handler
	Text           Handler
}

type Decision struct {
	Outcome Outcome
	// Label is the matched menu label or command, empty otherwise.
	Label string
	Reply Reply
	// Question holds the user's answer when Outcome is OutcomeAnswer.
	Question string
}

type Router struct {
	menu      *Menu
	sessions  *SessionStore
	fallbacks Fallbacks
}

func NewRouter(menu *Menu, sessions *SessionStore, fallbacks Fallbacks) *Router {
	return &Router{
		menu:      menu,
		sessions:  sessions,
		fallbacks: fallbacks,
	}
}

// Route picks exactly one handler for msg and applies its transition.
// It returns false for non-text messages, which get no reply.
//
// Order: menu labels and commands, then a pending answer, then unknown
// commands, then plain text. Menu matches leave the session untouched.
func (r *Router) Route(msg Message) (Decision, bool) {
	if !msg.HasText() {
		return Decision{}, false
	}
	text := *msg.Text

	if h, label, ok := r.menu.Lookup(text); ok {
		res := h(msg)
		r.apply(msg.SenderID, res.Transition)
		return Decision{Outcome: OutcomeMenu, Label: label, Reply: res.Reply}, true
	}

	if r.sessions.ClearAwaiting(msg.SenderID) {
		res := r.fallbacks.Answer(msg)
		r.apply(msg.SenderID, res.Transition)
		return Decision{Outcome: OutcomeAnswer, Reply: res.Reply, Question: text}, true
	}

	if msg.IsCommand() {
		res := r.fallbacks.UnknownCommand(msg)
		r.apply(msg.SenderID, res.Transition)
		return Decision{Outcome: OutcomeUnknownCommand, Reply: res.Reply}, true
	}

	res := r.fallbacks.Text(msg)
	r.apply(msg.SenderID, res.Transition)
	return Decision{Outcome: OutcomeFallback, Reply: res.Reply}, true
}

func (r *Router) Sessions() *SessionStore {
	return r.sessions
}

func (r *Router) apply(userID int64, t Transition) {
	if t == TransitionAwait {
		r.sessions.SetAwaiting(userID)
	}
}
