package farm

// PromptKind selects how the platform presents a prompt.
type PromptKind int

const (
	PromptNotice  PromptKind = iota // Message with a single dismiss action
	PromptConfirm                   // Yes/No question
	PromptChoice                    // Pick one option or cancel
)

// String returns the prompt kind name.
func (k PromptKind) String() string {
	switch k {
	case PromptConfirm:
		return "confirm"
	case PromptChoice:
		return "choice"
	default:
		return "notice"
	}
}

// Prompt is a modal request from the game to the player.
type Prompt struct {
	Kind    PromptKind
	Title   string
	Message string
	Options []string // PromptChoice only
}

// Response answers the head prompt.
type Response struct {
	Option    string // Chosen option for PromptChoice
	Yes       bool   // PromptConfirm
	Cancelled bool   // Dismissed without an answer
}

// promptStep identifies what the game does with the answer.
type promptStep int

const (
	stepNotice promptStep = iota
	stepHarvest
	stepPlant
	stepTradeMenu
	stepTradeConfirm
)

type pendingPrompt struct {
	Prompt
	step  promptStep
	offer Offer
	trade bool // Belongs to an NPC conversation
}

// Prompt returns the active prompt, if any.
func (g *Game) Prompt() (Prompt, bool) {
	if len(g.prompts) == 0 {
		return Prompt{}, false
	}
	return g.prompts[0].Prompt, true
}

// PendingPrompts returns the number of queued prompts.
func (g *Game) PendingPrompts() int {
	return len(g.prompts)
}

// Notify queues an informational notice.
func (g *Game) Notify(title, message string) {
	g.push(pendingPrompt{Prompt: Prompt{Kind: PromptNotice, Title: title, Message: message}})
}

func (g *Game) push(p pendingPrompt) {
	g.prompts = append(g.prompts, p)
}

// Answer resolves the head prompt. It does nothing when no prompt is pending.
func (g *Game) Answer(r Response) {
	if len(g.prompts) == 0 {
		return
	}
	p := g.prompts[0]
	g.prompts = g.prompts[1:]

	switch p.step {
	case stepHarvest:
		g.answerHarvest(r)
	case stepPlant:
		g.answerPlant(r)
	case stepTradeMenu:
		g.answerTradeMenu(r)
	case stepTradeConfirm:
		g.answerTradeConfirm(p.offer, r)
	}
}

// dropTradePrompts removes every queued prompt that belongs to a conversation.
func (g *Game) dropTradePrompts() {
	kept := g.prompts[:0]
	for _, p := range g.prompts {
		if !p.trade {
			kept = append(kept, p)
		}
	}
	g.prompts = kept
}
