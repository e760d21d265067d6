// Package farm implements the farming game simulation: player motion,
// the two traders, the crop plot, the inventory ledger and the state
// machine that ties them together. It is driven one tick at a time and
// never blocks; questions for the player are queued as prompts.
package farm

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/core"
	"github.com/vovakirdan/tui-farm/internal/loop"
)

// PlantableCrops are the options offered when planting.
var PlantableCrops = []string{"Wheat", "Carrot", "Potato"}

// Game owns the whole simulation.
type Game struct {
	cfg   config.FarmConfig
	clock loop.Clock
	zones Zones

	player   *Player
	merchant *NPC
	farmer   *NPC
	plot     *CropPlot
	inv      Inventory

	// Update order and draw order differ
	updates []Entity
	draws   []Entity

	state       State
	active      *NPC // NPC in conversation
	clicks      int
	lastAdvance time.Time
	tradeOpen   bool

	prompts []pendingPrompt
	events  []Event

	ticks uint64
	won   bool
}

// New creates a game with a starting inventory.
func New(cfg config.FarmConfig, inv Inventory, clk loop.Clock) *Game {
	if clk == nil {
		clk = loop.SystemClock{}
	}
	tile := cfg.Tile()
	zones := NewZones(tile)
	g := &Game{
		cfg:      cfg,
		clock:    clk,
		zones:    zones,
		player:   NewPlayer(cfg),
		merchant: NewNPC(Merchant, tile, zones.Merchant, cfg.NPCAnimInterval()),
		farmer:   NewNPC(Farmer, tile, zones.Farmer, cfg.NPCAnimInterval()),
		plot:     NewCropPlot(cfg.StageDuration(), cfg.Crops.Yield),
		inv:      inv,
		state:    StatePlay,
	}
	g.updates = []Entity{g.player, g.merchant, g.plot, g.farmer}
	g.draws = []Entity{g.merchant, g.farmer, g.plot, g.player}
	return g
}

// Update runs one fixed-timestep tick.
func (g *Game) Update(in *core.Input) {
	now := g.clock.Now()
	g.ticks++

	if len(g.prompts) > 0 {
		g.updateModal(in)
		return
	}

	if in.Consume(core.KeyPause) {
		switch g.state {
		case StatePlay:
			g.state = StatePause
		case StatePause:
			g.state = StatePlay
		}
	}

	if g.state == StatePlay {
		t := &tickCtx{now: now, input: in, player: g.player}
		for _, e := range g.updates {
			e.Tick(t)
		}

		if in.Pressed(core.KeyInteract) {
			if npc := g.npcBeside(); npc != nil {
				in.Consume(core.KeyInteract)
				g.startDialogue(npc, now)
			}
		}
		if g.state == StatePlay && in.Consume(core.KeyInventory) {
			g.state = StateInventory
		}
	}

	if g.zones.Plot.Contains(g.player.Position()) && in.Consume(core.KeyInteract) {
		g.askPlot()
	}

	if in.Consume(core.KeyEscape) && g.state.Conversational() {
		g.endConversation()
	}

	if in.Consume(core.KeyInventory) && g.state == StateInventory {
		g.state = StatePlay
	}

	if g.state == StateDialogue {
		g.updateDialogue(in, now)
	}

	if g.state == StateTrade && !g.tradeOpen {
		g.openTrade()
	}

	// Clicks only mean something inside a dialogue.
	if g.state != StateDialogue {
		in.ConsumeClick()
		in.Consume(core.KeyEnter)
	}
}

// updateModal is the frozen tick while a prompt waits for an answer.
// Only Escape is honoured; it abandons any conversation.
func (g *Game) updateModal(in *core.Input) {
	if in.Consume(core.KeyEscape) && g.state.Conversational() {
		g.dropTradePrompts()
		g.endConversation()
	}
	in.Consume(core.KeyInteract)
	in.Consume(core.KeyInventory)
	in.ConsumeClick()
}

func (g *Game) npcBeside() *NPC {
	pos := g.player.Position()
	switch {
	case g.zones.Merchant.Contains(pos):
		return g.merchant
	case g.zones.Farmer.Contains(pos):
		return g.farmer
	}
	return nil
}

func (g *Game) startDialogue(npc *NPC, now time.Time) {
	npc.Speak()
	g.active = npc
	g.clicks = 0
	g.lastAdvance = now
	g.state = StateDialogue
}

func (g *Game) updateDialogue(in *core.Input, now time.Time) {
	clicked := in.ConsumeClick()
	if in.Consume(core.KeyEnter) {
		clicked = true
	}
	if clicked {
		if now.Sub(g.lastAdvance) >= g.cfg.DialogueDelay() {
			g.active.Advance()
			g.clicks++
			g.lastAdvance = now
		}
		return
	}
	if g.clicks > 2 {
		g.clicks = 0
		g.state = StateTrade
	}
}

func (g *Game) endConversation() {
	g.state = StatePlay
	g.active = nil
	g.clicks = 0
	g.tradeOpen = false
}

func (g *Game) askPlot() {
	if g.plot.Planted() {
		g.push(pendingPrompt{
			Prompt: Prompt{
				Kind:    PromptConfirm,
				Title:   "Crop Plot",
				Message: "Would you like to harvest the crop?",
			},
			step: stepHarvest,
		})
		return
	}
	g.push(pendingPrompt{
		Prompt: Prompt{
			Kind:    PromptChoice,
			Title:   "Crop Plot",
			Message: "Would you like to plant a crop?",
			Options: PlantableCrops,
		},
		step: stepPlant,
	})
}

func (g *Game) answerHarvest(r Response) {
	if !r.Yes {
		return
	}
	item, n, err := g.plot.Harvest()
	if err != nil {
		g.Notify("Crops aren't ready yet!", "Try harvesting later!")
		return
	}
	g.inv.Add(item, n)
	g.record(EventHarvest, fmt.Sprintf("%d %s", n, item), 0)
}

func (g *Game) answerPlant(r Response) {
	if r.Cancelled {
		return
	}
	kind, ok := parseCrop(r.Option)
	if !ok {
		return
	}
	if err := g.inv.Remove(kind.Seed(), 1); err != nil {
		g.deny(err)
		return
	}
	if err := g.plot.Plant(kind, g.clock.Now()); err != nil {
		// Plot filled while the choice was open; return the seed.
		g.inv.Add(kind.Seed(), 1)
		return
	}
	g.record(EventPlant, kind.String(), 0)
}

func parseCrop(s string) (CropKind, bool) {
	switch s {
	case "Wheat":
		return CropWheat, true
	case "Carrot":
		return CropCarrot, true
	case "Potato":
		return CropPotato, true
	}
	return CropNone, false
}

func (g *Game) openTrade() {
	g.tradeOpen = true
	npc := g.active
	if npc == nil {
		g.endConversation()
		return
	}
	g.push(pendingPrompt{
		Prompt: Prompt{
			Kind:    PromptChoice,
			Title:   npc.Kind().String() + "'s Trading Menu",
			Message: "Choose an item to trade:",
			Options: Labels(npc.Offers()),
		},
		step:  stepTradeMenu,
		trade: true,
	})
}

func (g *Game) answerTradeMenu(r Response) {
	npc := g.active
	if npc == nil {
		return
	}
	offer, ok := FindOffer(npc.Offers(), r.Option)
	if r.Cancelled || !ok {
		g.closeTrade("No item selected.")
		return
	}

	title, verb := "Confirm Purchase", "buy it"
	if npc.Kind() == Farmer {
		title, verb = "Confirm Trade", "trade"
	}
	g.push(pendingPrompt{
		Prompt: Prompt{
			Kind:    PromptConfirm,
			Title:   title,
			Message: fmt.Sprintf("You selected: %s. Do you want to %s?", offer.Label, verb),
		},
		step:  stepTradeConfirm,
		offer: offer,
		trade: true,
	})
}

func (g *Game) answerTradeConfirm(offer Offer, r Response) {
	if !r.Yes {
		g.closeTrade("Transaction canceled.")
		return
	}
	g.endConversation()

	if offer.Effect == EffectBoost && g.plot.Duration()-g.cfg.Boost() < g.cfg.MinStageDuration() {
		g.Notify("Denied!", "The soil can't get any richer!")
		g.record(EventRejected, offer.Label, 0)
		return
	}

	if err := g.inv.Exchange(offer.Cost, offer.Gain); err != nil {
		g.deny(err)
		g.record(EventRejected, offer.Label, 0)
		return
	}

	switch offer.Effect {
	case EffectBoost:
		// Floor checked above, so this cannot fail.
		_ = g.plot.Boost(g.cfg.Boost(), g.cfg.MinStageDuration())
		g.record(EventBoost, offer.Label, offer.goldDelta())
		g.Notify("", "You obtained: "+offer.Receipt)
	case EffectTrophy:
		g.won = true
		g.record(EventTrophy, offer.Label, offer.goldDelta())
		g.Notify("CONGRATS!", offer.Receipt)
	default:
		g.record(EventTrade, offer.Label, offer.goldDelta())
		g.Notify("", "You obtained: "+offer.Receipt)
	}
}

func (g *Game) closeTrade(message string) {
	g.endConversation()
	g.Notify("", message)
}

// deny reports a missing item the way every rejected exchange does.
func (g *Game) deny(err error) {
	var short *InsufficientError
	if errors.As(err, &short) {
		g.Notify("Denied!", "You don't have enough "+short.Item.String())
		return
	}
	g.Notify("Denied!", err.Error())
}

// State returns the active game state.
func (g *Game) State() State { return g.state }

// Inventory returns a copy of the inventory.
func (g *Game) Inventory() Inventory { return g.inv }

// Player returns the player.
func (g *Game) Player() *Player { return g.player }

// Merchant returns the seed trader.
func (g *Game) Merchant() *NPC { return g.merchant }

// Farmer returns the crop trader.
func (g *Game) Farmer() *NPC { return g.farmer }

// Plot returns the crop plot.
func (g *Game) Plot() *CropPlot { return g.plot }

// ActiveNPC returns the NPC in conversation, or nil.
func (g *Game) ActiveNPC() *NPC { return g.active }

// Won reports whether the trophy has been bought.
func (g *Game) Won() bool { return g.won }

// Ticks returns the number of updates run.
func (g *Game) Ticks() uint64 { return g.ticks }
