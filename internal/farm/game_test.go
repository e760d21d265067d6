package farm

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-farm/internal/config"
	"github.com/vovakirdan/tui-farm/internal/core"
	"github.com/vovakirdan/tui-farm/internal/loop"
)

// Player positions inside each interaction zone.
var (
	atMerchant = core.Point{X: 50, Y: 50}
	atFarmer   = core.Point{X: 500, Y: 100}
	atPlot     = core.Point{X: 100, Y: 300}
)

type harness struct {
	t   *testing.T
	g   *Game
	in  *core.Input
	clk *loop.ManualClock
}

func newHarness(t *testing.T, inv Inventory) *harness {
	t.Helper()
	clk := loop.NewManualClock(epoch)
	return &harness{
		t:   t,
		g:   New(config.DefaultFarmConfig(), inv, clk),
		in:  core.NewInput(),
		clk: clk,
	}
}

// tick advances the clock by one frame and runs an update.
func (h *harness) tick() {
	h.clk.Advance(16 * time.Millisecond)
	h.g.Update(h.in)
}

func (h *harness) place(p core.Point) {
	h.g.player.pos = p
}

func (h *harness) press(k core.Key) {
	h.in.Press(k)
	h.tick()
	h.in.Release(k)
}

func (h *harness) click() {
	h.clk.Advance(150 * time.Millisecond)
	h.in.Click()
	h.g.Update(h.in)
}

func (h *harness) prompt() Prompt {
	h.t.Helper()
	p, ok := h.g.Prompt()
	if !ok {
		h.t.Fatal("expected a pending prompt")
	}
	return p
}

func (h *harness) expectNotice(message string) {
	h.t.Helper()
	p := h.prompt()
	if p.Kind != PromptNotice || p.Message != message {
		h.t.Fatalf("prompt = %+v, expected notice %q", p, message)
	}
	h.g.Answer(Response{})
}

func (h *harness) expectState(s State) {
	h.t.Helper()
	if h.g.State() != s {
		h.t.Fatalf("state = %s, expected %s", h.g.State(), s)
	}
}

// openTrade walks an NPC conversation up to its trade menu.
func (h *harness) openTrade(at core.Point) Prompt {
	h.t.Helper()
	h.place(at)
	h.press(core.KeyInteract)
	h.expectState(StateDialogue)
	for range 3 {
		h.click()
	}
	h.tick()
	h.expectState(StateTrade)
	p := h.prompt()
	if p.Kind != PromptChoice {
		h.t.Fatalf("expected trade menu, got %+v", p)
	}
	return p
}

func (h *harness) buy(at core.Point, label string) {
	h.t.Helper()
	h.openTrade(at)
	h.g.Answer(Response{Option: label})
	p := h.prompt()
	if p.Kind != PromptConfirm {
		h.t.Fatalf("expected confirmation, got %+v", p)
	}
	h.g.Answer(Response{Yes: true})
}

func TestPauseToggle(t *testing.T) {
	h := newHarness(t, DefaultInventory())
	h.press(core.KeyPause)
	h.expectState(StatePause)

	h.in.Press(core.KeyRight)
	h.tick()
	if h.g.Player().Position().X != 384 {
		t.Error("player moved while paused")
	}
	h.in.Release(core.KeyRight)

	h.press(core.KeyPause)
	h.expectState(StatePlay)
}

func TestDialogueNeedsThreeClicks(t *testing.T) {
	h := newHarness(t, DefaultInventory())
	h.place(atMerchant)
	h.press(core.KeyInteract)
	h.expectState(StateDialogue)
	if s := h.g.Snapshot(); s.ActiveNPC != "Merchant" || s.DialogueLine != "Hello! I'm a merchant." {
		t.Fatalf("snapshot = %+v", s)
	}

	h.click()
	h.click()
	if line := h.g.ActiveNPC().Line(); line != "Would you like to buy something?" {
		t.Errorf("line after two clicks = %q", line)
	}
	h.tick()
	h.tick()
	h.expectState(StateDialogue)

	h.click()
	h.expectState(StateDialogue)
	h.tick()
	h.expectState(StateTrade)
	p := h.prompt()
	if p.Title != "Merchant's Trading Menu" || len(p.Options) != 3 {
		t.Errorf("trade menu = %+v", p)
	}
}

func TestDialogueIgnoresFastClicks(t *testing.T) {
	h := newHarness(t, DefaultInventory())
	h.place(atFarmer)
	h.press(core.KeyInteract)
	h.expectState(StateDialogue)

	h.click()
	for range 5 {
		h.clk.Advance(10 * time.Millisecond)
		h.in.Click()
		h.g.Update(h.in)
	}
	if s := h.g.Snapshot(); s.Clicks != 1 {
		t.Errorf("clicks = %d, expected 1", s.Clicks)
	}
}

func TestInteractAwayFromNPCs(t *testing.T) {
	h := newHarness(t, DefaultInventory())
	h.press(core.KeyInteract)
	h.expectState(StatePlay)
	if _, ok := h.g.Prompt(); ok {
		t.Error("no prompt expected in open field")
	}
}

func TestBuySeed(t *testing.T) {
	h := newHarness(t, DefaultInventory())
	h.openTrade(atMerchant)
	h.g.Answer(Response{Option: "Wheat Seed - 10 Gold"})
	p := h.prompt()
	if p.Message != "You selected: Wheat Seed - 10 Gold. Do you want to buy it?" {
		t.Errorf("confirm message = %q", p.Message)
	}
	h.g.Answer(Response{Yes: true})

	h.expectNotice("You obtained: Wheat Seed - 10 Gold")
	h.expectState(StatePlay)
	inv := h.g.Inventory()
	if inv.Count(Gold) != 10 || inv.Count(WheatSeeds) != 1 {
		t.Errorf("inventory = %v", inv)
	}

	events := h.g.DrainEvents()
	if len(events) != 1 || events[0].Kind != EventTrade || events[0].GoldDelta != -10 {
		t.Errorf("events = %+v", events)
	}
	if h.g.DrainEvents() != nil {
		t.Error("events should drain once")
	}
}

func TestBuyWithoutGold(t *testing.T) {
	h := newHarness(t, Inventory{})
	h.buy(atMerchant, "Wheat Seed - 10 Gold")
	h.expectNotice("You don't have enough Gold")
	h.expectState(StatePlay)
	if h.g.Inventory() != (Inventory{}) {
		t.Errorf("rejected trade changed inventory: %v", h.g.Inventory())
	}
	events := h.g.DrainEvents()
	if len(events) != 1 || events[0].Kind != EventRejected {
		t.Errorf("events = %+v", events)
	}
}

func TestTradeCancelled(t *testing.T) {
	h := newHarness(t, DefaultInventory())
	h.openTrade(atMerchant)
	h.g.Answer(Response{Cancelled: true})
	h.expectNotice("No item selected.")
	h.expectState(StatePlay)

	h.openTrade(atMerchant)
	h.g.Answer(Response{Option: "Carrot Seed - 40 Gold"})
	h.g.Answer(Response{Yes: false})
	h.expectNotice("Transaction canceled.")
	h.expectState(StatePlay)
	if h.g.Inventory() != DefaultInventory() {
		t.Errorf("inventory = %v", h.g.Inventory())
	}
}

func TestEscapeDuringTradePrompt(t *testing.T) {
	h := newHarness(t, DefaultInventory())
	h.openTrade(atMerchant)
	h.press(core.KeyEscape)
	h.expectState(StatePlay)
	if n := h.g.PendingPrompts(); n != 0 {
		t.Errorf("pending prompts = %d, expected 0", n)
	}
	if h.g.ActiveNPC() != nil {
		t.Error("conversation should be closed")
	}
}

func TestEscapeKeepsOtherNotices(t *testing.T) {
	h := newHarness(t, DefaultInventory())
	h.openTrade(atMerchant)
	h.g.Notify("Save", "Could not read save file")
	h.press(core.KeyEscape)
	h.expectState(StatePlay)
	h.expectNotice("Could not read save file")
}

func TestFarmerSale(t *testing.T) {
	h := newHarness(t, Inventory{0, 20})
	h.openTrade(atFarmer)
	h.g.Answer(Response{Option: "20 Gold - 20 Wheat"})
	if p := h.prompt(); p.Message != "You selected: 20 Gold - 20 Wheat. Do you want to trade?" {
		t.Errorf("confirm message = %q", p.Message)
	}
	h.g.Answer(Response{Yes: true})
	h.expectNotice("You obtained: 20 Gold")
	if inv := h.g.Inventory(); inv.Count(Gold) != 20 || inv.Count(Wheat) != 0 {
		t.Errorf("inventory = %v", inv)
	}
}

func TestFarmerSaleShort(t *testing.T) {
	h := newHarness(t, Inventory{0, 0, 9})
	h.buy(atFarmer, "50 Gold - 10 Carrots")
	h.expectNotice("You don't have enough Carrots")
	if h.g.Inventory() != (Inventory{0, 0, 9}) {
		t.Errorf("inventory = %v", h.g.Inventory())
	}
}

func TestSoilNutrients(t *testing.T) {
	h := newHarness(t, Inventory{120})
	h.buy(atFarmer, "Soil Nutrients - 50 Gold")
	h.expectNotice("You obtained: Soil Nutrients - Growth time improved")
	if d := h.g.Plot().Duration(); d != 9500*time.Millisecond {
		t.Errorf("stage duration = %v, expected 9.5s", d)
	}
	if h.g.Inventory().Count(Gold) != 70 {
		t.Errorf("gold = %d", h.g.Inventory().Count(Gold))
	}
}

func TestSoilNutrientsAtFloor(t *testing.T) {
	h := newHarness(t, Inventory{120})
	h.g.plot.duration = 1200 * time.Millisecond
	h.buy(atFarmer, "Soil Nutrients - 50 Gold")
	p := h.prompt()
	if !strings.Contains(p.Message, "richer") {
		t.Errorf("notice = %q", p.Message)
	}
	h.g.Answer(Response{})
	if h.g.Inventory().Count(Gold) != 120 {
		t.Error("rejected boost must not charge gold")
	}
	if h.g.Plot().Duration() != 1200*time.Millisecond {
		t.Errorf("duration = %v", h.g.Plot().Duration())
	}
}

func TestTrophy(t *testing.T) {
	h := newHarness(t, Inventory{1000})
	h.buy(atFarmer, "SILVER TROPHY - 1000 GOLD")
	h.expectNotice("You've Successfully Completed the Game! Congrats!")
	if !h.g.Won() {
		t.Error("trophy should win the game")
	}
	events := h.g.DrainEvents()
	if len(events) != 1 || events[0].Kind != EventTrophy || events[0].GoldDelta != -1000 {
		t.Errorf("events = %+v", events)
	}

	// The game keeps running.
	h.in.Press(core.KeyDown)
	h.tick()
	if !h.g.Player().Moving() {
		t.Error("game should continue after winning")
	}
}

func TestPlantAndHarvest(t *testing.T) {
	h := newHarness(t, Inventory{0, 0, 0, 0, 1})
	h.place(atPlot)
	h.press(core.KeyInteract)
	p := h.prompt()
	if p.Kind != PromptChoice || p.Message != "Would you like to plant a crop?" {
		t.Fatalf("prompt = %+v", p)
	}
	h.g.Answer(Response{Option: "Wheat"})
	if h.g.Plot().Stage() != StageBaby || h.g.Inventory().Count(WheatSeeds) != 0 {
		t.Fatalf("stage=%s seeds=%d", h.g.Plot().Stage(), h.g.Inventory().Count(WheatSeeds))
	}

	// Too early.
	h.press(core.KeyInteract)
	if p := h.prompt(); p.Message != "Would you like to harvest the crop?" {
		t.Fatalf("prompt = %+v", p)
	}
	h.g.Answer(Response{Yes: true})
	h.expectNotice("Try harvesting later!")

	h.clk.Advance(10001 * time.Millisecond)
	h.g.Update(h.in)
	h.expectStage(StageGrowing)
	h.clk.Advance(10001 * time.Millisecond)
	h.g.Update(h.in)
	h.expectStage(StageGrown)

	h.press(core.KeyInteract)
	h.g.Answer(Response{Yes: true})
	if h.g.Inventory().Count(Wheat) != 20 {
		t.Errorf("wheat = %d, expected 20", h.g.Inventory().Count(Wheat))
	}
	if h.g.Plot().Planted() {
		t.Error("plot should be empty after harvest")
	}

	kinds := []EventKind{}
	for _, e := range h.g.DrainEvents() {
		kinds = append(kinds, e.Kind)
	}
	if len(kinds) != 2 || kinds[0] != EventPlant || kinds[1] != EventHarvest {
		t.Errorf("events = %v", kinds)
	}
}

func (h *harness) expectStage(s Stage) {
	h.t.Helper()
	if h.g.Plot().Stage() != s {
		h.t.Fatalf("stage = %s, expected %s", h.g.Plot().Stage(), s)
	}
}

func TestPlantWithoutSeeds(t *testing.T) {
	h := newHarness(t, DefaultInventory())
	h.place(atPlot)
	h.press(core.KeyInteract)
	h.g.Answer(Response{Option: "Wheat"})
	h.expectNotice("You don't have enough Wheat Seeds")
	if h.g.Plot().Planted() {
		t.Error("plot should stay empty")
	}

	h.press(core.KeyInteract)
	h.g.Answer(Response{Option: "Potato"})
	h.expectNotice("You don't have enough Potato Seeds")
}

func TestHarvestDeclined(t *testing.T) {
	h := newHarness(t, Inventory{0, 0, 0, 0, 1})
	h.place(atPlot)
	h.press(core.KeyInteract)
	h.g.Answer(Response{Option: "Wheat"})
	h.press(core.KeyInteract)
	h.g.Answer(Response{Yes: false})
	if _, ok := h.g.Prompt(); ok {
		t.Error("declining a harvest should not queue a notice")
	}
}

func TestPromptFreezesSimulation(t *testing.T) {
	h := newHarness(t, Inventory{0, 0, 0, 0, 1})
	h.place(atPlot)
	h.press(core.KeyInteract)
	h.g.Answer(Response{Option: "Wheat"})

	h.g.Notify("Hello", "Modal")
	h.clk.Advance(30 * time.Second)
	h.in.Press(core.KeyRight)
	h.g.Update(h.in)
	h.expectStage(StageBaby)
	if h.g.Player().Position() != atPlot {
		t.Error("player moved while a prompt was pending")
	}

	// Wall-clock growth jumps one stage once the prompt closes.
	h.g.Answer(Response{})
	h.g.Update(h.in)
	h.expectStage(StageGrowing)
}

func TestInventoryToggle(t *testing.T) {
	h := newHarness(t, DefaultInventory())
	h.press(core.KeyInventory)
	h.expectState(StateInventory)
	h.press(core.KeyInventory)
	h.expectState(StatePlay)

	h.press(core.KeyInventory)
	h.press(core.KeyEscape)
	h.expectState(StatePlay)
}

func TestPauseIgnoredOutsidePlay(t *testing.T) {
	h := newHarness(t, DefaultInventory())
	h.press(core.KeyInventory)
	h.press(core.KeyPause)
	h.expectState(StateInventory)
}

func TestNPCAnimation(t *testing.T) {
	h := newHarness(t, DefaultInventory())
	h.tick()
	if h.g.Merchant().Frame() != 1 {
		t.Fatal("expected frame 1")
	}
	h.clk.Advance(500 * time.Millisecond)
	h.g.Update(h.in)
	if h.g.Merchant().Frame() != 2 || h.g.Farmer().Frame() != 2 {
		t.Errorf("frames = %d/%d, expected 2/2", h.g.Merchant().Frame(), h.g.Farmer().Frame())
	}

	h.place(atMerchant)
	h.tick()
	if !h.g.Merchant().Near() || h.g.Farmer().Near() {
		t.Error("proximity flags wrong")
	}
}

func TestZonesAreOpen(t *testing.T) {
	z := NewZones(48)
	tests := []struct {
		name string
		zone func() bool
		want bool
	}{
		{"merchant inside", func() bool { return z.Merchant.Contains(core.Point{X: 1, Y: 1}) }, true},
		{"merchant origin", func() bool { return z.Merchant.Contains(core.Point{X: 0, Y: 10}) }, false},
		{"merchant far edge", func() bool { return z.Merchant.Contains(core.Point{X: 96, Y: 10}) }, false},
		{"farmer inside", func() bool { return z.Farmer.Contains(core.Point{X: 481, Y: 49}) }, true},
		{"farmer edge", func() bool { return z.Farmer.Contains(core.Point{X: 624, Y: 100}) }, false},
		{"plot half tile", func() bool { return z.Plot.Contains(core.Point{X: 24, Y: 300}) }, false},
		{"plot just inside", func() bool { return z.Plot.Contains(core.Point{X: 25, Y: 300}) }, true},
		{"plot bottom", func() bool { return z.Plot.Contains(core.Point{X: 100, Y: 480}) }, false},
	}
	for _, tt := range tests {
		if got := tt.zone(); got != tt.want {
			t.Errorf("%s: Contains = %v, expected %v", tt.name, got, tt.want)
		}
	}
}
