package farm

// Effect is a side effect of an offer beyond the item exchange.
type Effect int

const (
	EffectNone   Effect = iota
	EffectBoost         // Shorten the crop stage duration
	EffectTrophy        // Win the game
)

// Offer is one row of an NPC's price table.
type Offer struct {
	Label   string // Shown in the trade menu
	Receipt string // Shown after a successful trade
	Cost    []Stack
	Gain    []Stack
	Effect  Effect
}

// MerchantOffers are the seeds sold by the Merchant.
var MerchantOffers = []Offer{
	{
		Label:   "Wheat Seed - 10 Gold",
		Receipt: "Wheat Seed - 10 Gold",
		Cost:    []Stack{{Gold, 10}},
		Gain:    []Stack{{WheatSeeds, 1}},
	},
	{
		Label:   "Carrot Seed - 40 Gold",
		Receipt: "Carrot Seed - 40 Gold",
		Cost:    []Stack{{Gold, 40}},
		Gain:    []Stack{{CarrotSeeds, 1}},
	},
	{
		Label:   "Potato Seed - 100 Gold",
		Receipt: "Potato Seed - 100 Gold",
		Cost:    []Stack{{Gold, 100}},
		Gain:    []Stack{{PotatoSeeds, 1}},
	},
}

// FarmerOffers are the Farmer's crop purchases and upgrades.
var FarmerOffers = []Offer{
	{
		Label:   "20 Gold - 20 Wheat",
		Receipt: "20 Gold",
		Cost:    []Stack{{Wheat, 20}},
		Gain:    []Stack{{Gold, 20}},
	},
	{
		Label:   "50 Gold - 10 Carrots",
		Receipt: "50 Gold",
		Cost:    []Stack{{Carrots, 10}},
		Gain:    []Stack{{Gold, 50}},
	},
	{
		Label:   "150 Gold - 20 Potatoes",
		Receipt: "150 Gold",
		Cost:    []Stack{{Potatoes, 20}},
		Gain:    []Stack{{Gold, 150}},
	},
	{
		Label:   "Soil Nutrients - 50 Gold",
		Receipt: "Soil Nutrients - Growth time improved",
		Cost:    []Stack{{Gold, 50}},
		Effect:  EffectBoost,
	},
	{
		Label:   "SILVER TROPHY - 1000 GOLD",
		Receipt: "You've Successfully Completed the Game! Congrats!",
		Cost:    []Stack{{Gold, 1000}},
		Effect:  EffectTrophy,
	},
}

// Labels returns the menu labels of a price table.
func Labels(offers []Offer) []string {
	labels := make([]string, len(offers))
	for i, o := range offers {
		labels[i] = o.Label
	}
	return labels
}

// FindOffer looks up an offer by label.
func FindOffer(offers []Offer, label string) (Offer, bool) {
	for _, o := range offers {
		if o.Label == label {
			return o, true
		}
	}
	return Offer{}, false
}

// goldDelta returns the net gold change of an offer.
func (o Offer) goldDelta() int {
	delta := 0
	for _, s := range o.Gain {
		if s.Item == Gold {
			delta += s.Count
		}
	}
	for _, s := range o.Cost {
		if s.Item == Gold {
			delta -= s.Count
		}
	}
	return delta
}
