// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

// Podium glyphs for the first three places
const (
	GoldMedal   = "🥇"
	SilverMedal = "🥈"
	BronzeMedal = "🥉"
)

// PodiumIcon returns the medal for rank 1, 2 or 3 and "" for any other rank
func PodiumIcon(rank int) string {
	switch rank {
	case 1:
		return GoldMedal
	case 2:
		return SilverMedal
	case 3:
		return BronzeMedal
	default:
		return ""
	}
}

// Tier is the visual style of a winner entry
type Tier int

const (
	TierGold Tier = iota + 1
	TierSilver
	TierBronze
)

// TierFor maps rank 1 to gold, rank 2 to silver and every other rank to
// bronze, including ranks past the podium and invalid ones.
func TierFor(rank int) Tier {
	switch rank {
	case 1:
		return TierGold
	case 2:
		return TierSilver
	default:
		return TierBronze
	}
}

func (t Tier) Class() string {
	switch t {
	case TierGold:
		return "bg-yellow-600 bg-opacity-20 border border-yellow-600 border-opacity-30"
	case TierSilver:
		return "bg-gray-400 bg-opacity-20 border border-gray-400 border-opacity-30"
	default:
		return "bg-orange-700 bg-opacity-20 border border-orange-700 border-opacity-30"
	}
}
