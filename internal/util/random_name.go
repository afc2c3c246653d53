package util

import (
	"fmt"
	"math/rand"
	"time"
)

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

var adjectives = []string{
	"Lucky", "Golden", "Velvet", "Midnight", "Silver", "Royal", "Neon", "Smoky",
	"Emerald", "Crimson", "High-Roller", "Double-Down", "Soft", "Wild", "Grand",
	"Electric", "Marble", "Copper", "Ivory", "Diamond",
}

var nouns = []string{
	"Table", "Felt", "Shoe", "Parlor", "Pit", "Lounge", "Salon", "Corner",
	"Deck", "Deal", "Draw", "Cut", "Stack", "Chip", "Ace", "Spade",
}

// GetRandomName returns a random table name by combining an adjective with a noun
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	nounsIndex := random.Intn(len(nouns))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], nouns[nounsIndex])
}
