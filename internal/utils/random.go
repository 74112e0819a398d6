// Package utils holds small helpers shared by the UI packages.
package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

var randomAdjectives = []string{
	"brave", "bright", "calm", "clever", "eager", "gentle", "keen", "lively",
	"merry", "nimble", "quiet", "spry", "steady", "swift", "vivid", "witty",
}

var randomNouns = []string{
	"draft", "idea", "jotting", "lantern", "ledger", "meadow", "memo", "musing",
	"otter", "quill", "raven", "sketch", "spruce", "thistle", "tide", "willow",
}

// RandomName returns an adjective-noun name such as "calm-quill", used to
// suggest names for new scratch files and folders.
func RandomName() string {
	return fmt.Sprintf("%s-%s", randomWord(randomAdjectives), randomWord(randomNouns))
}

func randomWord(list []string) string {
	if len(list) == 0 {
		return ""
	}
	idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return list[0]
	}
	return list[int(idx.Int64())]
}
