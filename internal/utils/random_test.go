package utils

import (
	"slices"
	"strings"
	"testing"
)

func TestRandomName(t *testing.T) {
	for range 20 {
		name := RandomName()
		adjective, noun, ok := strings.Cut(name, "-")
		if !ok {
			t.Fatalf("expected adjective-noun, got %q", name)
		}
		if !slices.Contains(randomAdjectives, adjective) {
			t.Errorf("unexpected adjective %q", adjective)
		}
		if !slices.Contains(randomNouns, noun) {
			t.Errorf("unexpected noun %q", noun)
		}
	}
}

func TestRandomWordEmpty(t *testing.T) {
	if got := randomWord(nil); got != "" {
		t.Fatalf("expected empty word, got %q", got)
	}
}
