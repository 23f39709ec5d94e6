package triage

import "sort"

// DefaultTopPatterns is the number of most frequent messages reported.
const DefaultTopPatterns = 5

// PatternCount pairs a message with how often it occurred.
type PatternCount struct {
	Message string
	Count   int
}

// MessageFrequencies counts every message across classes, visiting each class's
// errors before its failures, in the order classes are given.
// The result is sorted by count descending; equal counts keep first-occurrence order.
func MessageFrequencies(classes []*ClassSummary) []PatternCount {
	index := make(map[string]int)
	var freqs []PatternCount

	count := func(message string) {
		if i, ok := index[message]; ok {
			freqs[i].Count++
			return
		}
		index[message] = len(freqs)
		freqs = append(freqs, PatternCount{Message: message, Count: 1})
	}

	for _, c := range classes {
		for _, o := range c.errors {
			count(o.Message)
		}
		for _, o := range c.failures {
			count(o.Message)
		}
	}

	sort.SliceStable(freqs, func(i, j int) bool {
		return freqs[i].Count > freqs[j].Count
	})
	return freqs
}

// CommonPatterns returns the recurring messages among the n most frequent.
// Messages seen only once are never included, even when fewer than n recur.
func CommonPatterns(freqs []PatternCount, n int) []PatternCount {
	if n > len(freqs) {
		n = len(freqs)
	}
	var common []PatternCount
	for _, p := range freqs[:max(n, 0)] {
		if p.Count > 1 {
			common = append(common, p)
		}
	}
	return common
}

// UniqueMessages returns the messages that occurred exactly once, in scan order.
func UniqueMessages(freqs []PatternCount) []string {
	var unique []string
	for _, p := range freqs {
		if p.Count == 1 {
			unique = append(unique, p.Message)
		}
	}
	return unique
}
