// Package domain contains the core entities of the vocabulary trainer:
// words, their per-learner scheduling state, response quality grades, and
// daily study counters. It is independent of any storage or delivery
// mechanism; the srs subpackage holds the scheduling algorithm itself.
package domain
