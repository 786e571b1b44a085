package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

// Damage lowers health, never below zero.
func (h *HealthData) Damage(n int) {
	h.Current = max(h.Current-n, 0)
}

// Dead reports whether health is exhausted.
func (h *HealthData) Dead() bool {
	return h.Current <= 0
}

var Health = donburi.NewComponentType[HealthData]()
