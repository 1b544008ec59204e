package domain

import "time"

// SubscriptionState é o estado derivado de acesso de uma conta
type SubscriptionState string

const (
	StateActiveTrial      SubscriptionState = "active_trial"
	StateActiveSubscribed SubscriptionState = "active_subscribed"
	StateExpiredReadOnly  SubscriptionState = "expired_read_only"
)

// TrialStatus é sempre recalculado a partir de RegisteredAt e IsSubscribed
type TrialStatus struct {
	IsTrialActive bool              `json:"is_trial_active"`
	DaysRemaining int               `json:"days_remaining"`
	TrialEndDate  time.Time         `json:"trial_end_date"`
	IsSubscribed  bool              `json:"is_subscribed"`
	State         SubscriptionState `json:"state"`
	ExpiringSoon  bool              `json:"expiring_soon"`
	CanWrite      bool              `json:"can_write"`
}
