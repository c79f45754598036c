// Package api - Request and response types
package api

import (
	"time"

	"gym-cost/core/types"
)

// QuoteRequest asks for an itemized quote
type QuoteRequest struct {
	// Plan is the membership plan key
	Plan string `json:"plan"`

	// Features are the requested feature keys
	Features []string `json:"features,omitempty"`

	// GroupSize is the number of members joining together
	GroupSize int `json:"group_size"`
}

// QuoteResponse wraps the quote with request context
type QuoteResponse struct {
	// RequestID identifies the request
	RequestID string `json:"request_id"`

	// Timestamp is when the quote was produced
	Timestamp time.Time `json:"timestamp"`

	// Quote is the pricing result
	Quote *types.Quote `json:"quote"`
}

// MembershipRequest is the confirm-or-cancel workflow input
type MembershipRequest struct {
	// Plan is the membership plan key
	Plan string `json:"plan"`

	// Features are the requested feature keys
	Features []string `json:"features,omitempty"`

	// GroupSize is the number of members joining together
	GroupSize int `json:"group_size"`

	// Confirmed indicates whether the user accepted the quote
	Confirmed bool `json:"confirmed"`
}

// MembershipResponse is the confirm-or-cancel workflow output
type MembershipResponse struct {
	// RequestID identifies the request
	RequestID string `json:"request_id"`

	// Timestamp is when the request was processed
	Timestamp time.Time `json:"timestamp"`

	// Total is the charged amount, or -1 for invalid or
	// unconfirmed requests
	Total int64 `json:"total"`

	// Confirmed echoes whether the membership was confirmed
	Confirmed bool `json:"confirmed"`
}

// CatalogResponse lists catalog entries
type CatalogResponse struct {
	// Plans are the membership plans, in catalog order
	Plans []*types.MembershipPlan `json:"plans,omitempty"`

	// Features are the add-on features, in catalog order
	Features []*types.AdditionalFeature `json:"features,omitempty"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	// RequestID identifies the request
	RequestID string `json:"request_id"`

	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable description
	Message string `json:"message"`
}
