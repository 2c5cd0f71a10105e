// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Vote type constants
const (
	VoteOui        = "oui"
	VoteNon        = "non"
	VoteAbstention = "abstention"
)

// Priority levels, ordered Élevé > Moyen > Faible
const (
	PriorityEleve  = "Élevé"
	PriorityMoyen  = "Moyen"
	PriorityFaible = "Faible"
)

// Ranking policy constants
const (
	RankingScore = "score"
	RankingVotes = "votes"
)

// DefaultRicType is the classification assigned to demands loaded without one.
const DefaultRicType = "Législatif"

var priorityRank = map[string]int{
	PriorityEleve:  3,
	PriorityMoyen:  2,
	PriorityFaible: 1,
}

// PriorityRank returns the comparison rank of a priority label.
// Unknown or missing labels rank below Faible.
func PriorityRank(priority string) int {
	return priorityRank[priority]
}

// Domain types

// Votes holds the three named counters for a demand.
type Votes struct {
	Oui        int `json:"oui"`
	Non        int `json:"non"`
	Abstention int `json:"abstention"`
}

// Total is the derived vote count, always recomputable from the counters.
func (v Votes) Total() int {
	return v.Oui + v.Non + v.Abstention
}

// Demand is a single citizen revendication, the unit of voting and scoring.
// TotalVotes is derived and never persisted; TotalScore is a persisted
// running sum adjusted by signed deltas.
type Demand struct {
	ID         string `json:"id"`
	Category   string `json:"category"`
	Text       string `json:"revendication"`
	Votes      Votes  `json:"votes"`
	TotalVotes int    `json:"totalVotes"`
	TotalScore int    `json:"totalScore"`
	RicType    string `json:"ric_type"`
	Priority   string `json:"priority"`
}

// AnalysisLogEntry is an append-only record of AI-generated content for a
// demand. The log document is ordered most-recent-first.
type AnalysisLogEntry struct {
	ID                   string    `json:"id"`
	Timestamp            time.Time `json:"timestamp"`
	ItemID               string    `json:"itemId"`
	Revendication        string    `json:"revendication"`
	DetailHTML           string    `json:"detailHtml"`
	SolutionHTML         string    `json:"solutionHtml"`
	MediaURL             string    `json:"mediaUrl"`
	FullModalContentHTML string    `json:"fullModalContentHtml,omitempty"`
}

// Request types

type VoteRequest struct {
	ID       string `json:"id"`
	VoteType string `json:"voteType"`
}

type VoteScoreRequest struct {
	ID          string `json:"id"`
	ScoreChange int    `json:"scoreChange"`
}

type LogAnalysisRequest struct {
	ItemID               string `json:"itemId"`
	Revendication        string `json:"revendication"`
	DetailHTML           string `json:"detailHtml"`
	SolutionHTML         string `json:"solutionHtml"`
	MediaURL             string `json:"mediaUrl"`
	FullModalContentHTML string `json:"fullModalContentHtml"`
}

// Response types

type VoteResponse struct {
	Success    bool  `json:"success"`
	NewVotes   Votes `json:"new_votes"`
	TotalVotes int   `json:"total_votes"`
}

type VoteScoreResponse struct {
	Success      bool `json:"success"`
	NewItemScore int  `json:"new_item_score"`
}

type StatsResponse struct {
	TotalRevendications int            `json:"totalRevendications"`
	ByCategory          map[string]int `json:"byCategory"`
	ByPriority          map[string]int `json:"byPriority"`
	TotalVotes          int            `json:"totalVotes"`
}

type DetailResponse struct {
	Detail string `json:"detail"`
}

type OptimiseResponse struct {
	Solution string `json:"solution"`
}

// FullAnalysisResponse joins the text and image branches. MediaURL is null
// when the image branch ended disabled or in error.
type FullAnalysisResponse struct {
	Success  bool    `json:"success"`
	Detail   string  `json:"detail"`
	MediaURL *string `json:"mediaUrl"`
}

type LogAnalysisResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type AnalysisLogLookupResponse struct {
	Found                bool   `json:"found"`
	Revendication        string `json:"revendication,omitempty"`
	DetailHTML           string `json:"detailHtml,omitempty"`
	SolutionHTML         string `json:"solutionHtml,omitempty"`
	MediaURL             string `json:"mediaUrl,omitempty"`
	FullModalContentHTML string `json:"fullModalContentHtml,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
