// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Demand: a single revendication with vote counters, running score,
    RIC classification, and priority label
  - Votes: the three named counters (oui, non, abstention)
  - AnalysisLogEntry: one AI-generated analysis bundle, keyed by demand id

# Request Types

Types for parsing incoming JSON:

  - VoteRequest: id, voteType
  - VoteScoreRequest: id, scoreChange (signed, nonzero)
  - LogAnalysisRequest: itemId, revendication, detailHtml, solutionHtml,
    mediaUrl, fullModalContentHtml

# Response Types

Types for JSON responses:

  - VoteResponse: success, new_votes, total_votes
  - VoteScoreResponse: success, new_item_score
  - StatsResponse: totalRevendications, byCategory, byPriority, totalVotes
  - DetailResponse / OptimiseResponse / FullAnalysisResponse
  - AnalysisLogLookupResponse: found plus the logged fields
  - ErrorResponse: error, message

# Constants

Vote types:

	VoteOui        = "oui"
	VoteNon        = "non"
	VoteAbstention = "abstention"

Priority labels (rank 3, 2, 1; anything else ranks 0):

	PriorityEleve  = "Élevé"
	PriorityMoyen  = "Moyen"
	PriorityFaible = "Faible"

Ranking policies:

	RankingScore = "score"
	RankingVotes = "votes"
*/
package models
