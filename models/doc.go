// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON, with validation tags:

  - CreatePollRequest: question
  - AddOptionRequest: poll_id, option_text
  - VoteRequest: token, option_id
  - ResultsRequest: password

# Response Types

Types for JSON responses:

  - CreatePollResponse: poll_id, message
  - MessageResponse: message
  - PollWithOptions: question, options
  - PollResults: poll_question, results, winner
  - ErrorResponse: error, message

# Domain Types

  - Option: option text belonging to a poll
  - OptionResult: option text with its vote count

# Constants

	NoVotesYet = "No votes yet"
*/
package models
