package models

// NoVotesYet is reported as the winner of a poll that has no options.
const NoVotesYet = "No votes yet"

// Request types

type CreatePollRequest struct {
	Question string `json:"question" validate:"required,notblank"`
}

type AddOptionRequest struct {
	PollID     int64  `json:"poll_id" validate:"required,gt=0"`
	OptionText string `json:"option_text" validate:"required,notblank"`
}

type VoteRequest struct {
	Token    string `json:"token" validate:"required"`
	OptionID int64  `json:"option_id" validate:"required,gt=0"`
}

type ResultsRequest struct {
	Password string `json:"password"`
}

// Response types

type CreatePollResponse struct {
	PollID  int64  `json:"poll_id"`
	Message string `json:"message"`
}

// MessageResponse is the body of every success without a payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// Domain types

type Option struct {
	ID         int64  `json:"id"`
	PollID     int64  `json:"-"`
	OptionText string `json:"option_text"`
}

// PollWithOptions is the public view of a poll; options are in insertion order.
type PollWithOptions struct {
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

// Result Types

type OptionResult struct {
	OptionID   int64  `json:"-"`
	OptionText string `json:"option_text"`
	VoteCount  int64  `json:"vote_count"`
}

type PollResults struct {
	PollQuestion string         `json:"poll_question"`
	Results      []OptionResult `json:"results"`
	Winner       string         `json:"winner"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
