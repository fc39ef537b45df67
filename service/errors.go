// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"errors"
	"fmt"

	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/db"
)

// Error kinds. Every error returned by this package wraps exactly one.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrAlreadyVoted = errors.New("already voted")
	ErrUnavailable  = errors.New("store unavailable")
	ErrInternal     = errors.New("internal error")
)

var kinds = []error{ErrBadRequest, ErrNotFound, ErrUnauthorized, ErrAlreadyVoted, ErrUnavailable, ErrInternal}

// Kind returns the error kind wrapped by err, or nil.
func Kind(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}

// translate converts a gateway error into a service error. Errors that
// already carry a kind pass through. Only gateway failures count as
// ErrUnavailable; anything else the gateway did not classify, such as a
// row that fails to scan, is ErrInternal.
func translate(op string, err error) error {
	if err == nil || Kind(err) != nil {
		return err
	}
	switch {
	case errors.Is(err, db.ErrForeignKeyViolation):
		return fmt.Errorf("%s: %w: %w", op, ErrNotFound, err)
	case errors.Is(err, db.ErrUnavailable):
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrInternal, err)
	}
}
