package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/bnema/mastodon-list-manager/internal/domain"
)

// writeError prints err as a single line. With debug set, every wrapped layer
// follows with its concrete type.
func writeError(w io.Writer, err error, debug bool) {
	_, _ = fmt.Fprintf(w, "Error: %s%s\n", err, hint(err))
	if !debug {
		return
	}

	for i, layer := range errorChain(err) {
		_, _ = fmt.Fprintf(w, "  #%d %T: %v\n", i, layer, layer)
	}
}

func hint(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return " (check access_token in the config file)"
	case errors.Is(err, domain.ErrRateLimited):
		return " (wait for the limit to reset and run the command again)"
	default:
		return ""
	}
}

func errorChain(err error) []error {
	var chain []error
	queue := []error{err}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == nil {
			continue
		}
		chain = append(chain, current)

		switch wrapped := current.(type) {
		case interface{ Unwrap() []error }:
			queue = append(queue, wrapped.Unwrap()...)
		case interface{ Unwrap() error }:
			queue = append(queue, wrapped.Unwrap())
		}
	}
	return chain
}
