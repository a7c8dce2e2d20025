package cdg_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/cdg-client/pkg/cdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransportError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     *cdg.TransportError
		message string
	}{
		{
			name:    "status only",
			err:     &cdg.TransportError{StatusCode: http.StatusNotFound},
			message: "transport failure: status 404 Not Found",
		},
		{
			name:    "status and url",
			err:     &cdg.TransportError{StatusCode: http.StatusTooManyRequests, URL: "https://api.congress.gov/v3/bill?api_key=***"},
			message: "transport failure: status 429 Too Many Requests (https://api.congress.gov/v3/bill?api_key=***)",
		},
		{
			name:    "network failure",
			err:     &cdg.TransportError{Err: context.Canceled},
			message: "transport failure: context canceled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.message, tt.err.Error())
			require.ErrorIs(t, tt.err, cdg.ErrTransport)
		})
	}

	wrapped := fmt.Errorf("fetching bill-list: %w", &cdg.TransportError{Err: context.DeadlineExceeded})
	require.ErrorIs(t, wrapped, context.DeadlineExceeded)
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("wrapped: %w", &cdg.TransportError{StatusCode: http.StatusNotFound})
	limited := &cdg.TransportError{StatusCode: http.StatusTooManyRequests}
	clientLimited := fmt.Errorf("request interceptor failed: %w", cdg.ErrRateLimitExceeded)
	mismatch := &cdg.ShapeMismatchError{Shape: "BillsResponse", Path: "bills"}

	assert.True(t, cdg.IsNotFound(notFound))
	assert.False(t, cdg.IsNotFound(limited))
	assert.False(t, cdg.IsNotFound(errors.New("plain")))

	assert.True(t, cdg.IsRateLimited(limited))
	assert.True(t, cdg.IsRateLimited(clientLimited))
	assert.False(t, cdg.IsRateLimited(notFound))

	assert.True(t, cdg.IsShapeMismatch(mismatch))
	assert.True(t, cdg.IsShapeMismatch(fmt.Errorf("ctx: %w", mismatch)))
	assert.False(t, cdg.IsShapeMismatch(notFound))
}

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	urlErr := &cdg.URLConstructionError{Kind: cdg.KindMemberDetails, Segment: "bioguideId=", Reason: "must not be empty"}
	assert.Equal(t, `cannot construct request URL: member-details: segment "bioguideId=": must not be empty`, urlErr.Error())
	require.ErrorIs(t, urlErr, cdg.ErrURLConstruction)
	assert.NotErrorIs(t, urlErr, cdg.ErrTransport)

	missing := &cdg.ShapeMismatchError{Shape: "BillsResponse", Path: "bills", Expected: "array"}
	assert.Equal(t, `response does not match shape BillsResponse: required field "bills" is missing`, missing.Error())

	wrongKind := &cdg.ShapeMismatchError{Shape: "BillsResponse", Path: "bills[3]", Expected: "object", Found: "string"}
	assert.Equal(t, `response does not match shape BillsResponse: field "bills[3]": expected object, found string`, wrongKind.Error())

	malformed := &cdg.MalformedBodyError{Body: []byte("<html>"), Err: errors.New("invalid character '<'")}
	assert.Equal(t, "response body is not valid JSON: invalid character '<'", malformed.Error())
	require.ErrorIs(t, malformed, cdg.ErrMalformedBody)
}
