package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"pending":   StatusPending,
		"Approved":  StatusApproved,
		"denied":    StatusDenied,
		"rejected":  StatusDenied,
		" PENDING ": StatusPending,
	}
	for in, want := range cases {
		got, err := ParseStatus(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseStatus("archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.Label())
	assert.Equal(t, "", Status("").Label())
}

func TestTestimonialDecodesLegacyStatus(t *testing.T) {
	var tm Testimonial
	require.NoError(t, json.Unmarshal([]byte(`{"id":"t1","name":"Ann","rating":4,"status":"rejected"}`), &tm))
	assert.Equal(t, StatusDenied, tm.Status)

	require.NoError(t, json.Unmarshal([]byte(`{"id":"t2","name":"Bo","status":""}`), &tm))
	assert.Equal(t, Status(""), tm.Status)

	require.NoError(t, json.Unmarshal([]byte(`{"status":"Archived"}`), &tm))
	assert.Equal(t, Status("archived"), tm.Status)
	assert.False(t, tm.Status.Valid())

	require.NoError(t, json.Unmarshal([]byte(`{"status":3}`), &tm))
	assert.False(t, tm.Status.Valid())
}

func TestUnknownStatusIsNeverListed(t *testing.T) {
	var list []Testimonial
	require.NoError(t, json.Unmarshal([]byte(`[{"id":"1","status":"approved"},{"id":"2","status":"archived"},{"id":"3","status":"pending"}]`), &list))
	require.Len(t, list, 3)

	public := PublicTestimonials(list)
	require.Len(t, public, 1)
	assert.Equal(t, "1", public[0].ID)

	pending := FilterByStatus(list, StatusPending)
	require.Len(t, pending, 1)
	assert.Equal(t, "3", pending[0].ID)
}

func TestFilterByStatusOnlyReturnsPending(t *testing.T) {
	in := []Testimonial{
		{ID: "1", Status: StatusPending},
		{ID: "2", Status: StatusApproved},
		{ID: "3", Status: StatusDenied},
		{ID: "4", Status: StatusPending},
		{ID: "5"},
	}

	got := FilterByStatus(in, StatusPending)
	require.Len(t, got, 2)
	for _, tm := range got {
		assert.Equal(t, StatusPending, tm.Status)
	}
	assert.Empty(t, FilterByStatus(nil, StatusPending))
}

func TestPublicTestimonials(t *testing.T) {
	in := []Testimonial{
		{ID: "1", Status: StatusPending},
		{ID: "2", Status: StatusApproved},
		{ID: "3", Status: StatusDenied},
		{ID: "4"},
	}
	got := PublicTestimonials(in)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID)
	assert.Equal(t, "4", got[1].ID)
}

func TestStars(t *testing.T) {
	assert.Equal(t, []bool{true, true, true, false, false}, Testimonial{Rating: 3}.Stars())
}
