package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceStatusMarshalsByName(t *testing.T) {
	cases := []struct {
		status ServiceStatus
		want   string
	}{
		{StatusSuccess, `"Success"`},
		{StatusNotFound, `"NotFound"`},
		{StatusBadRequest, `"BadRequest"`},
		{StatusConflict, `"Conflict"`},
		{StatusError, `"Error"`},
	}

	for _, tc := range cases {
		b, err := json.Marshal(tc.status)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(b))
	}
}

func TestServiceResponseJSONEnvelope(t *testing.T) {
	b, err := json.Marshal(created(42))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"Success","created_id":42}`, string(b))

	b, err = json.Marshal(notFound("customer 7 not found"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"NotFound","messages":["customer 7 not found"]}`, string(b))
}
