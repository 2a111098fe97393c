package queue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnrichmentPayloadMarshalling(t *testing.T) {
	payload := EnrichmentPayload{
		LeadID:    42,
		FirstName: "Jane",
	}

	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	assert.NotEmpty(t, body)

	var received EnrichmentPayload
	err = json.Unmarshal(body, &received)
	assert.NoError(t, err)

	assert.Equal(t, int64(42), received.LeadID)
	assert.Equal(t, "Jane", received.FirstName)
}

func TestEnrichmentPayloadWireNames(t *testing.T) {
	body, err := json.Marshal(EnrichmentPayload{LeadID: 1, FirstName: "Jane"})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"lead_id":1,"first_name":"Jane"}`, string(body))
}
