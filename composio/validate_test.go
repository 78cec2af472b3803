package composio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePayloadNamesFailingFields(t *testing.T) {
	err := validatePayload("integrations.create", createIntegrationSchema, map[string]any{
		"name": "integration_x",
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "appId")
}

func TestValidatePayloadAcceptsValidInput(t *testing.T) {
	err := validatePayload("integrations.create", createIntegrationSchema, CreateIntegrationRequest{
		AppID:      "app-1",
		Name:       "integration_x",
		AuthScheme: "OAUTH2",
	})
	assert.NoError(t, err)
}

func TestValidatePayloadRejectsWrongTypes(t *testing.T) {
	err := validatePayload("connectedAccounts.initiate", initiateConnectionSchema, map[string]any{
		"integrationId": 42,
	})
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "integrationId")
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, validateID("m", "id", "acc-1"))

	for _, id := range []string{"", "   ", "\t"} {
		err := validateID("m", "id", id)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), "id")
	}
}
