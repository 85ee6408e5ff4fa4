package errors

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCustomerErrorMessages(t *testing.T) {
	require.Equal(t, "A customer with name customerA does not exist", NewCustomerNotFoundErr("customerA").Error())
	require.Equal(t, "A customer with name customerA already exists", NewCustomerExistsErr("customerA").Error())
}

func TestCustomerErrorsMarshalAsErrorResponse(t *testing.T) {
	t.Log("not found error is rendered with reason and hint")
	{
		b, err := json.Marshal(NewCustomerNotFoundErr("customerC"))
		require.NoError(t, err)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(b, &resp))
		require.Equal(t, "A customer with name customerC does not exist", resp.Reason)
		require.Equal(t, ListCustomersHint, resp.Hint)
	}

	t.Log("already exists error is rendered with reason and hint")
	{
		b, err := json.Marshal(NewCustomerExistsErr("customerA"))
		require.NoError(t, err)
		require.JSONEq(t, `{"reason":"A customer with name customerA already exists","hint":"Consider calling GET /customers to receive a list of all available customers"}`, string(b))
	}
}
