package rpc

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/umalmyha/customer-registry/internal/model"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestCustomerStructRoundTrip(t *testing.T) {
	customers := []model.Customer{
		{Name: "customerA", MailAddress: "example1@mail.com", Category: model.CategoryHigh},
		{Name: "customerB", MailAddress: "example2@mail.com", Category: model.CategoryMedium},
	}

	decoded, err := ListToCustomers(CustomersToList(customers))
	require.NoError(t, err, "failed to decode customers")
	require.Equal(t, customers, decoded, "order and content must be preserved")
}

func TestStructToCustomerInvalid(t *testing.T) {
	t.Log("name of wrong type")
	{
		s, err := structpb.NewStruct(map[string]any{"name": 42})
		require.NoError(t, err)
		_, err = StructToCustomer(s)
		require.EqualError(t, err, "field name must be a string")
	}

	t.Log("fractional category")
	{
		s, err := structpb.NewStruct(map[string]any{"name": "customerA", "category": 1.5})
		require.NoError(t, err)
		_, err = StructToCustomer(s)
		require.EqualError(t, err, "field category must be an integer")
	}

	t.Log("missing fields are left zero")
	{
		s, err := structpb.NewStruct(map[string]any{"name": "customerA"})
		require.NoError(t, err)
		c, err := StructToCustomer(s)
		require.NoError(t, err)
		require.Equal(t, model.Customer{Name: "customerA"}, c)
	}
}
