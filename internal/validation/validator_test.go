package validation

import (
	"encoding/json"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name     string `json:"name" validate:"required"`
	Category int    `json:"category" validate:"min=0"`
}

func TestEnglishValidator(t *testing.T) {
	v, err := NewEnglish()
	require.NoError(t, err, "failed to build validator")

	t.Log("valid payload passes")
	{
		require.NoError(t, v.Struct(&payload{Name: "customerA", Category: 1}))
	}

	t.Log("violations are reported with json names and translated messages")
	{
		err := v.Struct(&payload{Category: -1})
		require.IsType(t, &PayloadError{}, err, "error must be payload error")

		pldErr := err.(*PayloadError)
		require.Equal(t, []string{"name", "category"}, pldErr.Fields())

		b, err := json.Marshal(pldErr)
		require.NoError(t, err)
		require.JSONEq(t, `{"errors":[{"field":"name","message":"name is a required field"},{"field":"category","message":"category must be 0 or greater"}]}`, string(b))
	}
}

func TestEchoValidator(t *testing.T) {
	v, err := NewEnglish()
	require.NoError(t, err, "failed to build validator")

	var ev echo.Validator = Echo(v)

	require.NoError(t, ev.Validate(&payload{Name: "customerA"}))
	require.IsType(t, &PayloadError{}, ev.Validate(&payload{}), "error must be payload error")

	t.Log("non struct input is internal error")
	{
		err := ev.Validate("not a struct")
		require.IsType(t, &echo.HTTPError{}, err, "error must be echo error")
	}
}
