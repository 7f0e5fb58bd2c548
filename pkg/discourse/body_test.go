package discourse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBody_AllowList(t *testing.T) {
	b := parseBody([]byte(`{
		"success": "OK",
		"message": "done",
		"user_id": 42,
		"unrecognized": "dropped",
		"topic_count": 7
	}`))

	require.True(t, b.isJSON)
	assert.Equal(t, "OK", b.str("success"))
	assert.Equal(t, "done", b.str("message"))
	assert.Equal(t, float64(42), b.get("user_id"))
	assert.Nil(t, b.get("unrecognized"))
	assert.Nil(t, b.get("topic_count"))
}

func TestParseBody_RekeysToSnakeCase(t *testing.T) {
	// Keys arrive in whatever casing the server uses; normalization
	// re-keys them before the allow-list filter.
	b := parseBody([]byte(`{"userId": 7, "userBadges": [], "apiKey": "abc"}`))

	require.True(t, b.isJSON)
	assert.Equal(t, float64(7), b.get("user_id"))
	assert.NotNil(t, b.get("user_badges"))
	assert.Equal(t, "abc", b.str("api_key"))
}

func TestParseBody_NonJSONFallback(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty body", ""},
		{"plain text", "OK"},
		{"html error page", "<html>502</html>"},
		{"json array", `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := parseBody([]byte(tt.data))
			assert.False(t, b.isJSON)
			assert.Equal(t, tt.data, b.raw)
			assert.Nil(t, b.get("success"))
		})
	}
}

func TestBody_Decode(t *testing.T) {
	b := parseBody([]byte(`{
		"user": {
			"id": 42,
			"username": "jdoe",
			"name": "J. Doe",
			"active": true,
			"trust_level": 2,
			"extra_field": "ignored"
		}
	}`))

	var user User
	require.NoError(t, b.decode("user", &user))
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "jdoe", user.Username)
	assert.Equal(t, "J. Doe", user.Name)
	assert.True(t, user.Active)
	assert.Equal(t, 2, user.TrustLevel)
}

func TestBody_Decode_MissingField(t *testing.T) {
	b := parseBody([]byte(`{"success": "OK"}`))

	var user User
	err := b.decode("user", &user)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"user"`)
}

func TestBody_FieldErrors(t *testing.T) {
	t.Run("populated errors", func(t *testing.T) {
		b := parseBody([]byte(`{
			"success": false,
			"errors": {
				"password": ["is too short (minimum is 10 characters)"],
				"email": ["has already been taken"]
			}
		}`))

		fields := b.fieldErrors()
		require.NotNil(t, fields)
		assert.Equal(t,
			[]string{"is too short (minimum is 10 characters)"},
			fields["password"])
		assert.Equal(t, []string{"has already been taken"}, fields["email"])
	})

	t.Run("absent errors", func(t *testing.T) {
		b := parseBody([]byte(`{"success": true}`))
		assert.Nil(t, b.fieldErrors())
	})

	t.Run("empty errors object", func(t *testing.T) {
		b := parseBody([]byte(`{"errors": {}}`))
		assert.Nil(t, b.fieldErrors())
	})

	t.Run("non-json body", func(t *testing.T) {
		b := parseBody([]byte("nope"))
		assert.Nil(t, b.fieldErrors())
	})
}

func TestBody_DecodeAll(t *testing.T) {
	b := parseBody([]byte(`{"success": true, "message": "created", "user_id": 99}`))

	var created UserCreated
	require.NoError(t, b.decodeAll(&created))
	assert.True(t, created.Success)
	assert.Equal(t, "created", created.Message)
	assert.Equal(t, int64(99), created.UserID)
}
