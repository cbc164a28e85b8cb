package serializer

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeshare/internal/model"
)

func testUser(t *testing.T) *model.User {
	t.Helper()
	minutes := 30
	u := &model.User{
		ID:       1,
		Username: "ada",
		ImageURL: "https://example.com/ada.png",
		Bio:      "curious cook",
		Recipes: []model.Recipe{
			{
				ID:                7,
				Title:             "Shakshuka",
				Instructions:      strings.Repeat("Simmer tomatoes with spices, crack in the eggs. ", 2),
				MinutesToComplete: &minutes,
				UserID:            1,
			},
		},
	}
	require.NoError(t, u.SetPassword("secret123"))
	for i := range u.Recipes {
		u.Recipes[i].User = u
	}
	return u
}

func TestUserShape(t *testing.T) {
	out := User(testUser(t))

	assert.Equal(t, uint(1), out["id"])
	assert.Equal(t, "ada", out["username"])
	assert.Equal(t, "https://example.com/ada.png", out["image_url"])
	assert.Equal(t, "curious cook", out["bio"])
	assert.NotContains(t, out, "password_hash")

	recipes, ok := out["recipes"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, recipes, 1)
	assert.Equal(t, uint(7), recipes[0]["id"])
	assert.Equal(t, uint(1), recipes[0]["user_id"])
	// The owner back-reference would re-enter the user being serialized.
	assert.NotContains(t, recipes[0], "user")
}

func TestUserSerializationEncodes(t *testing.T) {
	// The digest fails loudly on encode, so a leak through the serializer
	// would make Marshal error rather than emit the hash.
	raw, err := json.Marshal(User(testUser(t)))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "$2a$")
}

func TestRecipeShape(t *testing.T) {
	u := testUser(t)
	out := Recipe(&u.Recipes[0])

	assert.Equal(t, uint(7), out["id"])
	assert.Equal(t, "Shakshuka", out["title"])
	assert.Equal(t, uint(1), out["user_id"])
	require.Contains(t, out, "minutes_to_complete")

	// Owner expands one level but must not re-embed its recipe list or
	// expose the password digest.
	owner, ok := out["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ada", owner["username"])
	assert.NotContains(t, owner, "recipes")
	assert.NotContains(t, owner, "password_hash")
}

func TestRecipeWithoutLoadedOwner(t *testing.T) {
	r := &model.Recipe{
		ID:           3,
		Title:        "Toast",
		Instructions: strings.Repeat("Toast the bread until golden and butter it well. ", 2),
		UserID:       9,
	}
	out := Recipe(r)

	assert.Equal(t, uint(9), out["user_id"])
	assert.NotContains(t, out, "user")
	assert.Nil(t, out["minutes_to_complete"])
}

func TestRecipes(t *testing.T) {
	u := testUser(t)
	out := Recipes(u.Recipes)
	require.Len(t, out, 1)
	assert.Equal(t, uint(7), out[0]["id"])

	assert.Empty(t, Recipes(nil))
}
