// Package serializer renders entities into transfer-safe key/value maps.
// Every declared column is emitted by default and relationships expand one
// level; sensitive columns and the relationship edges that would re-enter the
// parent entity are declared per root type in excludedEdges and filtered out.
package serializer

import "recipeshare/internal/model"

// excludedEdges maps root entity type -> the serialized field paths that are
// never emitted. "a.b" means: when expanding edge a, omit field b of the
// nested entity (the reverse edge that would re-enter the parent).
var excludedEdges = map[string]map[string]struct{}{
	"user": {
		"password_hash": {},
		"recipes.user":  {},
	},
	"recipe": {
		"user.recipes":       {},
		"user.password_hash": {},
	},
}

func excluded(root, path string) bool {
	_, drop := excludedEdges[root][path]
	return drop
}

func qualify(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

// User renders u with its recipes expanded one level. The password digest is
// hard-excluded; each nested recipe omits its owner back-reference.
func User(u *model.User) map[string]any {
	return userColumns("user", "", u)
}

// Recipe renders r. The user edge expands only when the owner is loaded and
// then omits its own recipes list; the list/create paths keep the flat
// user_id foreign key only.
func Recipe(r *model.Recipe) map[string]any {
	return recipeColumns("recipe", "", r)
}

func Recipes(recipes []model.Recipe) []map[string]any {
	out := make([]map[string]any, 0, len(recipes))
	for i := range recipes {
		out = append(out, Recipe(&recipes[i]))
	}
	return out
}

func userColumns(root, prefix string, u *model.User) map[string]any {
	out := make(map[string]any, 6)
	flat := map[string]any{
		"id":            u.ID,
		"username":      u.Username,
		"password_hash": u.Password,
		"image_url":     u.ImageURL,
		"bio":           u.Bio,
	}
	for name, value := range flat {
		if excluded(root, qualify(prefix, name)) {
			continue
		}
		out[name] = value
	}
	if edge := qualify(prefix, "recipes"); !excluded(root, edge) {
		recipes := make([]map[string]any, 0, len(u.Recipes))
		for i := range u.Recipes {
			recipes = append(recipes, recipeColumns(root, edge, &u.Recipes[i]))
		}
		out["recipes"] = recipes
	}
	return out
}

func recipeColumns(root, prefix string, r *model.Recipe) map[string]any {
	out := make(map[string]any, 6)
	flat := map[string]any{
		"id":                  r.ID,
		"title":               r.Title,
		"instructions":        r.Instructions,
		"minutes_to_complete": r.MinutesToComplete,
		"user_id":             r.UserID,
	}
	for name, value := range flat {
		if excluded(root, qualify(prefix, name)) {
			continue
		}
		out[name] = value
	}
	if edge := qualify(prefix, "user"); r.User != nil && !excluded(root, edge) {
		out["user"] = userColumns(root, edge, r.User)
	}
	return out
}
