package domain

// User is owned by the external auth service; this core only reads its id
// and mutates the hearted store set.
type User struct {
	ID     string
	Name   string
	Email  string
	Hearts []string
}

// HasHearted reports whether the user has favorited the given store.
func (u User) HasHearted(storeID string) bool {
	for _, id := range u.Hearts {
		if id == storeID {
			return true
		}
	}
	return false
}
