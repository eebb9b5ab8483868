package sellerbook

import "strconv"

// ID identifies a persisted Asset, Period or Transaction within a Book.
//
// The zero value means "not yet persisted": the Book assigns an ID on the
// first save. This replaces the usual nullable-integer dance with a typed
// state that can be asked directly.
type ID int

// IsSet reports whether the identity has been assigned by a Book.
func (id ID) IsSet() bool { return id != 0 }

func (id ID) String() string {
	if !id.IsSet() {
		return "unsaved"
	}
	return strconv.Itoa(int(id))
}

// ParseID parses a decimal id string.
func ParseID(s string) (ID, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errInvalidNumber("id", s)
	}
	return ID(n), nil
}
