package ui

import "errors"

const BinaryToDecimalID = 1

var ErrUnknownOption = errors.New("unknown exercise option")

type Option struct {
	ID   int
	Name string
}

var Options = []Option{
	{ID: BinaryToDecimalID, Name: "Binary to Decimal"},
}

// Selection is either empty (menu shown) or holds the id of the
// exercise being shown.
type Selection struct {
	id  int
	set bool
}

func NoSelection() Selection {
	return Selection{}
}

func Selected(id int) Selection {
	return Selection{id: id, set: true}
}

func (s Selection) ID() (int, bool) {
	return s.id, s.set
}

func (s Selection) IsNone() bool {
	return !s.set
}
