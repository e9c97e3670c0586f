package entities

import "errors"

type MenuItem struct {
	ID    string
	Name  string
	Img   string
	Price float64
	Type  string
}

// MenuFilter narrows menu listings. Zero value means no filtering.
type MenuFilter struct {
	Search string
	Type   string
}

var ErrMenuItemNotFound = errors.New("menu item not found")
