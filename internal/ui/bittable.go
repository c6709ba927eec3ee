package ui

import (
	"strconv"

	"github.com/saulo-duarte/netconv/internal/bintodec"
)

type Table struct {
	Header []string
	Row    []string
}

// BitTable lays out the place values above the digits of binary. It
// refuses anything that is not exactly 8 binary digits, so columns can
// never drift out of alignment with the fixed header.
func BitTable(binary string) (Table, error) {
	if _, err := bintodec.Decode(binary); err != nil {
		return Table{}, err
	}

	t := Table{
		Header: make([]string, 0, bintodec.BitWidth+1),
		Row:    make([]string, 0, bintodec.BitWidth+1),
	}
	t.Header = append(t.Header, "Power of 2")
	for _, v := range bintodec.PlaceValues {
		t.Header = append(t.Header, strconv.Itoa(v))
	}
	t.Row = append(t.Row, "Binary")
	for _, bit := range binary {
		t.Row = append(t.Row, string(bit))
	}
	return t, nil
}
