package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/dainf/bintree/ds/binarytree"
)

// ErrInvalidLiteral is returned if a tree literal can not be parsed.
var ErrInvalidLiteral = errors.New("invalid tree literal")

// parseLiteral parses a tree in level-order notation like "[1,null,2,3]" (the brackets and a
// "root=" prefix are optional). "null" or "nil" mark missing children, all other entries are
// decimal integers (leading zeros are ignored).
func parseLiteral(literal string) ([]*int, error) {
	literal = strings.TrimSpace(literal)
	literal = strings.TrimPrefix(literal, "root=")
	literal = strings.TrimPrefix(literal, "[")
	literal = strings.TrimSuffix(literal, "]")
	if strings.TrimSpace(literal) == "" {
		return []*int{}, nil
	}

	entries := strings.Split(literal, ",")
	values := make([]*int, 0, len(entries))
	for i, entry := range entries {
		entry = strings.TrimSpace(entry)
		if strings.EqualFold(entry, "null") || strings.EqualFold(entry, "nil") {
			values = append(values, nil)

			continue
		}

		value, err := cast.ToIntE(decimal(entry))
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidLiteral, "entry %d (%q) is not an integer", i, entry)
		}
		values = append(values, &value)
	}

	return values, nil
}

// decimal strips the leading zeros of a decimal integer, so that it is not read as octal. Entries
// that are not decimal integers are returned as an invalid number.
func decimal(entry string) string {
	sign, digits := "", entry
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}

	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return "invalid"
	}

	if digits = strings.TrimLeft(digits, "0"); digits == "" {
		digits = "0"
	}

	return sign + digits
}

// buildTree returns the tree described by literal, or the example tree if literal is empty.
func buildTree(literal string) (*binarytree.Node[int], error) {
	if strings.TrimSpace(literal) == "" {
		return exampleTree(), nil
	}

	values, err := parseLiteral(literal)
	if err != nil {
		return nil, err
	}

	return binarytree.FromLevelOrder(values), nil
}

// exampleTree builds the example tree through insertions.
func exampleTree() *binarytree.Node[int] {
	root := binarytree.New(8)

	left := root.InsertLeft(3)
	left.InsertLeft(1)
	six := left.InsertRight(6)
	six.InsertLeft(4).InsertRight(5)
	six.InsertRight(7)

	root.InsertRight(10).InsertRight(14).InsertLeft(13)

	return root
}
