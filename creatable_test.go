package fieldseed

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

// credentials implements Creatable by hand, in the style generated code would
// use: a switch over names, no binder, no reflection.
type credentials struct {
	Username string
	Secret   string
}

func (c *credentials) CreateStruct(fields Sequence[string]) error {
	var hasUsername, hasSecret bool
	for field := range fields {
		switch field.Name {
		case "Username":
			c.Username = field.Value
			hasUsername = true
		case "Secret":
			c.Secret = field.Value
			hasSecret = true
		default:
			return &UnknownFieldError{Name: field.Name}
		}
	}
	if !hasUsername {
		return &MissingFieldError{Field: "Username"}
	}
	if !hasSecret {
		return &MissingFieldError{Field: "Secret"}
	}
	return nil
}

func TestCreate(t *testing.T) {
	var testCases = []struct {
		description string
		items       []NamedField[string]
		expect      credentials
		expectErr   bool
	}{
		{
			description: "all fields supplied",
			items: []NamedField[string]{
				{Name: "Secret", Value: "s3cret"},
				{Name: "Username", Value: "bob"},
			},
			expect: credentials{Username: "bob", Secret: "s3cret"},
		},
		{
			description: "missing field",
			items: []NamedField[string]{
				{Name: "Username", Value: "bob"},
			},
			expectErr: true,
		},
		{
			description: "empty sequence",
			expectErr:   true,
		},
		{
			description: "unknown field",
			items: []NamedField[string]{
				{Name: "Username", Value: "bob"},
				{Name: "Password", Value: "s3cret"},
			},
			expectErr: true,
		},
	}

	for _, testCase := range testCases {
		actual, err := Create[credentials](sequenceOf(testCase.items...))
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			assert.Equal(t, credentials{}, actual, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

type waffleVariant int

const (
	toppingVariant waffleVariant = iota
	layersVariant
	emptyVariant
)

// waffleInfo is a union style carrier: one variant holds a topping amount,
// the other a layer count.
type waffleInfo struct {
	variant waffleVariant
	topping uint8
	layers  uint16
}

func (i waffleInfo) Unwrap() (interface{}, error) {
	switch i.variant {
	case toppingVariant:
		return i.topping, nil
	case layersVariant:
		return i.layers, nil
	}
	return nil, fmt.Errorf("unsupported variant: %v", int(i.variant))
}

type waffle struct {
	SyrupAmount  uint8  `seed:"syrup_amount"`
	ButterAmount uint8  `seed:"butter_amount"`
	LayerCount   uint16 `seed:"layer_count"`
}

func (w *waffle) CreateStruct(fields Sequence[waffleInfo]) error {
	binderType, err := NewBinderType[waffleInfo](reflect.TypeOf(w))
	if err != nil {
		return err
	}
	return binderType.Bind(w).Apply(fields)
}

func TestCreate_UnwrapsVariants(t *testing.T) {
	items := []NamedField[waffleInfo]{
		{Name: "butter_amount", Value: waffleInfo{variant: toppingVariant, topping: 44}},
		{Name: "layer_count", Value: waffleInfo{variant: layersVariant, layers: 444}},
		{Name: "syrup_amount", Value: waffleInfo{variant: toppingVariant, topping: 4}},
	}
	expect := waffle{SyrupAmount: 4, ButterAmount: 44, LayerCount: 444}

	for _, order := range permutations(len(items)) {
		var permuted []NamedField[waffleInfo]
		for _, index := range order {
			permuted = append(permuted, items[index])
		}
		actual, err := Create[waffle](sequenceOf(permuted...))
		if !assert.Nil(t, err, "order: %v", order) {
			continue
		}
		assert.Equal(t, expect, actual, "order: %v", order)
	}
}

func TestCreate_UnwrapFailure(t *testing.T) {
	_, err := Create[waffle](sequenceOf(
		NamedField[waffleInfo]{Name: "syrup_amount", Value: waffleInfo{variant: emptyVariant}},
	))
	var convert *ConvertError
	if assert.True(t, errors.As(err, &convert)) {
		assert.Equal(t, "syrup_amount", convert.Name)
	}
}

// permutations returns every ordering of n indexes
func permutations(n int) [][]int {
	var indexes []int
	for i := 0; i < n; i++ {
		indexes = append(indexes, i)
	}
	var result [][]int
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			result = append(result, append([]int{}, indexes...))
			return
		}
		for i := k; i < n; i++ {
			indexes[k], indexes[i] = indexes[i], indexes[k]
			permute(k + 1)
			indexes[k], indexes[i] = indexes[i], indexes[k]
		}
	}
	permute(0)
	return result
}
