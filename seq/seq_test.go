package seq

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/structkit/fieldseed"
)

func collect[I any](fields fieldseed.Sequence[I]) []fieldseed.NamedField[I] {
	var result []fieldseed.NamedField[I]
	for item := range fields {
		result = append(result, item)
	}
	return result
}

func TestOf(t *testing.T) {
	items := collect(Of(
		fieldseed.NewNamedField("Id", 1),
		fieldseed.NewNamedField("Count", 2),
	))
	assert.Equal(t, []fieldseed.NamedField[int]{
		{Name: "Id", Value: 1},
		{Name: "Count", Value: 2},
	}, items)
}

func TestFromMap(t *testing.T) {
	type Foo struct {
		Id   int
		Name string
	}
	binderType, err := fieldseed.NewBinderType[interface{}](reflect.TypeOf(Foo{}))
	assert.Nil(t, err)
	actual, err := binderType.Create(FromMap(map[string]interface{}{
		"Id":   101,
		"Name": "abc",
	}))
	assert.Nil(t, err)
	assert.Equal(t, &Foo{Id: 101, Name: "abc"}, actual)
}

func TestFromPairs(t *testing.T) {
	var testCases = []struct {
		description string
		names       []string
		values      []int
		expect      []fieldseed.NamedField[int]
		expectErr   bool
	}{
		{
			description: "matched pairs",
			names:       []string{"a", "b"},
			values:      []int{1, 2},
			expect: []fieldseed.NamedField[int]{
				{Name: "a", Value: 1},
				{Name: "b", Value: 2},
			},
		},
		{
			description: "length mismatch",
			names:       []string{"a"},
			values:      []int{1, 2},
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		fields, err := FromPairs(testCase.names, testCase.values)
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, collect(fields), testCase.description)
	}
}

func TestFromJSON(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      []fieldseed.NamedField[interface{}]
		expectErr   bool
	}{
		{
			description: "flat object",
			input:       `{"name":"abc","count":3,"active":true}`,
			expect: []fieldseed.NamedField[interface{}]{
				{Name: "name", Value: "abc"},
				{Name: "count", Value: float64(3)},
				{Name: "active", Value: true},
			},
		},
		{
			description: "malformed document",
			input:       `{"name":`,
			expectErr:   true,
		},
	}

	for _, testCase := range testCases {
		fields, err := FromJSON([]byte(testCase.input))
		if testCase.expectErr {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, collect(fields), testCase.description)
	}
}

func TestFromJSON_EndToEnd(t *testing.T) {
	type Account struct {
		Name    string
		Balance float64
		Active  bool
	}
	fields, err := FromJSON([]byte(`{"Balance":10.5,"Active":true,"Name":"abc"}`))
	assert.Nil(t, err)
	binderType, err := fieldseed.NewBinderType[interface{}](reflect.TypeOf(Account{}))
	assert.Nil(t, err)
	actual, err := binderType.Create(fields)
	assert.Nil(t, err)
	assert.Equal(t, &Account{Name: "abc", Balance: 10.5, Active: true}, actual)
}
