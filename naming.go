package fieldseed

import (
	"reflect"
	"strings"

	"github.com/viant/tagly/format/text"
)

const (
	//TagName defines the struct tag a target field uses to customize binding
	TagName = "seed"

	optionalFragment = "optional"
)

type fieldTag struct {
	name     string
	optional bool
	omit     bool
}

func parseFieldTag(tag reflect.StructTag) *fieldTag {
	ret := &fieldTag{}
	raw, ok := tag.Lookup(TagName)
	if !ok {
		return ret
	}
	parts := strings.Split(raw, ",")
	ret.name = strings.TrimSpace(parts[0])
	if ret.name == "-" {
		ret.omit = true
		ret.name = ""
	}
	for _, part := range parts[1:] {
		if strings.TrimSpace(part) == optionalFragment {
			ret.optional = true
		}
	}
	return ret
}

// defaultNames derives accepted names for a field: the seed tag name when present,
// otherwise the Go field name plus one alias per configured case format.
func (o *binderOptions) defaultNames(name string, tag reflect.StructTag) []string {
	if fTag := parseFieldTag(tag); fTag.name != "" {
		return []string{fTag.name}
	}
	result := []string{name}
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	for _, caseFormat := range o.caseFormats {
		alias := src.To(caseFormat).Format(name)
		if alias != name {
			result = append(result, alias)
		}
	}
	return result
}
