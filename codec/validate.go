package codec

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	anatloc "github.com/catalystneuro/ndx-anatomical-localization"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// report wire names so paths read like the document
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// ValidateRecord runs the struct tag checks of a wire record and reports
// failures as Issues with JSON Pointer paths relative to the record.
func ValidateRecord(rec any) error {
	err := recordValidator().Struct(rec)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return anatloc.Issues{{Path: "/", Code: anatloc.CodeInvalidType, Message: err.Error(), Cause: err}}
	}
	iss := make(anatloc.Issues, 0, len(verrs))
	for _, fe := range verrs {
		p := pointerOf(fe.Namespace())
		field := fe.Field()
		if fe.Tag() == "required" {
			iss = append(iss, p.Issue(anatloc.CodeRequired, map[string]string{"field": field}))
			continue
		}
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		iss = append(iss, p.Issue(anatloc.CodeInvalidValue, map[string]string{"field": field, "rule": rule}))
	}
	return iss
}

// pointerOf turns a validator namespace such as "Record.columns[2].name" into
// the pointer "/columns/2/name".
func pointerOf(ns string) anatloc.PathRef {
	p := anatloc.Root()
	segs := strings.Split(ns, ".")
	for _, seg := range segs[1:] {
		name := seg
		var idx []int
		for {
			open := strings.LastIndexByte(name, '[')
			if open < 0 || !strings.HasSuffix(name, "]") {
				break
			}
			n, err := strconv.Atoi(name[open+1 : len(name)-1])
			if err != nil {
				break
			}
			idx = append([]int{n}, idx...)
			name = name[:open]
		}
		p = p.Field(name)
		for _, i := range idx {
			p = p.Index(i)
		}
	}
	return p
}
