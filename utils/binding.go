package utils

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var tagNameOnce sync.Once

// useJSONFieldNames makes validation errors report the json name of a field
// so messages match the request payload.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// BindJSON decodes the request body into obj and validates its binding tags.
// Required fields are pointers so presence, not zero-ness, is checked; the
// first failing field in declaration order is reported.
func BindJSON(c *gin.Context, obj interface{}) error {
	tagNameOnce.Do(useJSONFieldNames)
	if err := c.ShouldBindJSON(obj); err != nil {
		return translateBindError(err)
	}
	return nil
}

// Validate runs binding-tag validation on an already decoded value.
func Validate(obj interface{}) error {
	tagNameOnce.Do(useJSONFieldNames)
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return translateBindError(err)
	}
	return nil
}

func translateBindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return MissingField(fe.Field())
		}
		return Invalid(fe.Field(), "Invalid value for "+fe.Field())
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return Invalid(typeErr.Field, "Invalid value for "+typeErr.Field)
	}

	return Invalid("", "Request body must be a JSON object")
}
