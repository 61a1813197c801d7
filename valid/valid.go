// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package valid checks the `validate:` range tags of params structs and reports
every offending field in the same form across packages:

	Namespace.Field = value violates tag=param
*/
package valid

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates the tags of s (a struct or pointer to struct), returning
// a RangeError for any violations, or nil
func Struct(s any) error {
	if err := validate.Struct(s); err != nil {
		return RangeError(err)
	}
	return nil
}

// RangeError converts validator errors into one error per offending field,
// naming the field path, the value and the violated bound.
// Other errors are returned unchanged.
func RangeError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	errs := make([]error, len(verrs))
	for i, fe := range verrs {
		errs[i] = fmt.Errorf("%s = %v violates %s%s", fe.Namespace(), fe.Value(), fe.Tag(), paramSuffix(fe.Param()))
	}
	return errors.Join(errs...)
}

func paramSuffix(p string) string {
	if p == "" {
		return ""
	}
	return "=" + p
}
