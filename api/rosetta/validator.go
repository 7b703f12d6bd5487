// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package rosetta

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/optakt/sui-rosetta/rosetta/identifier"
	"github.com/optakt/sui-rosetta/rosetta/object"
)

// RequestValidator checks that requests are well-formed before they are
// handled. Whether identifiers refer to existing objects is checked further
// down, by the retriever and the transactor.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a new request validator.
func NewRequestValidator() *RequestValidator {

	v := validator.New()

	// Register custom validators for known types.
	// We register a single type per validator, so we can safely perform type
	// assertion of the provided `validator.StructLevel` to the correct type.
	v.RegisterStructValidation(networkValidator, identifier.Network{})
	v.RegisterStructValidation(accountValidator, identifier.Account{})
	v.RegisterStructValidation(transactionValidator, identifier.Transaction{})
	v.RegisterStructValidation(currencyValidator, identifier.Currency{})
	v.RegisterStructValidation(operationValidator, object.Operation{})
	v.RegisterStructValidation(publicKeyValidator, object.PublicKey{})

	r := RequestValidator{
		validate: v,
	}

	return &r
}

// Request validates the given request and returns an error describing the
// first problem found.
func (r *RequestValidator) Request(request interface{}) error {

	err := r.validate.Struct(request)
	if err == nil {
		return nil
	}

	// InvalidValidationError is returned by the validation library in cases of invalid usage,
	// more precisely, passing a non-struct to `validate.Struct()` method.
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("could not validate request: %w", err)
	}

	// Custom validators report their message as the tag, while the generic
	// tags of the request types need the field name for context.
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}
	first := errs[0]
	switch first.Tag() {
	case "required", "min", "len":
		return fmt.Errorf("%s failed on %s constraint", first.Namespace(), first.Tag())
	default:
		return errors.New(first.Tag())
	}
}
