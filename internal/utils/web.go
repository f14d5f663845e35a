package utils

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/feedline-dev/feedline/internal/errors"
)

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		http.Error(w, err.Error(), e.StatusCode)
		return
	}
	// default error is 500
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		log.Print(err.Error())
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	return ValidateStruct(body)
}

func ValidateStruct(body any) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		log.Print(err.Error())
		return &errors.ErrorWithStatusCode{Message: "Required fields missing", StatusCode: 400}
	}
	return nil
}

func Decode(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		log.Print(err.Error())
		return &errors.ErrorWithStatusCode{Message: "Body is invalid json", StatusCode: 400}
	}
	return nil
}
