package dto

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/nandaardian19/studentprofile/internal/pkg/apperrors"
)

// DecodeUpdateProfileRequest reads a YAML or JSON profile payload.
// Unknown keys are rejected so a misspelt field never silently stays blank.
func DecodeUpdateProfileRequest(r io.Reader) (*UpdateProfileRequest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile payload: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, apperrors.NewBadRequestError("profile payload is empty")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	req := &UpdateProfileRequest{}
	if err := dec.Decode(req); err != nil && !errors.Is(err, io.EOF) {
		return nil, apperrors.NewCustomError(apperrors.ErrBadRequest, "profile payload is not valid YAML or JSON").
			WithCode(string(ErrorCodeBadRequest)).
			WithDetails(map[string]interface{}{"cause": err.Error()})
	}
	return req, nil
}
