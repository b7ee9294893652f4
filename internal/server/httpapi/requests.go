package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/smartfridge/internal/common"
	"github.com/dmitrijs2005/smartfridge/internal/server/models"
)

const maxBodyBytes = 1 << 20

type validatable interface {
	Validate() error
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *credentialsRequest) Validate() error {
	if r.Username == "" || r.Password == "" {
		return common.ErrInvalidPayload
	}
	return nil
}

type tokenRequest struct {
	Token string `json:"token"`
}

func (r *tokenRequest) Validate() error {
	if r.Token == "" {
		return common.ErrInvalidPayload
	}
	return nil
}

type settingsPayload struct {
	Theme string `json:"Theme"`
}

type saveSettingsRequest struct {
	Token    string          `json:"token"`
	Settings settingsPayload `json:"settings"`
}

func (r *saveSettingsRequest) Validate() error {
	if r.Token == "" {
		return common.ErrInvalidPayload
	}
	if _, err := models.ParseTheme(r.Settings.Theme); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidPayload, err)
	}
	return nil
}

// decodeRequest reads one JSON object into dst and validates it. Any
// problem, from a malformed body to a missing field, is reported as
// common.ErrInvalidPayload.
func decodeRequest(r *http.Request, dst validatable) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidPayload, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data", common.ErrInvalidPayload)
	}
	if err := dst.Validate(); err != nil {
		if errors.Is(err, common.ErrInvalidPayload) {
			return err
		}
		return fmt.Errorf("%w: %v", common.ErrInvalidPayload, err)
	}
	return nil
}
