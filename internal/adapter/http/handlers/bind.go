package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin/binding"
)

// bindRaw decodes an already parsed body into req and runs the binding tags.
// Keeping the raw map lets payload builders tell null apart from absent.
func bindRaw(raw map[string]json.RawMessage, req any) error {
	body, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, req); err != nil {
		return err
	}
	return binding.Validator.ValidateStruct(req)
}
