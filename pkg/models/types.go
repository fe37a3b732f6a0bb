package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores a []string as a JSON text column.
type StringList []string

// Value implements driver.Valuer
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = StringList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringList: %T", value)
	}

	if len(data) == 0 {
		*s = StringList{}
		return nil
	}
	return json.Unmarshal(data, s)
}

// ErrorResponse is the generic error body returned by the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
