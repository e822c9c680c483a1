package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// jsonbScan unmarshals a JSONB column into dest. Postgres hands the value
// back as []byte; some drivers use string.
func jsonbScan(value interface{}, dest interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	case nil:
		return nil
	default:
		return errors.New("unsupported type for JSONB scan")
	}
}

// StringList stores a slice of strings as JSONB.
type StringList []string

func (l StringList) Value() (driver.Value, error) { return json.Marshal(l) }
func (l *StringList) Scan(value interface{}) error {
	return jsonbScan(value, l)
}

// UintList stores a slice of record IDs as JSONB.
type UintList []uint

func (l UintList) Value() (driver.Value, error) { return json.Marshal(l) }
func (l *UintList) Scan(value interface{}) error {
	return jsonbScan(value, l)
}

// StringMap stores a string-to-string map as JSONB.
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) { return json.Marshal(m) }
func (m *StringMap) Scan(value interface{}) error {
	return jsonbScan(value, m)
}
