package db_models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONMap stores question-id keyed text (answers, snapshots, reviewer notes)
// as a jsonb column.
type JSONMap map[string]string

func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(src interface{}) error {
	return scanJSON(src, m)
}

// ResponseFlags are the reviewer toggles on a single answer.
type ResponseFlags struct {
	AddToOneOnOne   bool `json:"add_to_one_on_one"`
	FlagForFollowUp bool `json:"flag_for_follow_up"`
}

// FlagMap stores per-question reviewer flags as jsonb.
type FlagMap map[string]ResponseFlags

func (m FlagMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *FlagMap) Scan(src interface{}) error {
	return scanJSON(src, m)
}

// KRAItem is one measurable line in a KRA template.
type KRAItem struct {
	Title  string `json:"title"`
	Weight int    `json:"weight"`
}

type KRAItemList []KRAItem

func (l KRAItemList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *KRAItemList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

func scanJSON(src interface{}, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported jsonb source type")
	}
}
