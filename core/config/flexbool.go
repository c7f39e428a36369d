package config

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FlexBool accepts the boolean spellings the pipeline has historically fed
// this tool: JSON booleans plus strings like "true", "True", "1".
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch value := raw.(type) {
	case nil:
		*b = false
	case bool:
		*b = FlexBool(value)
	case string:
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value %q", value)
		}
		*b = FlexBool(parsed)
	default:
		return fmt.Errorf("invalid boolean value %v", raw)
	}
	return nil
}

func (b FlexBool) Bool() bool {
	return bool(b)
}
