package formstate

import "fmt"

// ParseFields deserializes a schema document into a field configuration.
// A schema is a keyed record of field definitions:
//
//	email:
//	  value: ""
//	  validation:
//	    type: email
//	password:
//	  validation:
//	    type: password
//	    customError: "Pick a longer password"
//
// Unknown validation-type names are a parse error. An empty document
// yields an empty configuration.
func ParseFields(data []byte, codec Codec) (Fields, error) {
	var config Fields
	if err := codec.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s schema: %w", codec.ContentType(), err)
	}
	if config == nil {
		config = Fields{}
	}
	return config, nil
}
