package types

import "fmt"

// InputFieldType represents the value shape of one field of an INPUT step
type InputFieldType string

const (
	InputFieldText   InputFieldType = "text"
	InputFieldNumber InputFieldType = "number"
	InputFieldDate   InputFieldType = "date"
	InputFieldSelect InputFieldType = "select"
)

// AllInputFieldTypes returns all valid input field types
func AllInputFieldTypes() []InputFieldType {
	return []InputFieldType{
		InputFieldText,
		InputFieldNumber,
		InputFieldDate,
		InputFieldSelect,
	}
}

// IsValid checks if the input field type is valid
func (t InputFieldType) IsValid() bool {
	switch t {
	case InputFieldText, InputFieldNumber, InputFieldDate, InputFieldSelect:
		return true
	default:
		return false
	}
}

// String returns the string representation of the input field type
func (t InputFieldType) String() string {
	return string(t)
}

// ParseInputFieldType parses a string into an InputFieldType
func ParseInputFieldType(s string) (InputFieldType, error) {
	fieldType := InputFieldType(s)
	if !fieldType.IsValid() {
		return "", fmt.Errorf("invalid input field type: %s", s)
	}
	return fieldType, nil
}
