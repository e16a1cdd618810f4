package lbytes

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ExecuteInstructions creates the final value t with type T by
//
//   - Reading each instruction into a map, then
//   - Creating JSON bytes from the map, and finally
//   - Reading the JSON bytes into t
//
// In order to lessen the burden of manual field mapping.
func ExecuteInstructions[T any](instructions []Instruction) (*T, error) {
	tMap := map[string]any{}
	for _, instruction := range instructions {
		value, err := instruction.ReadFunction()
		if err != nil {
			err := errors.Wrapf(err, `ExecuteInstructions error reading key "%v"`, instruction.Key)
			return nil, err
		}
		tMap[instruction.Key] = value
	}
	tBytes, err := json.Marshal(tMap)
	if err != nil {
		err := errors.Wrapf(err, `ExecuteInstructions error marshalling map "%v" to JSON`, tMap)
		return nil, err
	}

	var t T
	if err := json.Unmarshal(tBytes, &t); err != nil {
		err := errors.Wrapf(
			err, `ExecuteInstructions error unmarshalling bytes "%s" to type "%T"`,
			string(tBytes), t,
		)
		return nil, err
	}

	return &t, nil
}

func CreateUint16ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadUint16()
	}
}

func CreateUint32ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadUint32()
	}
}

func CreateInt32ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadInt32()
	}
}
