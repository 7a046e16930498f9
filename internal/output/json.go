package output

import (
	"encoding/json"
	"io"

	"github.com/rmaia/critic/pkg/types"
)

// JSONFormatter renders the result as indented JSON.
type JSONFormatter struct{}

func (f *JSONFormatter) Format(w io.Writer, result *types.ReviewResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}
