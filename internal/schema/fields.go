package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/chainfolio/chainfolio/internal/validation"
)

// StrList accepts either a JSON array of strings or a single
// comma-delimited string, for query parameters that carry lists.
type StrList []string

// UnmarshalJSON accepts ["A","B"] as well as "A,B".
func (l *StrList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return err
		}
		*l = values
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("expected a list or delimited string, got %s", data)
	}
	*l = splitDelimited(value)
	return nil
}

// UnmarshalParam lets StrList bind from a comma-delimited query parameter.
func (l *StrList) UnmarshalParam(param string) error {
	*l = splitDelimited(param)
	return nil
}

func splitDelimited(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

// checkFilepath validates a path field: the file must exist and its suffix
// must be one of the allowed extensions. The suffix check is
// case-sensitive.
func checkFilepath(verrs *validation.Errors, field, path string, allowed ...string) {
	if path == "" {
		verrs.Add(field, missingField)
		return
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		verrs.Addf(field, "Given path %s does not exist or is not a file", path)
		return
	}
	checkFileSuffix(verrs, field, path, allowed...)
}

// checkFileSuffix validates a file name's extension against the allowed
// set. The check is case-sensitive and applies to path fields and
// multipart uploads alike.
func checkFileSuffix(verrs *validation.Errors, field, name string, allowed ...string) {
	if len(allowed) == 0 {
		return
	}
	for _, suffix := range allowed {
		if strings.HasSuffix(name, suffix) {
			return
		}
	}
	verrs.Addf(field, "Given file %s does not end in any of %s", name, strings.Join(allowed, ","))
}

// checkDirectory validates that the path exists and is a directory.
func checkDirectory(verrs *validation.Errors, field, path string) {
	if path == "" {
		verrs.Add(field, missingField)
		return
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		verrs.Addf(field, "Given path %s does not exist or is not a directory", path)
	}
}
