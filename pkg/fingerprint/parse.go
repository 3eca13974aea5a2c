package fingerprint

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	fperrors "github.com/entrhq/fpview/pkg/errors"
)

// Parse validates collector text and decodes it into a Record.
//
// Text that is not JSON yields an ErrCodeCollection error. JSON that does not
// match the record schema yields ErrCodeValidation listing every bad field.
func Parse(text string) (*Record, error) {
	if !gjson.Valid(text) {
		var probe any
		cause := json.Unmarshal([]byte(text), &probe)
		if cause == nil {
			cause = fmt.Errorf("invalid JSON")
		}
		return nil, fperrors.Wrap(fperrors.ErrCodeCollection, "collector returned malformed JSON", cause)
	}

	root := gjson.Parse(text)
	if !root.IsObject() {
		return nil, fperrors.New(fperrors.ErrCodeValidation, "fingerprint record must be a JSON object")
	}

	if problems := validate(root); len(problems) > 0 {
		return nil, fperrors.WrapWithContext(
			fperrors.ErrCodeValidation,
			"invalid fingerprint record",
			fmt.Errorf("%s", strings.Join(problems, "; ")),
			map[string]any{"problems": problems},
		)
	}

	var rec Record
	if err := json.Unmarshal([]byte(text), &rec); err != nil {
		return nil, fperrors.Wrap(fperrors.ErrCodeValidation, "invalid fingerprint record", err)
	}
	rec.raw = text
	return &rec, nil
}
