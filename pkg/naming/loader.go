package naming

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ekaya-inc/ekaya-querydesc/pkg/apperrors"
	"github.com/ekaya-inc/ekaya-querydesc/pkg/models"
)

// LoadFile reads a YAML dictionary of the form:
//
//	tables:
//	  bookinglineitems: Backlog Items
//	fields:
//	  createddate: Created Date
func LoadFile(path string) (models.FriendlyNames, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.FriendlyNames{}, fmt.Errorf("%w: %s", apperrors.ErrDictionaryNotFound, path)
		}
		return models.FriendlyNames{}, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML dictionary.
func Parse(data []byte) (models.FriendlyNames, error) {
	var names models.FriendlyNames
	if err := yaml.Unmarshal(data, &names); err != nil {
		return models.FriendlyNames{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidDictionary, err)
	}
	return names, nil
}
