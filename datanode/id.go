package datanode

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/loomworks/loom/errors"
)

// ID is the unique, stable identifier of a data node. It is assigned at
// creation and never reassigned.
type ID string

const (
	idPrefix    = "DATANODE"
	idSeparator = "_"
)

// configIDPattern matches valid identifier tokens: a letter or underscore
// followed by letters, digits, or underscores.
var configIDPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// NewID generates a globally-unique data node ID embedding the config ID,
// of the form DATANODE_<config_id>_<uuid>.
func NewID(configID string) ID {
	return ID(strings.Join([]string{idPrefix, configID, uuid.NewString()}, idSeparator))
}

// ValidateConfigID checks that configID is a valid identifier token.
func ValidateConfigID(configID string) error {
	if configID == "" {
		return errors.NewConfigurationError("config_id may not be empty")
	}
	if !configIDPattern.MatchString(configID) {
		return errors.NewConfigurationError("config_id %q is not a valid identifier", configID)
	}
	return nil
}
