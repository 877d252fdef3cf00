package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	log "github.com/sirupsen/logrus"

	perrors "pista/src/errors"
)

// LoadFile reads a flat TOML table of prompt settings and returns its values
// as raw strings, ready for FromMap. A missing file yields an empty map.
// TOML strings, booleans and integers are rendered in their textual form so that
// `git_branch_disable = true` and `path_color = 208` behave like their
// quoted equivalents.
func LoadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithFields(log.Fields{"file": path}).Debug("config file not found, using defaults")
			return map[string]string{}, nil
		}
		return nil, perrors.WrapWithContext(err, "%w: reading %s", perrors.ErrConfigFile, path)
	}

	values, err := DecodeValues(string(data))
	if err != nil {
		return nil, perrors.WrapWithContext(err, "%w: decoding %s", perrors.ErrConfigFile, path)
	}
	log.WithFields(log.Fields{"file": path, "keys": len(values)}).Debug("loaded config file")
	return values, nil
}

// DecodeValues decodes TOML text into raw string values for the known
// settings. Other keys are dropped. A known setting holding a float, array,
// table or datetime fails with a *errors.FieldError naming the key and its
// TOML type; the first such setting in declaration order is reported.
func DecodeValues(data string) (map[string]string, error) {
	var raw map[string]interface{}
	md, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, err
	}

	for key := range raw {
		if !IsKey(key) {
			log.WithFields(log.Fields{"key": key}).Debug("ignoring unknown setting")
		}
	}

	values := make(map[string]string, len(raw))
	for _, f := range fields {
		v, ok := raw[f.key]
		if !ok {
			continue
		}
		s, ok := stringify(v)
		if !ok {
			expected := "a string, boolean or integer, got TOML " + strings.ToLower(md.Type(f.key))
			return nil, perrors.NewFieldError(f.key, fmt.Sprint(v), expected, f.kindErr())
		}
		values[f.key] = s
	}
	return values, nil
}

// stringify renders the TOML scalars a setting accepts in their textual form
func stringify(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	default:
		return "", false
	}
}

// WriteDefaults encodes cfg as TOML to w
func WriteDefaults(w io.Writer, cfg PromptConfig) error {
	return toml.NewEncoder(w).Encode(cfg)
}
