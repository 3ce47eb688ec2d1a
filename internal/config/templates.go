package config

import (
	"os"

	"github.com/cockroachdb/errors"
)

func Template() string {
	return defaultTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.Newf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(defaultTemplate), 0o600)
}

const defaultTemplate = `[codec]
attr_len = 1
tag_len = 2
len_len = 2
byte_order = "msb"

[frame]
max_payload_bytes = 8388608

[log]
level = "info"
timestamp = true
bypass = false
# no_color = true
`
