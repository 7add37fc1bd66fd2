package snap

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"snapr.dev/pkg/snapr/internal/adapter"
	m "snapr.dev/pkg/snapr/internal/model"
)

// Keys shared with the snapr.yaml written by `snapr init`. Each one can be
// overridden by the matching SNAPR_* environment variable.
const (
	configFileName = "snapr.yaml"
	envPrefix      = "SNAPR"

	updateKey        = "update"
	snapshotDirKey   = "snapshot_dir"
	recordPendingKey = "record_pending"
)

// loadSettings resolves the default options for a test whose module root is
// root. An empty root skips the config file.
func loadSettings(root m.Path) (options, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(updateKey, m.ModeCompare.String())
	v.SetDefault(snapshotDirKey, adapter.DefaultSnapshotDir)
	v.SetDefault(recordPendingKey, true)

	if root != "" {
		v.SetConfigFile(filepath.Join(string(root), configFileName))

		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				slog.Warn("ignoring unreadable snapr config", "root", root, "error", err)
			}
		}
	}

	mode, err := m.ParseMode(v.GetString(updateKey))
	if err != nil {
		return options{}, fmt.Errorf("SNAPR_UPDATE: %w", err)
	}

	return options{
		format:        m.FormatDebug,
		mode:          mode,
		snapshotDir:   v.GetString(snapshotDirKey),
		recordPending: v.GetBool(recordPendingKey),
	}, nil
}
