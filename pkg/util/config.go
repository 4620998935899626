/*
Copyright (C) 2022-2024 ApeCloud Co., Ltd

This file is part of gemini-koordinaten project

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package util

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/pkg/errors"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"

	"github.com/ed23x/gemini-koordinaten/pkg/types"
)

// ConfigKeys lists the keys that can be persisted with "config set".
var ConfigKeys = []string{
	types.CfgKeyAPIKey,
	types.CfgKeyModel,
	types.CfgKeyEndpoint,
	types.CfgKeyTimeout,
	types.CfgKeyRetries,
	types.CfgKeyTheme,
	types.CfgKeyLineStyle,
	types.CfgKeyXLabel,
	types.CfgKeyYLabel,
}

// SecretConfigKeys are masked when the config is printed.
var SecretConfigKeys = map[string]bool{
	types.CfgKeyAPIKey: true,
}

// SetConfigDefaults registers the default value of every config key.
func SetConfigDefaults(v *viper.Viper) {
	v.SetDefault(types.CfgKeyModel, types.DefaultModel)
	v.SetDefault(types.CfgKeyEndpoint, types.DefaultEndpoint)
	v.SetDefault(types.CfgKeyTimeout, types.DefaultTimeout)
	v.SetDefault(types.CfgKeyRetries, types.DefaultRetries)
	v.SetDefault(types.CfgKeyTheme, types.DefaultTheme)
	v.SetDefault(types.CfgKeyLineStyle, "smooth")
	v.SetDefault(types.CfgKeyXLabel, types.DefaultXLabel)
	v.SetDefault(types.CfgKeyYLabel, types.DefaultYLabel)
}

// GetCliConfigFile returns the path of the config file in the home dir.
func GetCliConfigFile() (string, error) {
	cliHome, err := GetCliHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cliHome, types.CliConfigName+"."+types.CliConfigType), nil
}

// InitConfig prepares v to read the config file and KOORDINATEN_* environment
// variables. A missing config file is not an error.
func InitConfig(v *viper.Viper) error {
	SetConfigDefaults(v)
	v.SetEnvPrefix(types.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	file, err := GetCliConfigFile()
	if err != nil {
		return err
	}
	v.SetConfigFile(file)
	v.SetConfigType(types.CliConfigType)
	if err = v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(file); os.IsNotExist(statErr) {
			klog.V(1).Infof("config file %s does not exist, using defaults", file)
			return nil
		}
		return errors.Wrapf(err, "failed to read config file %s", file)
	}
	klog.V(1).Infof("using config file %s", v.ConfigFileUsed())
	return nil
}

// SetConfigValue validates value for key, stores it in v and writes the
// config file.
func SetConfigValue(v *viper.Viper, key, value string) error {
	if !IsConfigKey(key) {
		if matches := fuzzy.Find(key, ConfigKeys); len(matches) > 0 {
			return errors.Errorf("unknown config key %q, did you mean %q?", key, matches[0].Str)
		}
		return errors.Errorf("unknown config key %q, supported keys: %s", key, strings.Join(ConfigKeys, ", "))
	}
	var typed interface{} = value
	switch key {
	case types.CfgKeyEndpoint:
		if !govalidator.IsURL(value) {
			return errors.Errorf("invalid %s %q, must be a URL", key, value)
		}
	case types.CfgKeyTimeout:
		d, err := cast.ToDurationE(value)
		if err != nil || d <= 0 {
			return errors.Errorf("invalid %s %q, must be a positive duration such as 30s", key, value)
		}
		typed = d.String()
	case types.CfgKeyRetries:
		n, err := cast.ToIntE(value)
		if err != nil || n < 0 {
			return errors.Errorf("invalid %s %q, must be a non-negative integer", key, value)
		}
		typed = n
	case types.CfgKeyTheme:
		if value != "dark" && value != "light" {
			return errors.Errorf("invalid %s %q, must be dark or light", key, value)
		}
	case types.CfgKeyLineStyle:
		if value != "sharp" && value != "smooth" {
			return errors.Errorf("invalid %s %q, must be sharp or smooth", key, value)
		}
	}
	file := v.ConfigFileUsed()
	if file == "" {
		var err error
		if file, err = GetCliConfigFile(); err != nil {
			return err
		}
	}
	// only keys already in the file are written back, never defaults or env values
	stored := viper.New()
	stored.SetConfigFile(file)
	stored.SetConfigType(types.CliConfigType)
	if _, err := os.Stat(file); err == nil {
		if err = stored.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "failed to read config file %s", file)
		}
	}
	stored.Set(key, typed)
	if err := stored.WriteConfigAs(file); err != nil {
		return errors.Wrapf(err, "failed to write config file %s", file)
	}
	v.Set(key, typed)
	return nil
}

// ConfigValues returns the effective value of every config key, with secrets masked.
func ConfigValues(v *viper.Viper) map[string]interface{} {
	values := make(map[string]interface{}, len(ConfigKeys))
	for _, k := range ConfigKeys {
		val := v.Get(k)
		if SecretConfigKeys[k] {
			val = MaskSecret(cast.ToString(val))
		}
		values[k] = val
	}
	return values
}

// SortedKeys returns the keys of m in order.
func SortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func IsConfigKey(key string) bool {
	for _, k := range ConfigKeys {
		if k == key {
			return true
		}
	}
	return false
}

// MaskSecret keeps the last four characters of s.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}

// GetDuration reads key as a duration, falling back to def for invalid values.
func GetDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	d, err := cast.ToDurationE(v.Get(key))
	if err != nil || d <= 0 {
		klog.V(1).Infof("invalid %s %v, using %s", key, v.Get(key), def)
		return def
	}
	return d
}
