package config

import (
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/olusolaa/stack-tail/internal/log"
)

// DecodeHook is passed to viper.Unmarshal. It parses durations such as "2s"
// and lower-cases the enum-like settings so "WARN" and "warn" both validate.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		lowerCaseEnumHook(),
	)
}

var enumTypes = map[reflect.Type]struct{}{
	reflect.TypeOf(log.Level("")):  {},
	reflect.TypeOf(log.Format("")): {},
}

func lowerCaseEnumHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		if _, ok := enumTypes[to]; !ok {
			return data, nil
		}
		return strings.ToLower(strings.TrimSpace(data.(string))), nil
	}
}
