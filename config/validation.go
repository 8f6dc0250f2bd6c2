package config

import (
	"errors"
	"net/url"
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const maxPort = 65535

// Validate validate the config as an input. If not valid, it returns error
func Validate(conf *ServerConfig) error {
	if conf == nil {
		return errors.New("server config is nil")
	}
	return validation.ValidateStruct(conf,
		nestedFields(&conf.Log,
			validation.Field(&conf.Log.Level, validation.In(
				LogLevelDebug,
				LogLevelInfo,
				LogLevelWarning,
				LogLevelError,
				LogLevelFatal,
			)),
			validation.Field(&conf.Log.Format, validation.In(LogFormatPlain, LogFormatJSON)),
		),
		nestedFields(&conf.Serve,
			validation.Field(&conf.Serve.Port, validation.Required, validation.Min(1), validation.Max(maxPort)),
			validation.Field(&conf.Serve.Host, validation.Required),
			nestedFields(&conf.Serve.DB,
				validation.Field(&conf.Serve.DB.DSN, validation.Required, validation.By(validatePostgresDSN)),
				validation.Field(&conf.Serve.DB.MaxOpenConnection, validation.Min(1)),
			),
			nestedFields(&conf.Serve.Registry,
				validation.Field(&conf.Serve.Registry.CacheTTL, validation.Min(0)),
			),
		),
	)
}

func validatePostgresDSN(value interface{}) error {
	dsn, ok := value.(string)
	if !ok {
		return errors.New("can't convert value to string")
	}
	if dsn == "" {
		return nil
	}
	parsed, err := url.Parse(dsn)
	if err != nil {
		return errors.New("failed to parse dsn")
	}
	if parsed.Scheme != "postgres" {
		return errors.New("unsupported database scheme, use 'postgres'")
	}
	return nil
}

// ozzo-validation helper for nested validation struct
// https://github.com/go-ozzo/ozzo-validation/issues/136
func nestedFields(target interface{}, fieldRules ...*validation.FieldRules) *validation.FieldRules {
	return validation.Field(target, validation.By(func(value interface{}) error {
		valueV := reflect.Indirect(reflect.ValueOf(value))
		if valueV.CanAddr() {
			addr := valueV.Addr().Interface()
			return validation.ValidateStruct(addr, fieldRules...)
		}
		return validation.ValidateStruct(target, fieldRules...)
	}))
}
